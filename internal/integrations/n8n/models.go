package n8n

// Result нормализованный ответ webhook
// Data - декодированный JSON ответа либо сырой текст, если тело не JSON
// (мягкая деградация: не-JSON тело на успешном статусе ошибкой не считается)
type Result struct {
	Data interface{}
}
