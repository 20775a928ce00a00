package verify_password

// VerifyRequest тело запроса проверки пароля
type VerifyRequest struct {
	Password string `json:"password"`
}

// VerifyResponse результат проверки
type VerifyResponse struct {
	Success bool `json:"success"`
}
