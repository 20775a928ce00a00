package n8n

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("n8n client: internal error")

	// ErrUnavailable возвращается при транспортном сбое исходящего запроса
	ErrUnavailable = errors.New("n8n client: webhook unavailable")

	// ErrWebhook возвращается при неуспешном статусе от webhook
	// Текст ошибки несёт статус и тело ответа: webhook error (<status>): <body>
	ErrWebhook = errors.New("webhook error")
)
