package textlk

import "errors"

var (
	// ErrGateway возвращается, когда шлюз недоступен или отклонил сообщение
	// Ошибка шлюза никогда не роняет запрос — caller превращает ее в структурный результат
	ErrGateway = errors.New("textlk client: gateway failure")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("textlk client: internal error")
)
