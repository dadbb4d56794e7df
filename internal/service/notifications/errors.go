package notifications

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("notifications: booking not found")

	// ErrGateway возвращается, когда SMS-шлюз недоступен или отклонил сообщение
	ErrGateway = errors.New("notifications: gateway failure")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications: internal error")
)
