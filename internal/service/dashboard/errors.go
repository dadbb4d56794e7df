package dashboard

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках агрегации
	ErrInternal = errors.New("dashboard: internal error")
)
