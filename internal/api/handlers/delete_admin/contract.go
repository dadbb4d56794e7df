package delete_admin

import "context"

// AdminsService интерфейс сервиса администраторов
type AdminsService interface {
	DeleteAdmin(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
