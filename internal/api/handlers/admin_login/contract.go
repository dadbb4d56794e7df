package admin_login

import (
	"context"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

// AdminsService интерфейс сервиса администраторов
type AdminsService interface {
	Login(ctx context.Context, username, password string, role domain.Role) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
