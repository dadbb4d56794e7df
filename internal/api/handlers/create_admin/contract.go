package create_admin

import (
	"context"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

// AdminsService интерфейс сервиса администраторов
type AdminsService interface {
	CreateAdmin(ctx context.Context, username, password string) (*domain.Admin, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
