package list_admins

import (
	"context"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

// AdminsService интерфейс сервиса администраторов
type AdminsService interface {
	ListAdmins(ctx context.Context) ([]*domain.Admin, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
