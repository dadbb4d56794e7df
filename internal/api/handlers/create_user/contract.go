package create_user

import (
	"context"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

// UsersService интерфейс сервиса пользователей
type UsersService interface {
	Register(ctx context.Context, name, phoneNumber string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
