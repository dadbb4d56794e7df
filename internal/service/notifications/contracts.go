package notifications

import (
	"context"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// SMSClient интерфейс клиента SMS-шлюза
type SMSClient interface {
	Send(ctx context.Context, recipient, message string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
