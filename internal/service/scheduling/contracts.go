package scheduling

import (
	"context"
	"time"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований, используемый аллокатором
type BookingRepository interface {
	GetBySlot(ctx context.Context, date time.Time, timeslot types.TimeString) (*domain.Booking, error)
	MaxOrderNumber(ctx context.Context, date time.Time, session string) (int, error)
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ListBySession(ctx context.Context, date time.Time, session string) ([]*domain.Booking, error)
	UpdateTurnNumbers(ctx context.Context, bookings []*domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
