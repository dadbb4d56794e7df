package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований, используемый агрегатором
type BookingRepository interface {
	ListByDateOrderedByTurn(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	CountByDate(ctx context.Context, date time.Time) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
