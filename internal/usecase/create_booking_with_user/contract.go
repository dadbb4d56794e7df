package create_booking_with_user

import (
	"context"
	"time"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByPhone(ctx context.Context, phoneNumber string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// SlotValidator проверяет запрошенный слот по цепочке правил и возвращает имя сессии
type SlotValidator interface {
	ValidateSlot(date time.Time, timeslot types.TimeString, now time.Time) (string, error)
}

// Allocator бронирует слот: порядковый номер, вставка, пересчет очереди
type Allocator interface {
	Allocate(ctx context.Context, userID int64, date time.Time, timeslot types.TimeString, session string) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
