package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/MMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

// Service аллокатор слотов: присваивает order_number и пересчитывает номера очереди
//
// Последовательность проверка занятости → order_number → вставка → пересчет
// должна выполняться целиком внутри одной сериализуемой транзакции:
// вызывающий usecase оборачивает Allocate в TxManager.DoSerializable,
// а репозиторий подхватывает транзакцию из контекста
type Service struct {
	bookings BookingRepository
	logger   Logger
}

// NewService создает аллокатор слотов
func NewService(bookings BookingRepository, logger Logger) *Service {
	return &Service{
		bookings: bookings,
		logger:   logger,
	}
}

// Allocate бронирует слот для пользователя
//
// 1. Проверяет, что слот (date, timeslot) свободен (строка блокируется FOR UPDATE)
// 2. order_number = 1 + max(order_number) по (date, session): порядок прихода заявок,
//    не зависит от хронологии слота и никогда не пересчитывается
// 3. Вставляет бронь с временным turn_number = 0
// 4. Пересчитывает номера очереди всех броней (date, session) по возрастанию слота
//    и сохраняет изменившиеся строки
func (s *Service) Allocate(ctx context.Context, userID int64, date time.Time, timeslot types.TimeString, session string) (*domain.Booking, error) {
	if session == "" {
		return nil, ErrNoSession
	}

	existing, err := s.bookings.GetBySlot(ctx, date, timeslot)
	if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Error("Allocate: failed to check slot %s %s: %v", date.Format(domain.DateFormat), timeslot, err)
		return nil, fmt.Errorf("%w: Allocate - check slot: %v", ErrInternal, err)
	}
	if existing != nil {
		s.logger.Warn("Allocate: slot %s %s already booked (booking id=%d)",
			date.Format(domain.DateFormat), timeslot, existing.ID)
		return nil, ErrSlotTaken
	}

	maxOrder, err := s.bookings.MaxOrderNumber(ctx, date, session)
	if err != nil {
		s.logger.Error("Allocate: failed to get max order number: %v", err)
		return nil, fmt.Errorf("%w: Allocate - max order number: %v", ErrInternal, err)
	}

	created, err := s.bookings.Create(ctx, &domain.Booking{
		UserID:      userID,
		Date:        date,
		Timeslot:    timeslot,
		Session:     session,
		OrderNumber: maxOrder + 1,
		TurnNumber:  0, // временное значение, перезаписывается пересчетом ниже
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotConflict) {
			return nil, ErrSlotTaken
		}
		s.logger.Error("Allocate: failed to insert booking: %v", err)
		return nil, fmt.Errorf("%w: Allocate - insert booking: %v", ErrInternal, err)
	}

	turn, err := s.renumberSession(ctx, date, session, created.ID)
	if err != nil {
		return nil, err
	}
	created.TurnNumber = turn

	s.logger.Info("Allocate: booking id=%d created, session=%s, order=%d, turn=%d",
		created.ID, session, created.OrderNumber, created.TurnNumber)

	return created, nil
}

// renumberSession пересчитывает номера очереди всех броней (date, session):
// брони выбираются по возрастанию слота (при равенстве — по id, хотя два
// бронирования не могут занимать один слот) и получают номера 1..K
// Возвращает итоговый номер очереди брони createdID
func (s *Service) renumberSession(ctx context.Context, date time.Time, session string, createdID int64) (int, error) {
	sessionBookings, err := s.bookings.ListBySession(ctx, date, session)
	if err != nil {
		s.logger.Error("Allocate: failed to list session bookings: %v", err)
		return 0, fmt.Errorf("%w: Allocate - list session bookings: %v", ErrInternal, err)
	}

	changed := make([]*domain.Booking, 0, len(sessionBookings))
	createdTurn := 0

	for i, b := range sessionBookings {
		turn := i + 1
		if b.TurnNumber != turn {
			b.TurnNumber = turn
			changed = append(changed, b)
		}
		if b.ID == createdID {
			createdTurn = turn
		}
	}

	if createdTurn == 0 {
		// Вставленная бронь обязана присутствовать в выборке своей сессии
		s.logger.Error("Allocate: inserted booking id=%d missing from session listing", createdID)
		return 0, fmt.Errorf("%w: Allocate - inserted booking missing from renumbering pass", ErrInternal)
	}

	if len(changed) > 0 {
		if err := s.bookings.UpdateTurnNumbers(ctx, changed); err != nil {
			s.logger.Error("Allocate: failed to persist turn numbers: %v", err)
			return 0, fmt.Errorf("%w: Allocate - persist turn numbers: %v", ErrInternal, err)
		}
	}

	return createdTurn, nil
}
