package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/MMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/MMC-AppointmentService/internal/service/scheduling"
)

// UseCase use case для создания бронирования существующим пользователем
type UseCase struct {
	userRepo     UserRepository
	validator    SlotValidator
	allocator    Allocator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	validator SlotValidator,
	allocator Allocator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		validator:    validator,
		allocator:    allocator,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Аллокация слота выполняется в сериализуемой транзакции для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, date=%s, timeslot=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.Timeslot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем слот по цепочке правил и определяем сессию
	session, err := uc.validator.ValidateSlot(req.Date, req.Timeslot, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, mapSchedulingError(err)
	}

	// 3. Проверяем существование пользователя
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Аллокация слота в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.allocator.Allocate(txCtx, user.ID, req.Date, req.Timeslot, session)
		if err != nil {
			return mapSchedulingError(err)
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, order=%d, turn=%d",
		result.ID, result.OrderNumber, result.TurnNumber)

	return buildResponse(result, user), nil
}

// mapSchedulingError переводит ошибки планировщика в ошибки usecase
func mapSchedulingError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrBookingNotOpen):
		return ErrBookingNotOpen
	case errors.Is(err, scheduling.ErrPastDate):
		return ErrPastDate
	case errors.Is(err, scheduling.ErrPastTime):
		return ErrPastTime
	case errors.Is(err, scheduling.ErrInvalidInterval):
		return ErrInvalidInterval
	case errors.Is(err, scheduling.ErrOutsideSessions):
		return ErrOutsideHours
	case errors.Is(err, scheduling.ErrSlotTaken):
		return ErrSlotTaken
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// buildResponse конвертирует доменную бронь в ответ usecase
func buildResponse(b *domain.Booking, u *domain.User) *Response {
	return &Response{
		ID:          b.ID,
		UserID:      b.UserID,
		Date:        b.Date,
		Timeslot:    b.Timeslot,
		Session:     b.Session,
		OrderNumber: b.OrderNumber,
		TurnNumber:  b.TurnNumber,
		User: &ResponseUser{
			ID:          u.ID,
			Name:        u.Name,
			PhoneNumber: u.PhoneNumber,
		},
		CreatedAt: b.CreatedAt,
	}
}
