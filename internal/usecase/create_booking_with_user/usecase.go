package create_booking_with_user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/MMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/MMC-AppointmentService/internal/service/scheduling"
)

// UseCase use case для создания бронирования с поиском или регистрацией пользователя
// Поиск по номеру телефона и возможная регистрация выполняются внутри той же
// сериализуемой транзакции, что и аллокация слота
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
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBookingWithUser: phone=%s, date=%s, timeslot=%s",
		req.PhoneNumber, req.Date.Format(domain.DateFormat), req.Timeslot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBookingWithUser: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем слот по цепочке правил и определяем сессию
	session, err := uc.validator.ValidateSlot(req.Date, req.Timeslot, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateBookingWithUser: slot validation failed: %v", err)
		return nil, mapSchedulingError(err)
	}

	// Переменные для хранения результата
	var (
		result *domain.Booking
		user   *domain.User
	)

	// 3. Поиск/регистрация пользователя и аллокация слота в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		user, err = uc.findOrCreateUser(txCtx, req)
		if err != nil {
			return err
		}

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

	uc.logger.Info("CreateBookingWithUser: successfully created booking id=%d for user id=%d, order=%d, turn=%d",
		result.ID, user.ID, result.OrderNumber, result.TurnNumber)

	return buildResponse(result, user), nil
}

// findOrCreateUser находит пользователя по номеру телефона или регистрирует нового
// Гонку с параллельной регистрацией того же номера разрешает повторным поиском
func (uc *UseCase) findOrCreateUser(ctx context.Context, req *Request) (*domain.User, error) {
	user, err := uc.userRepo.GetByPhone(ctx, req.PhoneNumber)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		uc.logger.Error("CreateBookingWithUser: failed to get user by phone: %v", err)
		return nil, fmt.Errorf("%w: failed to get user by phone: %v", ErrInternal, err)
	}

	created, err := uc.userRepo.Create(ctx, &domain.User{
		Name:        strings.TrimSpace(req.Name),
		PhoneNumber: req.PhoneNumber,
	})
	if err == nil {
		uc.logger.Info("CreateBookingWithUser: registered user id=%d", created.ID)
		return created, nil
	}
	if errors.Is(err, userRepo.ErrPhoneTaken) {
		return uc.userRepo.GetByPhone(ctx, req.PhoneNumber)
	}

	uc.logger.Error("CreateBookingWithUser: failed to create user: %v", err)
	return nil, fmt.Errorf("%w: failed to create user: %v", ErrInternal, err)
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
