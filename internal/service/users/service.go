package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/MMC-AppointmentService/internal/infra/storage/user"
)

// Service сервис пользователей
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя
// Пользователь неизменяем после создания; повторная регистрация номера — конфликт
func (s *Service) Register(ctx context.Context, name, phoneNumber string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.ValidPhoneNumber(phoneNumber) {
		return nil, fmt.Errorf("%w: invalid phone number format", ErrInvalidInput)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{Name: name, PhoneNumber: phoneNumber})
	if err != nil {
		if errors.Is(err, userRepo.ErrPhoneTaken) {
			s.logger.Warn("Register: phone %s already registered", phoneNumber)
			return nil, ErrPhoneTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user id=%d created", created.ID)
	return created, nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return user, nil
}
