package admins

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MMC-AppointmentService/internal/auth"
	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	adminRepo "github.com/m04kA/MMC-AppointmentService/internal/infra/storage/admin"
)

// Service сервис администраторов: аутентификация и жизненный цикл учетных записей
type Service struct {
	adminRepo AdminRepository
	tokens    TokenIssuer
	logger    Logger
}

// NewService создает новый экземпляр сервиса администраторов
func NewService(adminRepo AdminRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login аутентифицирует администратора и выпускает токен доступа
// Любая причина отказа схлопывается в ErrInvalidCredentials
func (s *Service) Login(ctx context.Context, username, password string, role domain.Role) (string, error) {
	if !role.IsValid() {
		return "", ErrInvalidCredentials
	}

	account, err := s.adminRepo.GetByUsername(ctx, role, username)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: unknown %s username=%s", role, username)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%s: %v", username, err)
		return "", fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !auth.CheckPassword(account.HashedPassword, password) {
		s.logger.Warn("Login: wrong password for %s username=%s", role, username)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Username, role)
	if err != nil {
		s.logger.Error("Login: failed to issue token for username=%s: %v", username, err)
		return "", fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: %s username=%s authenticated", role, username)
	return token, nil
}

// CreateAdmin создает учетную запись администратора (роль admin)
func (s *Service) CreateAdmin(ctx context.Context, username, password string) (*domain.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(username) > domain.MaxUsernameLength {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(password) < domain.MinPasswordLength {
		return nil, fmt.Errorf("%w: password is too short", ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error("CreateAdmin: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: CreateAdmin - hash password: %v", ErrInternal, err)
	}

	created, err := s.adminRepo.Create(ctx, domain.RoleAdmin, &domain.Admin{
		Username:       username,
		HashedPassword: hash,
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrUsernameTaken) {
			s.logger.Warn("CreateAdmin: username=%s already registered", username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("CreateAdmin: repository error for username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: CreateAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAdmin: admin id=%d username=%s created", created.ID, created.Username)
	return created, nil
}

// ListAdmins возвращает всех администраторов с ролью admin
func (s *Service) ListAdmins(ctx context.Context) ([]*domain.Admin, error) {
	admins, err := s.adminRepo.ListAdmins(ctx)
	if err != nil {
		s.logger.Error("ListAdmins: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAdmins - repository error: %v", ErrInternal, err)
	}
	return admins, nil
}

// DeleteAdmin удаляет администратора с ролью admin
func (s *Service) DeleteAdmin(ctx context.Context, id int64) error {
	if err := s.adminRepo.DeleteAdmin(ctx, id); err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("DeleteAdmin: admin id=%d not found", id)
			return ErrAdminNotFound
		}
		s.logger.Error("DeleteAdmin: repository error for admin id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAdmin: admin id=%d deleted", id)
	return nil
}

// BootstrapSuperAdmin создает суперадмина при старте сервиса, если его еще нет
// Заменяет ручной скрипт сидинга: учетные данные берутся из конфигурации
func (s *Service) BootstrapSuperAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.adminRepo.GetByUsername(ctx, domain.RoleSuperAdmin, username)
	if err == nil {
		s.logger.Info("BootstrapSuperAdmin: superadmin %s already exists", username)
		return nil
	}
	if !errors.Is(err, adminRepo.ErrAdminNotFound) {
		return fmt.Errorf("%w: BootstrapSuperAdmin - repository error: %v", ErrInternal, err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: BootstrapSuperAdmin - hash password: %v", ErrInternal, err)
	}

	created, err := s.adminRepo.Create(ctx, domain.RoleSuperAdmin, &domain.Admin{
		Username:       username,
		HashedPassword: hash,
	})
	if err != nil {
		// Параллельный старт другого инстанса мог успеть создать запись
		if errors.Is(err, adminRepo.ErrUsernameTaken) {
			return nil
		}
		return fmt.Errorf("%w: BootstrapSuperAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BootstrapSuperAdmin: superadmin id=%d username=%s created", created.ID, created.Username)
	return nil
}
