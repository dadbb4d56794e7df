package admins

import (
	"context"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	GetByUsername(ctx context.Context, role domain.Role, username string) (*domain.Admin, error)
	Create(ctx context.Context, role domain.Role, a *domain.Admin) (*domain.Admin, error)
	ListAdmins(ctx context.Context) ([]*domain.Admin, error)
	DeleteAdmin(ctx context.Context, id int64) error
}

// TokenIssuer выпускает подписанные токены доступа
type TokenIssuer interface {
	Issue(username string, role domain.Role) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
