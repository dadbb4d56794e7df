package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	"github.com/m04kA/MMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/MMC-AppointmentService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

// Repository репозиторий администраторов
// Роли admin и superadmin хранятся в отдельных таблицах, как в исходной схеме
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func tableForRole(role domain.Role) (string, error) {
	switch role {
	case domain.RoleAdmin:
		return "admins", nil
	case domain.RoleSuperAdmin:
		return "super_admins", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

// GetByUsername получает администратора по имени пользователя в таблице роли
func (r *Repository) GetByUsername(ctx context.Context, role domain.Role, username string) (*domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table, err := tableForRole(role)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select("id", "username", "hashed_password").
		From(table).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Admin
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Username, &a.HashedPassword)
	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan admin: %v", ErrScanRow, err)
	}

	return &a, nil
}

// Create создает администратора в таблице роли
// Нарушение уникальности имени транслируется в ErrUsernameTaken
func (r *Repository) Create(ctx context.Context, role domain.Role, a *domain.Admin) (*domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table, err := tableForRole(role)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("username", "hashed_password").
		Values(a.Username, a.HashedPassword).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&a.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// ListAdmins возвращает всех администраторов с ролью admin
func (r *Repository) ListAdmins(ctx context.Context) ([]*domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "username", "hashed_password").
		From("admins").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAdmins - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAdmins - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	admins := make([]*domain.Admin, 0)
	for rows.Next() {
		var a domain.Admin
		if err := rows.Scan(&a.ID, &a.Username, &a.HashedPassword); err != nil {
			return nil, fmt.Errorf("%w: ListAdmins - scan row: %v", ErrScanRow, err)
		}
		admins = append(admins, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAdmins - rows error: %v", ErrScanRow, err)
	}

	return admins, nil
}

// DeleteAdmin удаляет администратора с ролью admin по ID
func (r *Repository) DeleteAdmin(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("admins").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAdmin - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteAdmin - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteAdmin - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAdminNotFound
	}

	return nil
}
