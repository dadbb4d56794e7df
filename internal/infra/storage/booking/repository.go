package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	"github.com/m04kA/MMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/MMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

// Код ошибки PostgreSQL при нарушении уникального ограничения
const pqUniqueViolation = "23505"

var bookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.booking_date",
	"b.timeslot",
	"b.session",
	"b.order_number",
	"b.turn_number",
	"b.created_at",
	"u.id",
	"u.name",
	"u.phone_number",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новое бронирование
// Нарушение уникальности (booking_date, timeslot) транслируется в ErrSlotConflict:
// индекс в БД страхует от гонки, даже если проверка занятости слота уже прошла
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"booking_date",
			"timeslot",
			"session",
			"order_number",
			"turn_number",
		).
		Values(
			b.UserID,
			b.Date,
			b.Timeslot,
			b.Session,
			b.OrderNumber,
			b.TurnNumber,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByID получает бронирование по ID вместе с владельцем
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetBySlot точечный поиск бронирования по (date, timeslot)
// Внутри транзакции строка блокируется (FOR UPDATE) на время аллокации
func (r *Repository) GetBySlot(ctx context.Context, date time.Time, timeslot types.TimeString) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBookings().
		Where(squirrel.Eq{"b.booking_date": date, "b.timeslot": timeslot})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListByDate получает все бронирования на дату в порядке создания
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return r.list(ctx, "ListByDate", squirrel.Eq{"b.booking_date": date}, "b.id ASC", false)
}

// ListByDateOrderedByTurn получает все бронирования на дату в порядке очереди
func (r *Repository) ListByDateOrderedByTurn(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return r.list(ctx, "ListByDateOrderedByTurn", squirrel.Eq{"b.booking_date": date}, "b.turn_number ASC", false)
}

// ListBySession получает все бронирования (date, session) в хронологическом порядке слотов
// Внутри транзакции строки блокируются (FOR UPDATE) — это критическая секция
// пересчета номеров очереди
func (r *Repository) ListBySession(ctx context.Context, date time.Time, session string) ([]*domain.Booking, error) {
	return r.list(ctx, "ListBySession",
		squirrel.Eq{"b.booking_date": date, "b.session": session},
		"b.timeslot ASC, b.id ASC",
		dbmetrics.IsInTransaction(ctx))
}

// MaxOrderNumber возвращает максимальный order_number для (date, session), 0 если броней нет
func (r *Repository) MaxOrderNumber(ctx context.Context, date time.Time, session string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(MAX(order_number), 0)").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date, "session": session}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MaxOrderNumber - build select query: %v", ErrBuildQuery, err)
	}

	var max int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&max); err != nil {
		return 0, fmt.Errorf("%w: MaxOrderNumber - scan: %v", ErrScanRow, err)
	}

	return max, nil
}

// CountByDate возвращает количество бронирований на дату
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDate - scan: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateTurnNumbers сохраняет пересчитанные номера очереди
// Вызывается только внутри транзакции пересчета
func (r *Repository) UpdateTurnNumbers(ctx context.Context, bookings []*domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, b := range bookings {
		query, args, err := psqlbuilder.Update("bookings").
			Set("turn_number", b.TurnNumber).
			Where(squirrel.Eq{"id": b.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: UpdateTurnNumbers - build update query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: UpdateTurnNumbers - execute update: %v", ErrExecQuery, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: UpdateTurnNumbers - get rows affected: %v", ErrExecQuery, err)
		}
		if rowsAffected == 0 {
			return ErrBookingNotFound
		}
	}

	return nil
}

func (r *Repository) selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("users u ON u.id = b.user_id")
}

func (r *Repository) list(ctx context.Context, method string, where squirrel.Eq, orderBy string, forUpdate bool) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBookings().
		Where(where).
		OrderBy(orderBy)

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return bookings, nil
}

func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		user      domain.User
		timeslot  string
		createdAt sql.NullTime
	)

	err := scan(
		&booking.ID,
		&booking.UserID,
		&booking.Date,
		&timeslot,
		&booking.Session,
		&booking.OrderNumber,
		&booking.TurnNumber,
		&createdAt,
		&user.ID,
		&user.Name,
		&user.PhoneNumber,
	)
	if err != nil {
		return nil, err
	}

	booking.Timeslot = types.TimeString(timeslot)
	booking.CreatedAt = createdAt.Time
	booking.User = &user

	return &booking, nil
}
