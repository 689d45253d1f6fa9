package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ConsultService/internal/domain"
	"github.com/m04kA/SMC-ConsultService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConsultService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ConsultService/pkg/types"
)

// uniqueViolation SQLSTATE код нарушения уникального индекса
const uniqueViolation = "23505"

// activeSlotIndex имя частичного уникального индекса на (booking_date, start_time)
// среди активных статусов (см. migrations/0001_init.sql)
const activeSlotIndex = "bookings_active_slot_uniq"

var bookingColumns = []string{
	"id",
	"booking_date",
	"start_time",
	"company",
	"contact_name",
	"contact_email",
	"contact_phone",
	"purpose",
	"location",
	"product",
	"additional_info",
	"status",
	"is_completed",
	"conclusion",
	"reschedule_reason",
	"original_date",
	"original_time",
	"cancellation_reason",
	"cancelled_at",
	"version",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями консультаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Нарушение частичного уникального индекса на (booking_date, start_time)
// среди активных статусов транслируется в ErrSlotTaken - защита от
// double-booking на уровне хранилища, а не только слот-листа
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_date",
			"start_time",
			"company",
			"contact_name",
			"contact_email",
			"contact_phone",
			"purpose",
			"location",
			"product",
			"additional_info",
			"status",
		).
		Values(
			booking.Date,
			booking.Time,
			booking.Company,
			booking.ContactName,
			booking.ContactEmail,
			booking.ContactPhone,
			booking.Purpose,
			booking.Location,
			booking.Product,
			booking.AdditionalInfo,
			booking.Status,
		).
		Suffix("RETURNING id, version, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.Version,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isActiveSlotViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает список бронирований с фильтрацией по статусу и периоду
// Сортировка: по дате и времени (DESC - сначала новые)
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("booking_date DESC, start_time DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.DateTo})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetActiveByDate получает активные бронирования на конкретную дату
// Используется при построении слот-листа и при проверке конфликтов.
// Внутри транзакции добавляет FOR UPDATE для блокировки строк даты
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"status": activeStatuses}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetUpcoming получает бронирования с датой не раньше today
func (r *Repository) GetUpcoming(ctx context.Context, today time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": midnight(today)}).
		OrderBy("booking_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetPastDue получает нетерминальные бронирования с датой раньше today
// Порядок совпадает с порядком загрузки в админском списке
func (r *Repository) GetPastDue(ctx context.Context, today time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	terminalStatuses := make([]string, len(domain.TerminalStatuses))
	for i, s := range domain.TerminalStatuses {
		terminalStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Lt{"booking_date": midnight(today)}).
		Where(squirrel.NotEq{"status": terminalStatuses}).
		OrderBy("booking_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPastDue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPastDue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update выполняет полное редактирование записи с проверкой версии
// При несовпадении версии возвращает ErrVersionConflict (lost update между
// двумя администраторами со stale-снапшотами)
func (r *Repository) Update(ctx context.Context, booking *domain.Booking, expectedVersion int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", booking.Date).
		Set("start_time", booking.Time).
		Set("company", booking.Company).
		Set("contact_name", booking.ContactName).
		Set("contact_email", booking.ContactEmail).
		Set("contact_phone", booking.ContactPhone).
		Set("purpose", booking.Purpose).
		Set("location", booking.Location).
		Set("product", booking.Product).
		Set("additional_info", booking.AdditionalInfo).
		Set("status", booking.Status).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID, "version": expectedVersion}).
		Suffix("RETURNING version, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.Version, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		// Либо записи нет, либо версия устарела - различаем отдельным запросом
		if _, getErr := r.GetByID(ctx, booking.ID); errors.Is(getErr, ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, ErrVersionConflict
	}
	if err != nil {
		if isActiveSlotViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	booking.UpdatedAt = updatedAt.Time
	return booking, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateStatus", query, args)
}

// Cancel отменяет бронирование с опциональной причиной
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Cancel", query, args)
}

// Reschedule переносит бронирование на новые дату и время
// original_date/original_time заполняются ТЕКУЩИМИ значениями только при первом
// переносе: COALESCE в SET-выражениях видит значения строки ДО обновления,
// поэтому повторные переносы сохраняют исходный слот, а не предыдущий
func (r *Repository) Reschedule(ctx context.Context, id int64, newDate time.Time, newTime types.TimeString, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("original_date", squirrel.Expr("COALESCE(original_date, booking_date)")).
		Set("original_time", squirrel.Expr("COALESCE(original_time, start_time)")).
		Set("booking_date", newDate).
		Set("start_time", newTime).
		Set("reschedule_reason", reason).
		Set("status", domain.StatusRescheduled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isActiveSlotViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	return checkRowsAffected(result, "Reschedule")
}

// Complete завершает бронирование с заключением
func (r *Repository) Complete(ctx context.Context, id int64, conclusion string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCompleted).
		Set("is_completed", true).
		Set("conclusion", conclusion).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Complete", query, args)
}

// Delete удаляет бронирование (физическое удаление)
// Сервисный слой разрешает удаление только отменённых бронирований
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Delete", query, args)
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}
	return checkRowsAffected(result, op)
}

func checkRowsAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func isActiveSlotViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) &&
		string(pqErr.Code) == uniqueViolation &&
		pqErr.Constraint == activeSlotIndex
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime
	var originalTime sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.Date,
		&booking.Time,
		&booking.Company,
		&booking.ContactName,
		&booking.ContactEmail,
		&booking.ContactPhone,
		&booking.Purpose,
		&booking.Location,
		&booking.Product,
		&booking.AdditionalInfo,
		&booking.Status,
		&booking.IsCompleted,
		&booking.Conclusion,
		&booking.RescheduleReason,
		&booking.OriginalDate,
		&originalTime,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&booking.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if originalTime.Valid {
		var ts types.TimeString
		if err := ts.Scan(originalTime.String); err != nil {
			return nil, err
		}
		booking.OriginalTime = &ts
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
