package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AutoSchool-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"user_id",
	"instructor_id",
	"date",
	"lesson_type",
	"times",
	"cost",
	"payment_method",
	"paid",
	"booking_number",
	"payment_token",
	"status",
	"created_at",
	"updated_at",
}

// InsertBatch вставляет пакет бронирований одним INSERT
// ID созданных записей проставляются в переданные структуры.
// Атомарность между записями пакета обеспечивается самим INSERT:
// либо вставляются все, либо ни одной
func (r *Repository) InsertBatch(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return ErrEmptyBatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"instructor_id",
			"date",
			"lesson_type",
			"times",
			"cost",
			"payment_method",
			"paid",
			"booking_number",
			"payment_token",
			"status",
		)

	for _, b := range bookings {
		insertBuilder = insertBuilder.Values(
			b.UserID,
			b.InstructorID,
			b.Date.Format(domain.DateFormat),
			b.LessonType,
			pq.Array(timesToStrings(b.Times)),
			b.Cost,
			b.PaymentMethod,
			b.Paid,
			b.BookingNumber,
			b.PaymentToken,
			b.Status,
		)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: InsertBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: InsertBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// RETURNING возвращает строки в порядке вставки
	i := 0
	for rows.Next() {
		if i >= len(bookings) {
			break
		}

		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&bookings[i].ID, &createdAt, &updatedAt); err != nil {
			return fmt.Errorf("%w: InsertBatch - scan returned id: %v", ErrScanRow, err)
		}
		bookings[i].CreatedAt = createdAt.Time
		bookings[i].UpdatedAt = updatedAt.Time
		i++
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: InsertBatch - rows error: %v", ErrScanRow, err)
	}

	return nil
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

	bookings, err := r.queryBookings(ctx, executor, query, args)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// GetByUser получает бронирования пользователя с фильтрацией
// по году занятия и типу занятия
func (r *Repository) GetByUser(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("date DESC, id DESC")

	// Фильтрация по году: [1 января year, 1 января year+1)
	if filter.Year != nil {
		start := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"date": start.Format(domain.DateFormat)}).
			Where(squirrel.Lt{"date": end.Format(domain.DateFormat)})
	}

	if filter.LessonType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"lesson_type": *filter.LessonType})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, query, args)
}

// GetActiveByInstructor получает неотменённые бронирования инструктора.
// Используется при вычислении эффективной доступности: отменённые
// бронирования интервалы не занимают
func (r *Repository) GetActiveByInstructor(ctx context.Context, instructorID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"instructor_id": instructorID,
			"status":        domain.ActiveStatuses,
		}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByInstructor - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, query, args)
}

// GetByInstructor получает все бронирования инструктора, включая отменённые
func (r *Repository) GetByInstructor(ctx context.Context, instructorID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructor - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, query, args)
}

// GetAll получает все бронирования (для админа)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, query, args)
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

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// MarkPaidByPaymentToken помечает оплаченными неоплаченные бронирования
// пользователя, привязанные к указанному payment intent.
// Привязка через payment_token удерживает подтверждение в рамках конкретной
// оплаты: вторая параллельная неоплаченная покупка того же пользователя
// не будет ошибочно помечена оплаченной
func (r *Repository) MarkPaidByPaymentToken(ctx context.Context, userID, paymentToken string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("paid", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"user_id":       userID,
			"payment_token": paymentToken,
			"paid":          false,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MarkPaidByPaymentToken - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkPaidByPaymentToken - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkPaidByPaymentToken - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// queryBookings выполняет запрос и сканирует результат в слайс бронирований
func (r *Repository) queryBookings(ctx context.Context, executor DBExecutor, query string, args []interface{}) ([]*domain.Booking, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: queryBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var rawTimes []string
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.InstructorID,
			&b.Date,
			&b.LessonType,
			pq.Array(&rawTimes),
			&b.Cost,
			&b.PaymentMethod,
			&b.Paid,
			&b.BookingNumber,
			&b.PaymentToken,
			&b.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: queryBookings - scan row: %v", ErrScanRow, err)
		}

		times, err := stringsToTimes(rawTimes)
		if err != nil {
			return nil, fmt.Errorf("%w: queryBookings - parse times: %v", ErrScanRow, err)
		}

		b.Times = times
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: queryBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// timesToStrings сериализует времена в RFC3339 (UTC) для хранения в TEXT[]
func timesToStrings(times []time.Time) []string {
	result := make([]string, len(times))
	for i, t := range times {
		result[i] = t.UTC().Format(time.RFC3339)
	}
	return result
}

// stringsToTimes парсит времена из RFC3339
func stringsToTimes(raw []string) ([]time.Time, error) {
	result := make([]time.Time, len(raw))
	for i, s := range raw {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, err
		}
		result[i] = t
	}
	return result, nil
}
