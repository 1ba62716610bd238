package timeslot

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

// Repository репозиторий для работы с публикациями интервалов
//
// Времена хранятся в колонке times как TEXT[] в формате RFC3339:
// lib/pq стабильно работает с массивами строк, а конвертация в time.Time
// выполняется на границе репозитория
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория публикаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByKey получает публикацию по ключу (инструктор, дата, тип занятия)
// По инварианту домена такая публикация может быть только одна
func (r *Repository) GetByKey(ctx context.Context, instructorID string, date time.Time, lessonType domain.LessonType) (*domain.TimeSlotPublication, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"instructor_id",
		"date",
		"lesson_type",
		"times",
		"created_at",
		"updated_at",
	).
		From("time_slot_publications").
		Where(squirrel.Eq{
			"instructor_id": instructorID,
			"date":          date.Format(domain.DateFormat),
			"lesson_type":   lessonType,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanPublication(executor.QueryRowContext(ctx, query, args...))
}

// GetByID получает публикацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlotPublication, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"instructor_id",
		"date",
		"lesson_type",
		"times",
		"created_at",
		"updated_at",
	).
		From("time_slot_publications").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanPublication(executor.QueryRowContext(ctx, query, args...))
}

// GetByInstructor получает все публикации инструктора
func (r *Repository) GetByInstructor(ctx context.Context, instructorID string) ([]*domain.TimeSlotPublication, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"instructor_id",
		"date",
		"lesson_type",
		"times",
		"created_at",
		"updated_at",
	).
		From("time_slot_publications").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("date ASC, lesson_type ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPublications(rows)
}

// GetAll получает все публикации всех инструкторов (для админа)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.TimeSlotPublication, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"instructor_id",
		"date",
		"lesson_type",
		"times",
		"created_at",
		"updated_at",
	).
		From("time_slot_publications").
		OrderBy("date ASC, instructor_id ASC, lesson_type ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPublications(rows)
}

// Create создает новую публикацию
func (r *Repository) Create(ctx context.Context, pub *domain.TimeSlotPublication) (*domain.TimeSlotPublication, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slot_publications").
		Columns(
			"instructor_id",
			"date",
			"lesson_type",
			"times",
		).
		Values(
			pub.InstructorID,
			pub.Date.Format(domain.DateFormat),
			pub.LessonType,
			pq.Array(timesToStrings(pub.Times)),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pub.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pub.CreatedAt = createdAt.Time
	pub.UpdatedAt = updatedAt.Time

	return pub, nil
}

// UpdateTimes полностью заменяет набор времён публикации
func (r *Repository) UpdateTimes(ctx context.Context, id int64, times []time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slot_publications").
		Set("times", pq.Array(timesToStrings(times))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTimes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTimes - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTimes - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPublicationNotFound
	}

	return nil
}

// RemoveTimes атомарно удаляет перечисленные времена из публикации
// одним UPDATE, без цикла чтение-изменение-запись на стороне приложения.
// Две конкурентные оплаты по одной публикации не затирают друг друга:
// каждая вычитает только свои времена на уровне БД.
//
// Возвращает ErrPublicationNotFound, если публикации с таким ключом нет -
// вызывающий код решает, считать ли это ошибкой
func (r *Repository) RemoveTimes(ctx context.Context, instructorID string, date time.Time, lessonType domain.LessonType, times []time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slot_publications").
		Set("times", squirrel.Expr(
			"(SELECT COALESCE(array_agg(t ORDER BY t), '{}') FROM unnest(times) AS t WHERE t <> ALL(?::text[]))",
			pq.Array(timesToStrings(times)),
		)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"instructor_id": instructorID,
			"date":          date.Format(domain.DateFormat),
			"lesson_type":   lessonType,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveTimes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveTimes - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveTimes - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPublicationNotFound
	}

	return nil
}

// Delete удаляет публикацию
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slot_publications").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPublicationNotFound
	}

	return nil
}

// DeleteByInstructor удаляет все публикации инструктора
// Используется при каскадном удалении аккаунта
func (r *Repository) DeleteByInstructor(ctx context.Context, instructorID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slot_publications").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByInstructor - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByInstructor - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanPublication сканирует одну строку публикации
func (r *Repository) scanPublication(row *sql.Row) (*domain.TimeSlotPublication, error) {
	var pub domain.TimeSlotPublication
	var rawTimes []string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&pub.ID,
		&pub.InstructorID,
		&pub.Date,
		&pub.LessonType,
		pq.Array(&rawTimes),
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPublicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanPublication - scan row: %v", ErrScanRow, err)
	}

	times, err := stringsToTimes(rawTimes)
	if err != nil {
		return nil, fmt.Errorf("%w: scanPublication - parse times: %v", ErrScanRow, err)
	}

	pub.Times = times
	pub.CreatedAt = createdAt.Time
	pub.UpdatedAt = updatedAt.Time

	return &pub, nil
}

// scanPublications сканирует результаты запроса в слайс публикаций
func (r *Repository) scanPublications(rows *sql.Rows) ([]*domain.TimeSlotPublication, error) {
	publications := make([]*domain.TimeSlotPublication, 0)

	for rows.Next() {
		var pub domain.TimeSlotPublication
		var rawTimes []string
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&pub.ID,
			&pub.InstructorID,
			&pub.Date,
			&pub.LessonType,
			pq.Array(&rawTimes),
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanPublications - scan row: %v", ErrScanRow, err)
		}

		times, err := stringsToTimes(rawTimes)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPublications - parse times: %v", ErrScanRow, err)
		}

		pub.Times = times
		pub.CreatedAt = createdAt.Time
		pub.UpdatedAt = updatedAt.Time

		publications = append(publications, &pub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPublications - rows error: %v", ErrScanRow, err)
	}

	return publications, nil
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
