package instructor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AutoSchool-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с профилями инструкторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория инструкторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var instructorColumns = []string{
	"id",
	"user_id",
	"name",
	"email",
	"phone",
	"driving_cost",
	"learners_cost",
	"created_at",
	"updated_at",
}

// Create создает профиль инструктора
func (r *Repository) Create(ctx context.Context, inst *domain.Instructor) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("instructors").
		Columns(
			"id",
			"user_id",
			"name",
			"email",
			"phone",
			"driving_cost",
			"learners_cost",
		).
		Values(
			inst.ID,
			inst.UserID,
			inst.Name,
			inst.Email,
			inst.Phone,
			inst.DrivingCost,
			inst.LearnersCost,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateInstructor
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	inst.CreatedAt = createdAt.Time
	inst.UpdatedAt = updatedAt.Time

	return inst, nil
}

// GetByID получает инструктора по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Instructor, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByUserID получает профиль инструктора по ID пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Instructor, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID})
}

// List получает всех инструкторов (витрина для учеников)
func (r *Repository) List(ctx context.Context) ([]*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(instructorColumns...).
		From("instructors").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	instructors := make([]*domain.Instructor, 0)
	for rows.Next() {
		inst, err := scanInstructorRow(rows)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, inst)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return instructors, nil
}

// GetByIDs получает инструкторов по списку ID
// Используется для сбора получателей уведомлений после оплаты
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Instructor, error) {
	if len(ids) == 0 {
		return []*domain.Instructor{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(instructorColumns...).
		From("instructors").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	instructors := make([]*domain.Instructor, 0, len(ids))
	for rows.Next() {
		inst, err := scanInstructorRow(rows)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, inst)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return instructors, nil
}

// UpdateCosts обновляет стоимость интервалов инструктора
func (r *Repository) UpdateCosts(ctx context.Context, id string, drivingCost, learnersCost float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("instructors").
		Set("driving_cost", drivingCost).
		Set("learners_cost", learnersCost).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCosts - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateCosts - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateCosts - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInstructorNotFound
	}

	return nil
}

// Delete удаляет профиль инструктора
// Публикации интервалов удаляются каскадно на уровне схемы БД
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("instructors").
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
		return ErrInstructorNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(instructorColumns...).
		From("instructors").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var inst domain.Instructor
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&inst.ID,
		&inst.UserID,
		&inst.Name,
		&inst.Email,
		&inst.Phone,
		&inst.DrivingCost,
		&inst.LearnersCost,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan instructor: %v", ErrScanRow, err)
	}

	inst.CreatedAt = createdAt.Time
	inst.UpdatedAt = updatedAt.Time

	return &inst, nil
}

func scanInstructorRow(rows *sql.Rows) (*domain.Instructor, error) {
	var inst domain.Instructor
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&inst.ID,
		&inst.UserID,
		&inst.Name,
		&inst.Email,
		&inst.Phone,
		&inst.DrivingCost,
		&inst.LearnersCost,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: scanInstructorRow - scan row: %v", ErrScanRow, err)
	}

	inst.CreatedAt = createdAt.Time
	inst.UpdatedAt = updatedAt.Time

	return &inst, nil
}
