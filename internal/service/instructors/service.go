package instructors

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/instructor"
)

// Service сервис управления профилями инструкторов
//
// Все операции административные: доступ ограничивается на уровне HTTP
type Service struct {
	storage         InstructorStorage
	timeslotStorage TimeSlotStorage
	logger          Logger
}

// NewService создаёт новый экземпляр сервиса инструкторов
func NewService(storage InstructorStorage, timeslotStorage TimeSlotStorage, logger Logger) *Service {
	return &Service{
		storage:         storage,
		timeslotStorage: timeslotStorage,
		logger:          logger,
	}
}

// Create создаёт профиль инструктора
// Если ID не задан, генерируется новый
func (s *Service) Create(ctx context.Context, inst *domain.Instructor) (*domain.Instructor, error) {
	if err := validateInstructor(inst); err != nil {
		return nil, err
	}

	if inst.ID == "" {
		inst.ID = uuid.NewString()
	}

	created, err := s.storage.Create(ctx, inst)
	if err != nil {
		if errors.Is(err, instructor.ErrDuplicateInstructor) {
			return nil, fmt.Errorf("%w: Create - user=%s", ErrDuplicateInstructor, inst.UserID)
		}
		s.logger.Error("[InstructorsService.Create] Failed to create instructor: user=%s, error=%v", inst.UserID, err)
		return nil, fmt.Errorf("%w: Create - failed to create instructor: %v", ErrInternal, err)
	}

	s.logger.Info("[InstructorsService.Create] Instructor created: id=%s, user=%s", created.ID, created.UserID)
	return created, nil
}

// UpdateCosts обновляет стоимость интервалов инструктора
func (s *Service) UpdateCosts(ctx context.Context, id string, drivingCost, learnersCost float64) (*domain.Instructor, error) {
	if drivingCost < 0 || learnersCost < 0 {
		return nil, fmt.Errorf("%w: costs must be non-negative", ErrInvalidInstructor)
	}

	if err := s.storage.UpdateCosts(ctx, id, drivingCost, learnersCost); err != nil {
		if errors.Is(err, instructor.ErrInstructorNotFound) {
			return nil, fmt.Errorf("%w: UpdateCosts - instructor=%s", ErrInstructorNotFound, id)
		}
		s.logger.Error("[InstructorsService.UpdateCosts] Failed to update costs: id=%s, error=%v", id, err)
		return nil, fmt.Errorf("%w: UpdateCosts - failed to update costs: %v", ErrInternal, err)
	}

	inst, err := s.storage.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("[InstructorsService.UpdateCosts] Failed to reload instructor: id=%s, error=%v", id, err)
		return nil, fmt.Errorf("%w: UpdateCosts - failed to reload instructor: %v", ErrInternal, err)
	}

	s.logger.Info("[InstructorsService.UpdateCosts] Costs updated: id=%s, driving=%.2f, learners=%.2f",
		id, drivingCost, learnersCost)
	return inst, nil
}

// Delete удаляет профиль инструктора вместе с его публикациями
//
// Публикации удаляются явно до профиля: витрина доступности пустеет
// сразу, не полагаясь на каскад на уровне схемы
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.storage.GetByID(ctx, id); err != nil {
		if errors.Is(err, instructor.ErrInstructorNotFound) {
			return fmt.Errorf("%w: Delete - instructor=%s", ErrInstructorNotFound, id)
		}
		s.logger.Error("[InstructorsService.Delete] Failed to get instructor: id=%s, error=%v", id, err)
		return fmt.Errorf("%w: Delete - failed to get instructor: %v", ErrInternal, err)
	}

	if err := s.timeslotStorage.DeleteByInstructor(ctx, id); err != nil {
		s.logger.Error("[InstructorsService.Delete] Failed to delete publications: id=%s, error=%v", id, err)
		return fmt.Errorf("%w: Delete - failed to delete publications: %v", ErrInternal, err)
	}

	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, instructor.ErrInstructorNotFound) {
			return fmt.Errorf("%w: Delete - instructor=%s", ErrInstructorNotFound, id)
		}
		s.logger.Error("[InstructorsService.Delete] Failed to delete instructor: id=%s, error=%v", id, err)
		return fmt.Errorf("%w: Delete - failed to delete instructor: %v", ErrInternal, err)
	}

	s.logger.Info("[InstructorsService.Delete] Instructor deleted: id=%s", id)
	return nil
}

func validateInstructor(inst *domain.Instructor) error {
	if inst.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInstructor)
	}
	if inst.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInstructor)
	}
	if inst.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInstructor)
	}
	if inst.DrivingCost < 0 || inst.LearnersCost < 0 {
		return fmt.Errorf("%w: costs must be non-negative", ErrInvalidInstructor)
	}
	return nil
}
