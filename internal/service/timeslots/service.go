package timeslots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/instructor"
	"github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/AutoSchool-BookingService/internal/service/timeslots/models"
)

// Service сервис управления публикациями интервалов инструкторов
//
// Действующее лицо всех операций - аутентифицированный пользователь:
// сервис сам находит его профиль инструктора и проверяет владение
type Service struct {
	timeslotStorage   TimeSlotStorage
	instructorStorage InstructorStorage
	logger            Logger
}

// NewService создаёт новый экземпляр сервиса публикаций
func NewService(timeslotStorage TimeSlotStorage, instructorStorage InstructorStorage, logger Logger) *Service {
	return &Service{
		timeslotStorage:   timeslotStorage,
		instructorStorage: instructorStorage,
		logger:            logger,
	}
}

// Publish публикует интервалы инструктора на дату
//
// На ключ (инструктор, дата, тип занятия) существует не более одной
// публикации: если она уже есть, новые времена добавляются в неё с
// дедупликацией по времени суток, иначе создаётся новая запись.
func (s *Service) Publish(ctx context.Context, userID string, date time.Time, lessonType domain.LessonType, times []time.Time) (*models.PublishResult, error) {
	if err := validatePublication(lessonType, times); err != nil {
		return nil, err
	}

	// Шаг 1: находим профиль инструктора пользователя
	inst, err := s.resolveInstructor(ctx, userID)
	if err != nil {
		return nil, err
	}

	times = dedupeTimes(times)

	// Шаг 2: ищем существующую публикацию по ключу
	existing, err := s.timeslotStorage.GetByKey(ctx, inst.ID, date, lessonType)
	if err != nil && !errors.Is(err, timeslot.ErrPublicationNotFound) {
		s.logger.Error("[TimeslotsService.Publish] Failed to get publication: instructor=%s, error=%v", inst.ID, err)
		return nil, fmt.Errorf("%w: Publish - failed to get publication: %v", ErrInternal, err)
	}

	// Шаг 3а: публикации нет - создаём новую
	if existing == nil {
		created, err := s.timeslotStorage.Create(ctx, &domain.TimeSlotPublication{
			InstructorID: inst.ID,
			Date:         date,
			LessonType:   lessonType,
			Times:        times,
		})
		if err != nil {
			s.logger.Error("[TimeslotsService.Publish] Failed to create publication: instructor=%s, error=%v", inst.ID, err)
			return nil, fmt.Errorf("%w: Publish - failed to create publication: %v", ErrInternal, err)
		}

		s.logger.Info("[TimeslotsService.Publish] Publication created: id=%d, instructor=%s, date=%s, times=%d",
			created.ID, inst.ID, created.DateKey(), len(created.Times))

		return &models.PublishResult{
			Status:      models.PublishStatusCreated,
			Publication: created,
		}, nil
	}

	// Шаг 3б: публикация есть - добавляем недостающие времена
	added := 0
	for _, t := range times {
		if existing.ContainsTimeOfDay(t) {
			continue
		}
		existing.Times = append(existing.Times, t)
		added++
	}

	if added > 0 {
		if err := s.timeslotStorage.UpdateTimes(ctx, existing.ID, existing.Times); err != nil {
			s.logger.Error("[TimeslotsService.Publish] Failed to update publication: id=%d, error=%v", existing.ID, err)
			return nil, fmt.Errorf("%w: Publish - failed to update publication: %v", ErrInternal, err)
		}
	}

	s.logger.Info("[TimeslotsService.Publish] Publication extended: id=%d, instructor=%s, addedTimes=%d",
		existing.ID, inst.ID, added)

	return &models.PublishResult{
		Status:      models.PublishStatusExtended,
		Publication: existing,
	}, nil
}

// ListOwn возвращает все публикации инструктора-пользователя
func (s *Service) ListOwn(ctx context.Context, userID string) ([]*domain.TimeSlotPublication, error) {
	inst, err := s.resolveInstructor(ctx, userID)
	if err != nil {
		return nil, err
	}

	publications, err := s.timeslotStorage.GetByInstructor(ctx, inst.ID)
	if err != nil {
		s.logger.Error("[TimeslotsService.ListOwn] Failed to list publications: instructor=%s, error=%v", inst.ID, err)
		return nil, fmt.Errorf("%w: ListOwn - failed to list publications: %v", ErrInternal, err)
	}
	return publications, nil
}

// ListAll возвращает публикации всех инструкторов (для админа)
func (s *Service) ListAll(ctx context.Context) ([]*domain.TimeSlotPublication, error) {
	publications, err := s.timeslotStorage.GetAll(ctx)
	if err != nil {
		s.logger.Error("[TimeslotsService.ListAll] Failed to list publications: error=%v", err)
		return nil, fmt.Errorf("%w: ListAll - failed to list publications: %v", ErrInternal, err)
	}
	return publications, nil
}

// Delete удаляет публикацию с проверкой владения:
// инструктор может удалять только свои публикации
func (s *Service) Delete(ctx context.Context, userID string, publicationID int64) error {
	inst, err := s.resolveInstructor(ctx, userID)
	if err != nil {
		return err
	}

	pub, err := s.timeslotStorage.GetByID(ctx, publicationID)
	if err != nil {
		if errors.Is(err, timeslot.ErrPublicationNotFound) {
			return fmt.Errorf("%w: Delete - publication=%d", ErrPublicationNotFound, publicationID)
		}
		s.logger.Error("[TimeslotsService.Delete] Failed to get publication: id=%d, error=%v", publicationID, err)
		return fmt.Errorf("%w: Delete - failed to get publication: %v", ErrInternal, err)
	}

	if pub.InstructorID != inst.ID {
		s.logger.Warn("[TimeslotsService.Delete] Attempt to delete foreign publication: id=%d, owner=%s, actor=%s",
			publicationID, pub.InstructorID, inst.ID)
		return fmt.Errorf("%w: Delete - publication=%d belongs to another instructor", ErrPermissionDenied, publicationID)
	}

	if err := s.timeslotStorage.Delete(ctx, publicationID); err != nil {
		if errors.Is(err, timeslot.ErrPublicationNotFound) {
			return fmt.Errorf("%w: Delete - publication=%d", ErrPublicationNotFound, publicationID)
		}
		s.logger.Error("[TimeslotsService.Delete] Failed to delete publication: id=%d, error=%v", publicationID, err)
		return fmt.Errorf("%w: Delete - failed to delete publication: %v", ErrInternal, err)
	}

	s.logger.Info("[TimeslotsService.Delete] Publication deleted: id=%d, instructor=%s", publicationID, inst.ID)
	return nil
}

// resolveInstructor находит профиль инструктора аутентифицированного
// пользователя
func (s *Service) resolveInstructor(ctx context.Context, userID string) (*domain.Instructor, error) {
	inst, err := s.instructorStorage.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, instructor.ErrInstructorNotFound) {
			s.logger.Warn("[TimeslotsService] User has no instructor profile: user=%s", userID)
			return nil, fmt.Errorf("%w: user=%s", ErrNotInstructor, userID)
		}
		s.logger.Error("[TimeslotsService] Failed to resolve instructor: user=%s, error=%v", userID, err)
		return nil, fmt.Errorf("%w: failed to resolve instructor: %v", ErrInternal, err)
	}
	return inst, nil
}

func validatePublication(lessonType domain.LessonType, times []time.Time) error {
	if !domain.ValidLessonType(lessonType) {
		return fmt.Errorf("%w: unknown lesson type %q", ErrInvalidPublication, lessonType)
	}
	if len(times) == 0 {
		return fmt.Errorf("%w: at least one time is required", ErrInvalidPublication)
	}
	if len(times) > domain.MaxTimesPerEntry {
		return fmt.Errorf("%w: at most %d times per publication", ErrInvalidPublication, domain.MaxTimesPerEntry)
	}
	return nil
}

func dedupeTimes(times []time.Time) []time.Time {
	result := make([]time.Time, 0, len(times))
	for _, t := range times {
		duplicate := false
		for _, existing := range result {
			if domain.SameTimeOfDay(existing, t) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result = append(result, t)
		}
	}
	return result
}
