package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/instructor"
)

// Service сервис истории и жизненного цикла бронирований
type Service struct {
	storage           BookingStorage
	instructorStorage InstructorStorage
	logger            Logger
}

// NewService создаёт новый экземпляр сервиса бронирований
func NewService(storage BookingStorage, instructorStorage InstructorStorage, logger Logger) *Service {
	return &Service{
		storage:           storage,
		instructorStorage: instructorStorage,
		logger:            logger,
	}
}

// ListForUser возвращает бронирования пользователя с опциональными
// фильтрами по году и типу занятия
func (s *Service) ListForUser(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error) {
	if filter.LessonType != nil && !domain.ValidLessonType(*filter.LessonType) {
		return nil, fmt.Errorf("%w: ListForUser - unknown lesson type %q", ErrInvalidStatus, *filter.LessonType)
	}

	result, err := s.storage.GetByUser(ctx, filter)
	if err != nil {
		s.logger.Error("[BookingsService.ListForUser] Failed to list bookings: user=%s, error=%v", filter.UserID, err)
		return nil, fmt.Errorf("%w: ListForUser - failed to list bookings: %v", ErrInternal, err)
	}
	return result, nil
}

// ListForInstructor возвращает все бронирования на занятия
// инструктора-пользователя
func (s *Service) ListForInstructor(ctx context.Context, userID string) ([]*domain.Booking, error) {
	inst, err := s.resolveInstructor(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.storage.GetByInstructor(ctx, inst.ID)
	if err != nil {
		s.logger.Error("[BookingsService.ListForInstructor] Failed to list bookings: instructor=%s, error=%v", inst.ID, err)
		return nil, fmt.Errorf("%w: ListForInstructor - failed to list bookings: %v", ErrInternal, err)
	}
	return result, nil
}

// ListAll возвращает все бронирования (для админа)
func (s *Service) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	result, err := s.storage.GetAll(ctx)
	if err != nil {
		s.logger.Error("[BookingsService.ListAll] Failed to list bookings: error=%v", err)
		return nil, fmt.Errorf("%w: ListAll - failed to list bookings: %v", ErrInternal, err)
	}
	return result, nil
}

// Cancel отменяет бронирование по запросу его владельца
//
// Отменённое бронирование перестаёт блокировать времена в расчёте
// доступности: часы инструктора снова видны ученикам
func (s *Service) Cancel(ctx context.Context, userID string, bookingID int64) (*domain.Booking, error) {
	b, err := s.getOwned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if !b.CanBeCancelled() {
		return nil, fmt.Errorf("%w: Cancel - booking=%d has status %s", ErrNotCancellable, bookingID, b.Status)
	}

	if err := s.storage.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		s.logger.Error("[BookingsService.Cancel] Failed to update status: booking=%d, error=%v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - failed to update status: %v", ErrInternal, err)
	}

	b.Status = domain.StatusCancelled

	s.logger.Info("[BookingsService.Cancel] Booking cancelled: id=%d, user=%s", bookingID, userID)
	return b, nil
}

// Complete помечает бронирование завершённым по запросу инструктора,
// который провёл занятие
func (s *Service) Complete(ctx context.Context, userID string, bookingID int64) (*domain.Booking, error) {
	inst, err := s.resolveInstructor(ctx, userID)
	if err != nil {
		return nil, err
	}

	b, err := s.getByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.InstructorID != inst.ID {
		s.logger.Warn("[BookingsService.Complete] Attempt to complete foreign booking: id=%d, owner=%s, actor=%s",
			bookingID, b.InstructorID, inst.ID)
		return nil, fmt.Errorf("%w: Complete - booking=%d belongs to another instructor", ErrPermissionDenied, bookingID)
	}

	if !b.IsActive() {
		return nil, fmt.Errorf("%w: Complete - booking=%d has status %s", ErrInvalidStatus, bookingID, b.Status)
	}

	if err := s.storage.UpdateStatus(ctx, bookingID, domain.StatusCompleted); err != nil {
		s.logger.Error("[BookingsService.Complete] Failed to update status: booking=%d, error=%v", bookingID, err)
		return nil, fmt.Errorf("%w: Complete - failed to update status: %v", ErrInternal, err)
	}

	b.Status = domain.StatusCompleted

	s.logger.Info("[BookingsService.Complete] Booking completed: id=%d, instructor=%s", bookingID, inst.ID)
	return b, nil
}

// resolveInstructor находит профиль инструктора аутентифицированного
// пользователя
func (s *Service) resolveInstructor(ctx context.Context, userID string) (*domain.Instructor, error) {
	inst, err := s.instructorStorage.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, instructor.ErrInstructorNotFound) {
			s.logger.Warn("[BookingsService] User has no instructor profile: user=%s", userID)
			return nil, fmt.Errorf("%w: user=%s", ErrNotInstructor, userID)
		}
		s.logger.Error("[BookingsService] Failed to resolve instructor: user=%s, error=%v", userID, err)
		return nil, fmt.Errorf("%w: failed to resolve instructor: %v", ErrInternal, err)
	}
	return inst, nil
}

func (s *Service) getByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.storage.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking=%d", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("[BookingsService] Failed to get booking: id=%d, error=%v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return b, nil
}

func (s *Service) getOwned(ctx context.Context, userID string, bookingID int64) (*domain.Booking, error) {
	b, err := s.getByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.UserID != userID {
		s.logger.Warn("[BookingsService] Attempt to access foreign booking: id=%d, owner=%s, actor=%s",
			bookingID, b.UserID, userID)
		return nil, fmt.Errorf("%w: booking=%d belongs to another user", ErrPermissionDenied, bookingID)
	}
	return b, nil
}
