package get_instructor_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	instructorRepo "github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/instructor"
)

// UseCase use case получения доступных интервалов инструктора
//
// Эффективная доступность вычисляется на лету: опубликованные времена
// минус времена активных бронирований. Отмененные бронирования
// освобождают свои интервалы автоматически, потому что не попадают в
// выборку.
type UseCase struct {
	timeslotRepo   TimeSlotRepository
	bookingRepo    BookingRepository
	instructorRepo InstructorRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeslotRepo TimeSlotRepository,
	bookingRepo BookingRepository,
	instructorRepo InstructorRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		timeslotRepo:   timeslotRepo,
		bookingRepo:    bookingRepo,
		instructorRepo: instructorRepo,
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных интервалов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.InstructorID == "" {
		return nil, fmt.Errorf("%w: instructor id is required", ErrValidation)
	}
	if req.LessonType != nil && !domain.ValidLessonType(*req.LessonType) {
		return nil, fmt.Errorf("%w: unknown lesson type %q", ErrValidation, *req.LessonType)
	}

	// 2. Получаем инструктора: стоимость интервала нужна для выдачи
	inst, err := uc.instructorRepo.GetByID(ctx, req.InstructorID)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			uc.logger.Warn("GetInstructorSlots: instructor=%s not found", req.InstructorID)
			return nil, ErrInstructorNotFound
		}
		uc.logger.Error("GetInstructorSlots: failed to get instructor=%s: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: failed to get instructor: %v", ErrInternal, err)
	}

	// 3. Получаем публикации инструктора
	publications, err := uc.timeslotRepo.GetByInstructor(ctx, req.InstructorID)
	if err != nil {
		uc.logger.Error("GetInstructorSlots: failed to get publications: instructor=%s: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: failed to get publications: %v", ErrInternal, err)
	}

	// 4. Получаем активные бронирования: только они блокируют интервалы
	bookings, err := uc.bookingRepo.GetActiveByInstructor(ctx, req.InstructorID)
	if err != nil {
		uc.logger.Error("GetInstructorSlots: failed to get bookings: instructor=%s: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Фильтруем публикации и вычитаем занятые времена
	slots := make([]AvailableSlots, 0, len(publications))
	for _, pub := range publications {
		if req.Date != nil && !domain.SameCalendarDay(pub.Date, *req.Date) {
			continue
		}
		if req.LessonType != nil && pub.LessonType != *req.LessonType {
			continue
		}

		slots = append(slots, AvailableSlots{
			PublicationID: pub.ID,
			Date:          pub.DateKey(),
			LessonType:    pub.LessonType,
			UnitCost:      inst.CostFor(pub.LessonType),
			Times:         EffectiveTimes(pub, bookings),
		})
	}

	uc.logger.Info("GetInstructorSlots: instructor=%s, publications=%d", req.InstructorID, len(slots))

	return &Response{
		InstructorID: req.InstructorID,
		Slots:        slots,
	}, nil
}
