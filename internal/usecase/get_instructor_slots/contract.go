package get_instructor_slots

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория публикаций интервалов
type TimeSlotRepository interface {
	GetByInstructor(ctx context.Context, instructorID string) ([]*domain.TimeSlotPublication, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByInstructor(ctx context.Context, instructorID string) ([]*domain.Booking, error)
}

// InstructorRepository интерфейс репозитория инструкторов
type InstructorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Instructor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
