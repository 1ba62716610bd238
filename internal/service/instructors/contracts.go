package instructors

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// InstructorStorage интерфейс хранилища инструкторов
type InstructorStorage interface {
	Create(ctx context.Context, inst *domain.Instructor) (*domain.Instructor, error)
	GetByID(ctx context.Context, id string) (*domain.Instructor, error)
	UpdateCosts(ctx context.Context, id string, drivingCost, learnersCost float64) error
	Delete(ctx context.Context, id string) error
}

// TimeSlotStorage интерфейс хранилища публикаций интервалов
type TimeSlotStorage interface {
	DeleteByInstructor(ctx context.Context, instructorID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
