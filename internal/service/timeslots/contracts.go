package timeslots

import (
	"context"
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// TimeSlotStorage интерфейс хранилища публикаций интервалов
type TimeSlotStorage interface {
	GetByKey(ctx context.Context, instructorID string, date time.Time, lessonType domain.LessonType) (*domain.TimeSlotPublication, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlotPublication, error)
	GetByInstructor(ctx context.Context, instructorID string) ([]*domain.TimeSlotPublication, error)
	GetAll(ctx context.Context) ([]*domain.TimeSlotPublication, error)
	Create(ctx context.Context, pub *domain.TimeSlotPublication) (*domain.TimeSlotPublication, error)
	UpdateTimes(ctx context.Context, id int64, times []time.Time) error
	Delete(ctx context.Context, id int64) error
}

// InstructorStorage интерфейс хранилища инструкторов
type InstructorStorage interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Instructor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
