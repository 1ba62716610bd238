package bookings

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// BookingStorage интерфейс хранилища бронирований
type BookingStorage interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUser(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error)
	GetByInstructor(ctx context.Context, instructorID string) ([]*domain.Booking, error)
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
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
