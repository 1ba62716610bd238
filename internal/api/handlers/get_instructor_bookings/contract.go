package get_instructor_bookings

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	ListForInstructor(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
