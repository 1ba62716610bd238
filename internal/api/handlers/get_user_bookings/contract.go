package get_user_bookings

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	ListForUser(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
