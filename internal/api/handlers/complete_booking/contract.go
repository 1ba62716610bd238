package complete_booking

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	Complete(ctx context.Context, userID string, bookingID int64) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
