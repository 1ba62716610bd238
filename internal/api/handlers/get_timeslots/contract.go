package get_timeslots

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// TimeslotsService интерфейс сервиса публикаций
type TimeslotsService interface {
	ListOwn(ctx context.Context, userID string) ([]*domain.TimeSlotPublication, error)
	ListAll(ctx context.Context) ([]*domain.TimeSlotPublication, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
