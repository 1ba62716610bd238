package remove_cart_entry

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// CartService интерфейс сервиса корзины
type CartService interface {
	RemoveEntry(ctx context.Context, userID, date, instructorID string, lessonType domain.LessonType) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
