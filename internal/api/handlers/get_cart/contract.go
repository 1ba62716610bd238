package get_cart

import (
	"context"

	cartModels "github.com/m04kA/AutoSchool-BookingService/internal/service/cart/models"
)

// CartService интерфейс сервиса корзины
type CartService interface {
	Snapshot(ctx context.Context, userID string) (*cartModels.CartSnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
