package add_cart_item

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	cartModels "github.com/m04kA/AutoSchool-BookingService/internal/service/cart/models"
)

// CartService интерфейс сервиса корзины
type CartService interface {
	AddSelection(ctx context.Context, userID string, candidate domain.CartEntry) (*cartModels.AddSelectionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
