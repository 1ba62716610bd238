package checkout

import (
	"context"

	cartModels "github.com/m04kA/AutoSchool-BookingService/internal/service/cart/models"
	checkoutUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/checkout"
)

// CheckoutUseCase интерфейс use case оформления корзины
type CheckoutUseCase interface {
	Execute(ctx context.Context, req *checkoutUC.Request) (*checkoutUC.Response, error)
}

// CartService интерфейс сервиса корзины
type CartService interface {
	Snapshot(ctx context.Context, userID string) (*cartModels.CartSnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
