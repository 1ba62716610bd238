package create_payment_intent

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/integrations/paymentservice"
	cartModels "github.com/m04kA/AutoSchool-BookingService/internal/service/cart/models"
)

// CartService интерфейс сервиса корзины
type CartService interface {
	Snapshot(ctx context.Context, userID string) (*cartModels.CartSnapshot, error)
}

// PaymentServiceClient интерфейс клиента платежного шлюза
type PaymentServiceClient interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*paymentservice.Intent, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
