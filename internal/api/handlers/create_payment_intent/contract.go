package create_payment_intent

import (
	"context"

	intentUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/create_payment_intent"
)

// CreatePaymentIntentUseCase интерфейс use case создания платежного намерения
type CreatePaymentIntentUseCase interface {
	Execute(ctx context.Context, req *intentUC.Request) (*intentUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
