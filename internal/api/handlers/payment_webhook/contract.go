package payment_webhook

import (
	"context"

	confirmUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/confirm_payment"
)

// ConfirmPaymentUseCase интерфейс use case подтверждения оплаты
type ConfirmPaymentUseCase interface {
	Execute(ctx context.Context, req *confirmUC.Request) (*confirmUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
