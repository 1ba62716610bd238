package confirm_payment

import "context"

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	MarkPaidByPaymentToken(ctx context.Context, userID, paymentToken string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
