package reset_cart

import "context"

// CartService интерфейс сервиса корзины
type CartService interface {
	Reset(ctx context.Context, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
