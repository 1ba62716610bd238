package create_payment_intent

import "errors"

var (
	// ErrValidation - запрос не прошел валидацию
	ErrValidation = errors.New("validation error")

	// ErrEmptyCart - корзина пуста, платить не за что
	ErrEmptyCart = errors.New("cart is empty")

	// ErrPaymentGateway - платежный шлюз недоступен или вернул ошибку
	ErrPaymentGateway = errors.New("payment gateway error")

	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("internal server error")
)
