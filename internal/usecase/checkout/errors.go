package checkout

import "errors"

var (
	// ErrEmptyCart - корзина пуста, оформлять нечего
	ErrEmptyCart = errors.New("cart is empty")

	// ErrValidation - запрос не прошел валидацию
	ErrValidation = errors.New("validation error")

	// ErrNoBookingsCreated - ни одна запись корзины не была оформлена
	ErrNoBookingsCreated = errors.New("no bookings created")

	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("internal server error")
)
