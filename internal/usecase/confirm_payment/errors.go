package confirm_payment

import "errors"

var (
	// ErrValidation - запрос не прошел валидацию
	ErrValidation = errors.New("validation error")

	// ErrNothingToConfirm - неоплаченных бронирований с таким платежным
	// намерением не нашлось
	ErrNothingToConfirm = errors.New("no bookings matched payment")

	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("internal server error")
)
