package bookings

import "errors"

var (
	// ErrBookingNotFound - бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPermissionDenied - бронирование принадлежит другому пользователю
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidStatus - недопустимый статус или переход статуса
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrNotCancellable - бронирование нельзя отменить в текущем статусе
	ErrNotCancellable = errors.New("booking cannot be cancelled")

	// ErrNotInstructor - у пользователя нет профиля инструктора
	ErrNotInstructor = errors.New("user is not an instructor")

	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("internal bookings service error")
)
