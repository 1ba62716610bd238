package timeslots

import "errors"

var (
	// ErrInvalidPublication - публикация не прошла валидацию
	ErrInvalidPublication = errors.New("invalid time slot publication")

	// ErrPublicationNotFound - публикация не найдена
	ErrPublicationNotFound = errors.New("time slot publication not found")

	// ErrNotInstructor - у пользователя нет профиля инструктора
	ErrNotInstructor = errors.New("user is not an instructor")

	// ErrPermissionDenied - инструктор не владеет публикацией
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("internal timeslots service error")
)
