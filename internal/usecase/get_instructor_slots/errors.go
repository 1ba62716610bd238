package get_instructor_slots

import "errors"

var (
	// ErrValidation - запрос не прошел валидацию
	ErrValidation = errors.New("validation error")

	// ErrInstructorNotFound - инструктор не найден
	ErrInstructorNotFound = errors.New("instructor not found")

	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("internal server error")
)
