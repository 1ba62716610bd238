package instructors

import "errors"

var (
	// ErrInvalidInstructor - профиль не прошёл валидацию
	ErrInvalidInstructor = errors.New("invalid instructor profile")

	// ErrInstructorNotFound - инструктор не найден
	ErrInstructorNotFound = errors.New("instructor not found")

	// ErrDuplicateInstructor - у пользователя уже есть профиль инструктора
	ErrDuplicateInstructor = errors.New("instructor already exists")

	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("internal instructors service error")
)
