package instructor

import "errors"

var (
	// ErrInstructorNotFound возвращается, когда инструктор не найден
	ErrInstructorNotFound = errors.New("instructor.repository: instructor not found")

	// ErrDuplicateInstructor возвращается при попытке создать второй профиль
	// инструктора для одного пользователя
	ErrDuplicateInstructor = errors.New("instructor.repository: instructor already exists for user")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("instructor.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("instructor.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("instructor.repository: failed to scan row")
)
