package get_instructors

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// InstructorStorage интерфейс хранилища инструкторов
type InstructorStorage interface {
	List(ctx context.Context) ([]*domain.Instructor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
