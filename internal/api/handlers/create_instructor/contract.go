package create_instructor

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// InstructorsService интерфейс сервиса инструкторов
type InstructorsService interface {
	Create(ctx context.Context, inst *domain.Instructor) (*domain.Instructor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
