package update_instructor_costs

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// InstructorsService интерфейс сервиса инструкторов
type InstructorsService interface {
	UpdateCosts(ctx context.Context, id string, drivingCost, learnersCost float64) (*domain.Instructor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
