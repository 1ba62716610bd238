package get_instructor_slots

import (
	"context"

	slotsUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/get_instructor_slots"
)

// GetInstructorSlotsUseCase интерфейс use case доступных интервалов
type GetInstructorSlotsUseCase interface {
	Execute(ctx context.Context, req *slotsUC.Request) (*slotsUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
