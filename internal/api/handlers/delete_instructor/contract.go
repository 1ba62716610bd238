package delete_instructor

import "context"

// InstructorsService интерфейс сервиса инструкторов
type InstructorsService interface {
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
