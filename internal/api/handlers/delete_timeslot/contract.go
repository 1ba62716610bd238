package delete_timeslot

import "context"

// TimeslotsService интерфейс сервиса публикаций
type TimeslotsService interface {
	Delete(ctx context.Context, userID string, publicationID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
