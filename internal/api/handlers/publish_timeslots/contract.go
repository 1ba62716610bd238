package publish_timeslots

import (
	"context"
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	timeslotsModels "github.com/m04kA/AutoSchool-BookingService/internal/service/timeslots/models"
)

// TimeslotsService интерфейс сервиса публикаций
type TimeslotsService interface {
	Publish(ctx context.Context, userID string, date time.Time, lessonType domain.LessonType, times []time.Time) (*timeslotsModels.PublishResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
