package checkout

import (
	"context"
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/internal/integrations/notifyservice"
)

// TimeSlotRepository интерфейс репозитория публикаций интервалов
type TimeSlotRepository interface {
	RemoveTimes(ctx context.Context, instructorID string, date time.Time, lessonType domain.LessonType, times []time.Time) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	InsertBatch(ctx context.Context, bookings []*domain.Booking) error
}

// InstructorRepository интерфейс репозитория инструкторов
type InstructorRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Instructor, error)
}

// CartResetter очищает корзину пользователя после успешного оформления
type CartResetter interface {
	Reset(ctx context.Context, userID string) error
}

// NotifyServiceClient интерфейс клиента сервиса уведомлений
type NotifyServiceClient interface {
	Notify(ctx context.Context, event string, actor notifyservice.Recipient, recipients []notifyservice.Recipient, payload map[string]string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
