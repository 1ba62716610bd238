package cart

import (
	"context"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// CartStorage интерфейс персистентного зеркала корзины
// Работает только со снимками целиком: Load возвращает текущий снимок,
// Save заменяет его, Delete удаляет ключ
type CartStorage interface {
	Load(ctx context.Context, userID string) ([]domain.CartEntry, error)
	Save(ctx context.Context, userID string, entries []domain.CartEntry) error
	Delete(ctx context.Context, userID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
