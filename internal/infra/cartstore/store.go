package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// keyPrefix префикс ключей корзин в Redis
const keyPrefix = "cart:"

// Store персистентное зеркало корзины в Redis
//
// Корзина принадлежит клиентской сессии до момента оплаты; Redis хранит её
// снимок между сессиями. Все методы работают со снимками целиком:
// скрытого состояния в процессе нет, регидрация - это явный Load
type Store struct {
	client *redis.Client
	ttl    time.Duration // 0 = бессрочно
}

// NewStore создает хранилище корзин поверх Redis клиента
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// CartKey возвращает ключ корзины пользователя в Redis
func CartKey(userID string) string {
	return keyPrefix + userID
}

// Load читает снимок корзины пользователя
// Отсутствующий ключ - это пустая корзина, не ошибка
func (s *Store) Load(ctx context.Context, userID string) ([]domain.CartEntry, error) {
	raw, err := s.client.Get(ctx, CartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return []domain.CartEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: user=%s: %v", ErrLoad, userID, err)
	}

	var entries []domain.CartEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: user=%s: %v", ErrDecode, userID, err)
	}

	return entries, nil
}

// Save записывает снимок корзины пользователя целиком
func (s *Store) Save(ctx context.Context, userID string, entries []domain.CartEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: user=%s: %v", ErrEncode, userID, err)
	}

	if err := s.client.Set(ctx, CartKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: user=%s: %v", ErrSave, userID, err)
	}

	return nil
}

// Delete удаляет персистентный ключ корзины
// Вызывается при Reset: сброс, не дошедший до хранилища, оставил бы
// устаревшее зеркало, которое воскресло бы при следующей регидрации
func (s *Store) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, CartKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: user=%s: %v", ErrDelete, userID, err)
	}
	return nil
}
