package cart_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/internal/service/cart"
	"github.com/m04kA/AutoSchool-BookingService/internal/service/cart/models"
)

// fakeStorage хранилище корзины в памяти для тестов
type fakeStorage struct {
	carts   map[string][]domain.CartEntry
	loadErr error
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{carts: make(map[string][]domain.CartEntry)}
}

func (f *fakeStorage) Load(_ context.Context, userID string) ([]domain.CartEntry, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.carts[userID], nil
}

func (f *fakeStorage) Save(_ context.Context, userID string, entries []domain.CartEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.carts[userID] = entries
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, userID string) error {
	delete(f.carts, userID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func validEntry(t *testing.T) domain.CartEntry {
	return domain.CartEntry{
		Date:         "2025-10-15",
		InstructorID: "i1",
		LessonType:   domain.LessonDriving,
		Times: []time.Time{
			mustTime(t, "2025-10-15T09:00:00Z"),
			mustTime(t, "2025-10-15T10:00:00Z"),
		},
		UnitCost: 150,
	}
}

func TestAddSelection_NewEntry(t *testing.T) {
	storage := newFakeStorage()
	service := cart.NewService(storage, nopLogger{})

	result, err := service.AddSelection(context.Background(), "u1", validEntry(t))

	require.NoError(t, err)
	assert.Equal(t, models.AddStatusAdded, result.Status)
	assert.Len(t, result.Entry.Times, 2)
	assert.Len(t, storage.carts["u1"], 1)
}

func TestAddSelection_MergeSameKey(t *testing.T) {
	storage := newFakeStorage()
	service := cart.NewService(storage, nopLogger{})
	ctx := context.Background()

	_, err := service.AddSelection(ctx, "u1", validEntry(t))
	require.NoError(t, err)

	// Тот же ключ, новое время
	second := validEntry(t)
	second.Times = []time.Time{mustTime(t, "2025-10-15T11:00:00Z")}

	result, err := service.AddSelection(ctx, "u1", second)

	require.NoError(t, err)
	assert.Equal(t, models.AddStatusMerged, result.Status)
	assert.Len(t, storage.carts["u1"], 1)
	assert.Len(t, storage.carts["u1"][0].Times, 3)
}

func TestAddSelection_RepeatIsIdempotent(t *testing.T) {
	storage := newFakeStorage()
	service := cart.NewService(storage, nopLogger{})
	ctx := context.Background()

	_, err := service.AddSelection(ctx, "u1", validEntry(t))
	require.NoError(t, err)

	// Повторное добавление того же выбора ничего не меняет
	result, err := service.AddSelection(ctx, "u1", validEntry(t))

	require.NoError(t, err)
	assert.Equal(t, models.AddStatusMerged, result.Status)
	assert.Len(t, storage.carts["u1"], 1)
	assert.Len(t, storage.carts["u1"][0].Times, 2)
}

func TestAddSelection_DedupeIgnoresSeconds(t *testing.T) {
	storage := newFakeStorage()
	service := cart.NewService(storage, nopLogger{})
	ctx := context.Background()

	_, err := service.AddSelection(ctx, "u1", validEntry(t))
	require.NoError(t, err)

	// 09:00:45 - то же время суток, что и 09:00:00
	second := validEntry(t)
	second.Times = []time.Time{mustTime(t, "2025-10-15T09:00:45Z")}

	_, err = service.AddSelection(ctx, "u1", second)

	require.NoError(t, err)
	assert.Len(t, storage.carts["u1"][0].Times, 2)
}

func TestAddSelection_DedupeAcrossTimezones(t *testing.T) {
	storage := newFakeStorage()
	service := cart.NewService(storage, nopLogger{})
	ctx := context.Background()

	_, err := service.AddSelection(ctx, "u1", validEntry(t))
	require.NoError(t, err)

	// 12:00+03:00 - тот же момент, что и 09:00Z из первой записи:
	// сравнение идет по час:минута в UTC, а не в смещении метки
	second := validEntry(t)
	second.Times = []time.Time{mustTime(t, "2025-10-15T12:00:00+03:00")}

	_, err = service.AddSelection(ctx, "u1", second)

	require.NoError(t, err)
	assert.Len(t, storage.carts["u1"][0].Times, 2)
}

func TestAddSelection_DifferentInstructorsKeptSeparate(t *testing.T) {
	storage := newFakeStorage()
	service := cart.NewService(storage, nopLogger{})
	ctx := context.Background()

	_, err := service.AddSelection(ctx, "u1", validEntry(t))
	require.NoError(t, err)

	// Та же дата и тип занятия, другой инструктор
	other := validEntry(t)
	other.InstructorID = "i2"

	result, err := service.AddSelection(ctx, "u1", other)

	require.NoError(t, err)
	assert.Equal(t, models.AddStatusAdded, result.Status)
	assert.Len(t, storage.carts["u1"], 2)
}

func TestAddSelection_DifferentLessonTypesKeptSeparate(t *testing.T) {
	storage := newFakeStorage()
	service := cart.NewService(storage, nopLogger{})
	ctx := context.Background()

	_, err := service.AddSelection(ctx, "u1", validEntry(t))
	require.NoError(t, err)

	other := validEntry(t)
	other.LessonType = domain.LessonLearners

	result, err := service.AddSelection(ctx, "u1", other)

	require.NoError(t, err)
	assert.Equal(t, models.AddStatusAdded, result.Status)
	assert.Len(t, storage.carts["u1"], 2)
}

func TestAddSelection_Validation(t *testing.T) {
	service := cart.NewService(newFakeStorage(), nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*domain.CartEntry)
	}{
		{"empty instructor", func(e *domain.CartEntry) { e.InstructorID = "" }},
		{"bad date", func(e *domain.CartEntry) { e.Date = "15.10.2025" }},
		{"unknown lesson type", func(e *domain.CartEntry) { e.LessonType = "KARTING" }},
		{"no times", func(e *domain.CartEntry) { e.Times = nil }},
		{"negative cost", func(e *domain.CartEntry) { e.UnitCost = -1 }},
		{"time off the entry date", func(e *domain.CartEntry) {
			e.Times = []time.Time{mustTime(t, "2025-10-16T09:00:00Z")}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry(t)
			tt.mutate(&entry)

			_, err := service.AddSelection(ctx, "u1", entry)

			assert.ErrorIs(t, err, cart.ErrInvalidEntry)
		})
	}
}

func TestAddSelection_MergeRespectsTimesLimit(t *testing.T) {
	storage := newFakeStorage()
	service := cart.NewService(storage, nopLogger{})
	ctx := context.Background()

	// Заполняем запись до предела: 24 часа по две метки (:00 и :30)
	full := validEntry(t)
	full.Times = nil
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 30} {
			full.Times = append(full.Times, time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC))
		}
	}
	require.Len(t, full.Times, domain.MaxTimesPerEntry)

	_, err := service.AddSelection(ctx, "u1", full)
	require.NoError(t, err)

	// Слияние ещё одного времени превысило бы предел записи
	extra := validEntry(t)
	extra.Times = []time.Time{time.Date(2025, 10, 15, 9, 15, 0, 0, time.UTC)}

	_, err = service.AddSelection(ctx, "u1", extra)

	assert.ErrorIs(t, err, cart.ErrCartFull)
	assert.Len(t, storage.carts["u1"][0].Times, domain.MaxTimesPerEntry)
}

func TestRemoveEntry_FullKey(t *testing.T) {
	storage := newFakeStorage()
	service := cart.NewService(storage, nopLogger{})
	ctx := context.Background()

	first := validEntry(t)
	second := validEntry(t)
	second.InstructorID = "i2"

	_, err := service.AddSelection(ctx, "u1", first)
	require.NoError(t, err)
	_, err = service.AddSelection(ctx, "u1", second)
	require.NoError(t, err)

	// Удаление по полному ключу не задевает запись другого инструктора
	err = service.RemoveEntry(ctx, "u1", first.Date, first.InstructorID, first.LessonType)

	require.NoError(t, err)
	require.Len(t, storage.carts["u1"], 1)
	assert.Equal(t, "i2", storage.carts["u1"][0].InstructorID)
}

func TestRemoveEntry_NotFound(t *testing.T) {
	service := cart.NewService(newFakeStorage(), nopLogger{})

	err := service.RemoveEntry(context.Background(), "u1", "2025-10-15", "i1", domain.LessonDriving)

	assert.ErrorIs(t, err, cart.ErrEntryNotFound)
}

func TestReset_DeletesPersistedCart(t *testing.T) {
	storage := newFakeStorage()
	service := cart.NewService(storage, nopLogger{})
	ctx := context.Background()

	_, err := service.AddSelection(ctx, "u1", validEntry(t))
	require.NoError(t, err)

	require.NoError(t, service.Reset(ctx, "u1"))

	snapshot, err := service.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, snapshot.Entries)
	assert.Zero(t, snapshot.TotalCost)
}

func TestSnapshot_TotalCost(t *testing.T) {
	storage := newFakeStorage()
	service := cart.NewService(storage, nopLogger{})
	ctx := context.Background()

	entry := validEntry(t) // 2 интервала по 150
	_, err := service.AddSelection(ctx, "u1", entry)
	require.NoError(t, err)

	other := validEntry(t)
	other.LessonType = domain.LessonLearners
	other.Times = []time.Time{mustTime(t, "2025-10-15T12:00:00Z")}
	other.UnitCost = 100
	_, err = service.AddSelection(ctx, "u1", other)
	require.NoError(t, err)

	snapshot, err := service.Snapshot(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, 400.0, snapshot.TotalCost)
}

func TestAddSelection_StorageErrorWrapped(t *testing.T) {
	storage := newFakeStorage()
	storage.loadErr = errors.New("redis down")
	service := cart.NewService(storage, nopLogger{})

	_, err := service.AddSelection(context.Background(), "u1", validEntry(t))

	assert.ErrorIs(t, err, cart.ErrInternal)
}
