package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/internal/service/cart/models"
)

// Service сервис корзины бронирований
//
// Корзина пользователя хранится в персистентном зеркале (Redis) и
// переживает перезапуск процесса. Все операции читают снимок целиком,
// модифицируют его в памяти и сохраняют обратно.
type Service struct {
	storage CartStorage
	logger  Logger
}

// NewService создаёт новый экземпляр сервиса корзины
func NewService(storage CartStorage, logger Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// AddSelection добавляет выбор слотов в корзину пользователя
//
// Если в корзине уже есть запись с тем же ключом (дата, инструктор, тип
// занятия), новые времена сливаются в неё с дедупликацией по времени
// суток (час:минута). Повторное добавление того же выбора ничего не
// меняет. Иначе создаётся новая запись.
func (s *Service) AddSelection(ctx context.Context, userID string, candidate domain.CartEntry) (*models.AddSelectionResult, error) {
	if err := validateEntry(userID, candidate); err != nil {
		return nil, err
	}

	// Дедупликация времён внутри самого кандидата: в записи корзины
	// не бывает двух времён с одинаковым час:минута
	candidate.Times = dedupeTimes(candidate.Times)

	entries, err := s.storage.Load(ctx, userID)
	if err != nil {
		s.logger.Error("[CartService.AddSelection] Failed to load cart: user=%s, error=%v", userID, err)
		return nil, fmt.Errorf("%w: AddSelection - failed to load cart: %v", ErrInternal, err)
	}

	// Шаг 1: ищем запись с тем же ключом
	for i := range entries {
		if !entries[i].Matches(candidate.Date, candidate.InstructorID, candidate.LessonType) {
			continue
		}

		// Шаг 2: сливаем времена, пропуская дубликаты по час:минута
		var missing []time.Time
		for _, t := range candidate.Times {
			if containsTimeOfDay(entries[i].Times, t) {
				continue
			}
			missing = append(missing, t)
		}

		// Слитая запись тоже ограничена по числу времён
		if len(entries[i].Times)+len(missing) > domain.MaxTimesPerEntry {
			s.logger.Warn("[CartService.AddSelection] Entry times limit reached: user=%s, date=%s, instructor=%s",
				userID, candidate.Date, candidate.InstructorID)
			return nil, fmt.Errorf("%w: AddSelection - entry would hold %d times, at most %d allowed",
				ErrCartFull, len(entries[i].Times)+len(missing), domain.MaxTimesPerEntry)
		}

		entries[i].Times = append(entries[i].Times, missing...)
		merged := len(missing)

		if err := s.storage.Save(ctx, userID, entries); err != nil {
			s.logger.Error("[CartService.AddSelection] Failed to save cart: user=%s, error=%v", userID, err)
			return nil, fmt.Errorf("%w: AddSelection - failed to save cart: %v", ErrInternal, err)
		}

		s.logger.Info("[CartService.AddSelection] Merged selection into existing entry: user=%s, date=%s, instructor=%s, mergedTimes=%d",
			userID, candidate.Date, candidate.InstructorID, merged)

		return &models.AddSelectionResult{
			Status: models.AddStatusMerged,
			Entry:  entries[i],
		}, nil
	}

	// Шаг 3: записи с таким ключом нет - добавляем новую
	if len(entries) >= domain.MaxCartEntries {
		s.logger.Warn("[CartService.AddSelection] Cart entries limit reached: user=%s, entries=%d", userID, len(entries))
		return nil, fmt.Errorf("%w: AddSelection - cart holds %d entries", ErrCartFull, len(entries))
	}

	entries = append(entries, candidate)

	if err := s.storage.Save(ctx, userID, entries); err != nil {
		s.logger.Error("[CartService.AddSelection] Failed to save cart: user=%s, error=%v", userID, err)
		return nil, fmt.Errorf("%w: AddSelection - failed to save cart: %v", ErrInternal, err)
	}

	s.logger.Info("[CartService.AddSelection] Added new cart entry: user=%s, date=%s, instructor=%s, times=%d",
		userID, candidate.Date, candidate.InstructorID, len(candidate.Times))

	return &models.AddSelectionResult{
		Status: models.AddStatusAdded,
		Entry:  candidate,
	}, nil
}

// RemoveEntry удаляет из корзины запись по полному ключу
// (дата, инструктор, тип занятия)
func (s *Service) RemoveEntry(ctx context.Context, userID, date, instructorID string, lessonType domain.LessonType) error {
	entries, err := s.storage.Load(ctx, userID)
	if err != nil {
		s.logger.Error("[CartService.RemoveEntry] Failed to load cart: user=%s, error=%v", userID, err)
		return fmt.Errorf("%w: RemoveEntry - failed to load cart: %v", ErrInternal, err)
	}

	kept := make([]domain.CartEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Matches(date, instructorID, lessonType) {
			continue
		}
		kept = append(kept, entry)
	}

	if len(kept) == len(entries) {
		return fmt.Errorf("%w: RemoveEntry - date=%s, instructor=%s, lessonType=%s", ErrEntryNotFound, date, instructorID, lessonType)
	}

	if err := s.storage.Save(ctx, userID, kept); err != nil {
		s.logger.Error("[CartService.RemoveEntry] Failed to save cart: user=%s, error=%v", userID, err)
		return fmt.Errorf("%w: RemoveEntry - failed to save cart: %v", ErrInternal, err)
	}

	s.logger.Info("[CartService.RemoveEntry] Removed cart entry: user=%s, date=%s, instructor=%s", userID, date, instructorID)
	return nil
}

// Reset очищает корзину пользователя вместе с персистентным зеркалом
func (s *Service) Reset(ctx context.Context, userID string) error {
	if err := s.storage.Delete(ctx, userID); err != nil {
		s.logger.Error("[CartService.Reset] Failed to delete cart: user=%s, error=%v", userID, err)
		return fmt.Errorf("%w: Reset - failed to delete cart: %v", ErrInternal, err)
	}

	s.logger.Info("[CartService.Reset] Cart cleared: user=%s", userID)
	return nil
}

// Snapshot возвращает текущее содержимое корзины с итоговой стоимостью
func (s *Service) Snapshot(ctx context.Context, userID string) (*models.CartSnapshot, error) {
	entries, err := s.storage.Load(ctx, userID)
	if err != nil {
		s.logger.Error("[CartService.Snapshot] Failed to load cart: user=%s, error=%v", userID, err)
		return nil, fmt.Errorf("%w: Snapshot - failed to load cart: %v", ErrInternal, err)
	}

	return &models.CartSnapshot{
		Entries:   entries,
		TotalCost: domain.CartTotal(entries),
	}, nil
}

func validateEntry(userID string, entry domain.CartEntry) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidEntry)
	}
	if entry.InstructorID == "" {
		return fmt.Errorf("%w: instructor id is required", ErrInvalidEntry)
	}
	date, err := time.Parse(domain.DateFormat, entry.Date)
	if err != nil {
		return fmt.Errorf("%w: date must be in %s format", ErrInvalidEntry, domain.DateFormat)
	}
	if !domain.ValidLessonType(entry.LessonType) {
		return fmt.Errorf("%w: unknown lesson type %q", ErrInvalidEntry, entry.LessonType)
	}
	if len(entry.Times) == 0 {
		return fmt.Errorf("%w: at least one time is required", ErrInvalidEntry)
	}
	if len(entry.Times) > domain.MaxTimesPerEntry {
		return fmt.Errorf("%w: at most %d times per entry", ErrInvalidEntry, domain.MaxTimesPerEntry)
	}
	for _, t := range entry.Times {
		if !domain.SameCalendarDay(t, date) {
			return fmt.Errorf("%w: time %s is not on date %s", ErrInvalidEntry, t.UTC().Format(time.RFC3339), entry.Date)
		}
	}
	if entry.UnitCost < 0 {
		return fmt.Errorf("%w: unit cost must be non-negative", ErrInvalidEntry)
	}
	return nil
}

func dedupeTimes(times []time.Time) []time.Time {
	result := make([]time.Time, 0, len(times))
	for _, t := range times {
		if containsTimeOfDay(result, t) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func containsTimeOfDay(times []time.Time, t time.Time) bool {
	for _, existing := range times {
		if domain.SameTimeOfDay(existing, t) {
			return true
		}
	}
	return false
}
