package domain

import (
	"time"

	"github.com/m04kA/AutoSchool-BookingService/pkg/types"
)

// LessonType represents the category of a lesson
type LessonType string

const (
	LessonDriving  LessonType = "DRIVING"  // Вождение
	LessonLearners LessonType = "LEARNERS" // Теория
)

// ValidLessonType returns true for a known lesson type
func ValidLessonType(t LessonType) bool {
	return t == LessonDriving || t == LessonLearners
}

// TimeSlotPublication represents one instructor's offered times
// for one calendar date and one lesson type.
// For a given (InstructorID, Date, LessonType) there is at most one
// publication; Times contains no duplicate hour:minute value.
type TimeSlotPublication struct {
	ID           int64
	InstructorID string
	Date         time.Time // Календарный день, время суток не значимо
	LessonType   LessonType
	Times        []time.Time // Полные метки времени на этот день

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEmpty returns true if the publication has no offerable times left
func (p *TimeSlotPublication) IsEmpty() bool {
	return len(p.Times) == 0
}

// ContainsTimeOfDay returns true if any published time has the given hour:minute
func (p *TimeSlotPublication) ContainsTimeOfDay(t time.Time) bool {
	for _, existing := range p.Times {
		if SameTimeOfDay(existing, t) {
			return true
		}
	}
	return false
}

// SameCalendarDay сравнивает две даты покомпонентно (год, месяц, день)
// Сравнение по сырым меткам времени здесь недопустимо: поле даты может
// нести случайное время суток или смещение часового пояса
func SameCalendarDay(a, b time.Time) bool {
	y1, m1, d1 := a.UTC().Date()
	y2, m2, d2 := b.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SameTimeOfDay сравнивает две метки времени только по часам и минутам,
// игнорируя дату, секунды и миллисекунды. Метки сначала приводятся к UTC:
// один и тот же момент, записанный с разными смещениями часового пояса,
// считается одним временем
func SameTimeOfDay(a, b time.Time) bool {
	return types.NewTimeString(a.UTC()) == types.NewTimeString(b.UTC())
}

// DateKey возвращает строковый ключ календарного дня в формате YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// DateKey возвращает ключ календарного дня публикации
func (p *TimeSlotPublication) DateKey() string {
	return DateKey(p.Date)
}
