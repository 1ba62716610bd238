package get_instructor_slots

import (
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// EffectiveTimes вычисляет эффективную доступность публикации: из ее
// времен вычитаются часы и минуты бронирований с совпадающим типом
// занятия на тот же календарный день.
//
// Сравнение дней идет по компонентам год/месяц/день, а времен - только
// по час:минута. Бронирования с другим типом занятия не влияют на
// выдачу даже в тот же день. Чистая функция: принимает бронирования
// как данность и не знает про их статусы.
func EffectiveTimes(pub *domain.TimeSlotPublication, bookings []*domain.Booking) []time.Time {
	if pub.IsEmpty() {
		return []time.Time{}
	}

	var booked []time.Time
	for _, b := range bookings {
		if b.LessonType != pub.LessonType {
			continue
		}
		if !domain.SameCalendarDay(b.Date, pub.Date) {
			continue
		}
		booked = append(booked, b.Times...)
	}

	available := make([]time.Time, 0, len(pub.Times))
	for _, t := range pub.Times {
		taken := false
		for _, bt := range booked {
			if domain.SameTimeOfDay(t, bt) {
				taken = true
				break
			}
		}
		if !taken {
			available = append(available, t)
		}
	}

	return available
}
