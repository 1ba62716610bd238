package get_instructor_slots_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/internal/usecase/get_instructor_slots"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func publication(t *testing.T, lessonType domain.LessonType, times ...string) *domain.TimeSlotPublication {
	t.Helper()
	parsed := make([]time.Time, 0, len(times))
	for _, v := range times {
		parsed = append(parsed, mustTime(t, v))
	}
	return &domain.TimeSlotPublication{
		InstructorID: "i1",
		Date:         mustTime(t, "2025-10-15T00:00:00Z"),
		LessonType:   lessonType,
		Times:        parsed,
	}
}

func booking(t *testing.T, lessonType domain.LessonType, date string, times ...string) *domain.Booking {
	t.Helper()
	parsed := make([]time.Time, 0, len(times))
	for _, v := range times {
		parsed = append(parsed, mustTime(t, v))
	}
	return &domain.Booking{
		InstructorID: "i1",
		Date:         mustTime(t, date),
		LessonType:   lessonType,
		Times:        parsed,
	}
}

func timesOfDay(times []time.Time) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, t.Format("15:04"))
	}
	return out
}

func TestEffectiveTimes_SubtractsBookedTimes(t *testing.T) {
	pub := publication(t, domain.LessonDriving,
		"2025-10-15T09:00:00Z", "2025-10-15T10:00:00Z", "2025-10-15T11:00:00Z")
	bookings := []*domain.Booking{
		booking(t, domain.LessonDriving, "2025-10-15T00:00:00Z", "2025-10-15T10:00:00Z"),
	}

	available := get_instructor_slots.EffectiveTimes(pub, bookings)

	assert.Equal(t, []string{"09:00", "11:00"}, timesOfDay(available))
}

func TestEffectiveTimes_OtherLessonTypeDoesNotBlock(t *testing.T) {
	pub := publication(t, domain.LessonDriving, "2025-10-15T09:00:00Z")
	bookings := []*domain.Booking{
		// Теория в то же время не занимает слот вождения
		booking(t, domain.LessonLearners, "2025-10-15T00:00:00Z", "2025-10-15T09:00:00Z"),
	}

	available := get_instructor_slots.EffectiveTimes(pub, bookings)

	assert.Equal(t, []string{"09:00"}, timesOfDay(available))
}

func TestEffectiveTimes_OtherDayDoesNotBlock(t *testing.T) {
	pub := publication(t, domain.LessonDriving, "2025-10-15T09:00:00Z")
	bookings := []*domain.Booking{
		booking(t, domain.LessonDriving, "2025-10-16T00:00:00Z", "2025-10-16T09:00:00Z"),
	}

	available := get_instructor_slots.EffectiveTimes(pub, bookings)

	assert.Equal(t, []string{"09:00"}, timesOfDay(available))
}

func TestEffectiveTimes_SecondsDoNotMatter(t *testing.T) {
	pub := publication(t, domain.LessonDriving, "2025-10-15T09:00:00Z")
	bookings := []*domain.Booking{
		booking(t, domain.LessonDriving, "2025-10-15T00:00:00Z", "2025-10-15T09:00:30Z"),
	}

	available := get_instructor_slots.EffectiveTimes(pub, bookings)

	assert.Empty(t, available)
}

func TestEffectiveTimes_BookingInOtherTimezoneBlocks(t *testing.T) {
	pub := publication(t, domain.LessonDriving, "2025-10-15T09:00:00Z")
	bookings := []*domain.Booking{
		// 12:00+03:00 - тот же момент, что и опубликованный 09:00Z
		booking(t, domain.LessonDriving, "2025-10-15T00:00:00Z", "2025-10-15T12:00:00+03:00"),
	}

	available := get_instructor_slots.EffectiveTimes(pub, bookings)

	assert.Empty(t, available)
}

func TestEffectiveTimes_EmptyPublication(t *testing.T) {
	pub := publication(t, domain.LessonDriving)

	available := get_instructor_slots.EffectiveTimes(pub, nil)

	assert.Empty(t, available)
}

func TestEffectiveTimes_FullyBooked(t *testing.T) {
	pub := publication(t, domain.LessonDriving, "2025-10-15T09:00:00Z", "2025-10-15T10:00:00Z")
	bookings := []*domain.Booking{
		booking(t, domain.LessonDriving, "2025-10-15T00:00:00Z", "2025-10-15T09:00:00Z"),
		booking(t, domain.LessonDriving, "2025-10-15T00:00:00Z", "2025-10-15T10:00:00Z"),
	}

	available := get_instructor_slots.EffectiveTimes(pub, bookings)

	assert.Empty(t, available)
}
