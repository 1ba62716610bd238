package domain

import "time"

// CartEntry represents a learner's tentative, pre-payment selection of
// times for one date, instructor and lesson type.
// Within one cart at most one entry exists per (Date, InstructorID,
// LessonType) triple; all Times are distinct by hour:minute.
type CartEntry struct {
	Date         string      `json:"date"` // Ключ календарного дня "YYYY-MM-DD"
	InstructorID string      `json:"instructorId"`
	LessonType   LessonType  `json:"lessonType"`
	Times        []time.Time `json:"times"`    // Полные метки времени на этот день
	UnitCost     float64     `json:"unitCost"` // Стоимость одного интервала
}

// Matches returns true if the entry holds the same (date, instructor,
// lesson type) key as the candidate
func (e *CartEntry) Matches(date, instructorID string, lessonType LessonType) bool {
	return e.Date == date && e.InstructorID == instructorID && e.LessonType == lessonType
}

// TotalCost returns the entry cost: unit cost times the number of
// selected intervals
func (e *CartEntry) TotalCost() float64 {
	return e.UnitCost * float64(len(e.Times))
}

// CartTotal суммирует стоимость всех позиций корзины
func CartTotal(entries []CartEntry) float64 {
	var total float64
	for i := range entries {
		total += entries[i].TotalCost()
	}
	return total
}
