package get_instructor_slots

import (
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// Request запрос доступных интервалов инструктора
type Request struct {
	InstructorID string
	// Date опционально сужает выдачу до одного календарного дня
	Date *time.Time
	// LessonType опционально сужает выдачу до одного типа занятия
	LessonType *domain.LessonType
}

// AvailableSlots доступные интервалы одной публикации после вычета
// забронированных времен
type AvailableSlots struct {
	PublicationID int64             `json:"publicationId"`
	Date          string            `json:"date"`
	LessonType    domain.LessonType `json:"lessonType"`
	UnitCost      float64           `json:"unitCost"`
	Times         []time.Time       `json:"times"`
}

// Response список доступных интервалов инструктора
type Response struct {
	InstructorID string           `json:"instructorId"`
	Slots        []AvailableSlots `json:"slots"`
}
