package get_instructor_slots

import (
	"time"

	slotsUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/get_instructor_slots"
)

// SlotsResponse HTTP model доступных интервалов одной публикации
type SlotsResponse struct {
	PublicationID int64    `json:"publicationId"`
	Date          string   `json:"date"`
	LessonType    string   `json:"lessonType"`
	UnitCost      float64  `json:"unitCost"`
	Times         []string `json:"times"`
}

// GetInstructorSlotsResponse HTTP response model
type GetInstructorSlotsResponse struct {
	InstructorID string          `json:"instructorId"`
	Slots        []SlotsResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *slotsUC.Response) *GetInstructorSlotsResponse {
	slots := make([]SlotsResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		times := make([]string, len(s.Times))
		for j, t := range s.Times {
			times[j] = t.UTC().Format(time.RFC3339)
		}
		slots[i] = SlotsResponse{
			PublicationID: s.PublicationID,
			Date:          s.Date,
			LessonType:    string(s.LessonType),
			UnitCost:      s.UnitCost,
			Times:         times,
		}
	}

	return &GetInstructorSlotsResponse{
		InstructorID: resp.InstructorID,
		Slots:        slots,
	}
}
