package publish_timeslots

import (
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	timeslotsModels "github.com/m04kA/AutoSchool-BookingService/internal/service/timeslots/models"
)

// PublishTimeslotsRequest HTTP request model
type PublishTimeslotsRequest struct {
	Date       string   `json:"date"` // "2025-10-15"
	LessonType string   `json:"lessonType"`
	Times      []string `json:"times"` // RFC3339
}

// PublicationResponse HTTP model публикации
type PublicationResponse struct {
	ID           int64    `json:"id"`
	InstructorID string   `json:"instructorId"`
	Date         string   `json:"date"`
	LessonType   string   `json:"lessonType"`
	Times        []string `json:"times"`
}

// PublishTimeslotsResponse HTTP response model
type PublishTimeslotsResponse struct {
	Status      string              `json:"status"`
	Publication PublicationResponse `json:"publication"`
}

// FromResult конвертирует результат сервиса в HTTP response
func FromResult(result *timeslotsModels.PublishResult) *PublishTimeslotsResponse {
	return &PublishTimeslotsResponse{
		Status:      string(result.Status),
		Publication: FromPublication(result.Publication),
	}
}

// FromPublication конвертирует публикацию в HTTP модель
func FromPublication(pub *domain.TimeSlotPublication) PublicationResponse {
	times := make([]string, len(pub.Times))
	for i, t := range pub.Times {
		times[i] = t.UTC().Format(time.RFC3339)
	}

	return PublicationResponse{
		ID:           pub.ID,
		InstructorID: pub.InstructorID,
		Date:         pub.DateKey(),
		LessonType:   string(pub.LessonType),
		Times:        times,
	}
}
