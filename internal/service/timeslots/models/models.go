package models

import "github.com/m04kA/AutoSchool-BookingService/internal/domain"

// PublishStatus результат публикации интервалов
type PublishStatus string

const (
	// PublishStatusCreated - создана новая публикация
	PublishStatusCreated PublishStatus = "created"
	// PublishStatusExtended - времена добавлены в существующую публикацию
	PublishStatusExtended PublishStatus = "extended"
)

// PublishResult результат операции Publish
type PublishResult struct {
	Status      PublishStatus               `json:"status"`
	Publication *domain.TimeSlotPublication `json:"publication"`
}
