package create_instructor

import "github.com/m04kA/AutoSchool-BookingService/internal/domain"

// CreateInstructorRequest HTTP request model
type CreateInstructorRequest struct {
	ID           string  `json:"id,omitempty"` // Опционально, генерируется при отсутствии
	UserID       string  `json:"userId"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	DrivingCost  float64 `json:"drivingCost"`
	LearnersCost float64 `json:"learnersCost"`
}

// InstructorResponse HTTP model полного профиля инструктора
// В отличие от витрины, административный ответ содержит контакты
type InstructorResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	DrivingCost  float64 `json:"drivingCost"`
	LearnersCost float64 `json:"learnersCost"`
}

// FromInstructor конвертирует доменную модель в HTTP response
func FromInstructor(inst *domain.Instructor) InstructorResponse {
	return InstructorResponse{
		ID:           inst.ID,
		UserID:       inst.UserID,
		Name:         inst.Name,
		Email:        inst.Email,
		Phone:        inst.Phone,
		DrivingCost:  inst.DrivingCost,
		LearnersCost: inst.LearnersCost,
	}
}
