package get_instructors

import "github.com/m04kA/AutoSchool-BookingService/internal/domain"

// InstructorResponse HTTP model профиля инструктора
//
// Контактные данные наружу не отдаются, только витринная информация
type InstructorResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DrivingCost  float64 `json:"drivingCost"`
	LearnersCost float64 `json:"learnersCost"`
}

// GetInstructorsResponse HTTP response model
type GetInstructorsResponse struct {
	Instructors []InstructorResponse `json:"instructors"`
}

// FromInstructors конвертирует доменные модели в HTTP response
func FromInstructors(instructors []*domain.Instructor) *GetInstructorsResponse {
	result := make([]InstructorResponse, len(instructors))
	for i, inst := range instructors {
		result[i] = InstructorResponse{
			ID:           inst.ID,
			Name:         inst.Name,
			DrivingCost:  inst.DrivingCost,
			LearnersCost: inst.LearnersCost,
		}
	}
	return &GetInstructorsResponse{Instructors: result}
}
