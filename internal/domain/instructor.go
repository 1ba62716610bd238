package domain

import "time"

// Instructor represents a driving-school instructor profile
type Instructor struct {
	ID     string
	UserID string
	Name   string
	Email  string
	Phone  *string

	DrivingCost  float64 // Стоимость одного интервала вождения
	LearnersCost float64 // Стоимость одного интервала теории

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CostFor returns the per-interval cost for the given lesson type
func (i *Instructor) CostFor(lessonType LessonType) float64 {
	if lessonType == LessonLearners {
		return i.LearnersCost
	}
	return i.DrivingCost
}
