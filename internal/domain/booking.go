package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// PaymentMethod represents how a booking is paid for
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "CARD"
	PaymentCash PaymentMethod = "CASH"
)

// Booking represents a confirmed lesson booking in the system
type Booking struct {
	ID           int64
	UserID       string
	InstructorID string
	Date         time.Time // Календарный день занятия (время суток в этом поле не значимо)
	LessonType   LessonType
	Times        []time.Time // Полные метки времени выбранных интервалов
	Cost         float64     // Всегда unitCost * len(Times) на момент создания

	PaymentMethod PaymentMethod
	Paid          bool
	BookingNumber string
	PaymentToken  string // ID payment intent, к которому привязано бронирование

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its times
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending
}

// IsCompleted returns true if the lesson took place
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// ValidBookingStatus returns true for a known booking status
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// ValidPaymentMethod returns true for a known payment method
func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentCard || m == PaymentCash
}

// UserBookingsFilter фильтр для получения бронирований пользователя
type UserBookingsFilter struct {
	UserID     string      // Обязательный параметр
	Year       *int        // Фильтр по году занятия (опционально)
	LessonType *LessonType // Фильтр по типу занятия (опционально)
}
