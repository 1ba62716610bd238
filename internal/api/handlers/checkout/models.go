package checkout

import (
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	checkoutUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/checkout"
)

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod"` // "CARD" | "CASH"
	PaymentToken  string `json:"paymentToken,omitempty"`
}

// BookingResponse HTTP model одного бронирования
type BookingResponse struct {
	ID            int64    `json:"id"`
	BookingNumber string   `json:"bookingNumber"`
	InstructorID  string   `json:"instructorId"`
	Date          string   `json:"date"`
	LessonType    string   `json:"lessonType"`
	Times         []string `json:"times"`
	Cost          float64  `json:"cost"`
	PaymentMethod string   `json:"paymentMethod"`
	Paid          bool     `json:"paid"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"createdAt"`
}

// EntryResultResponse исход оформления одной записи корзины
type EntryResultResponse struct {
	Index   int    `json:"index"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	Bookings     []BookingResponse     `json:"bookings"`
	EntryResults []EntryResultResponse `json:"entryResults"`
	CreatedCount int                   `json:"createdCount"`
	TotalCost    float64               `json:"totalCost"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkoutUC.Response) *CheckoutResponse {
	bookings := make([]BookingResponse, len(resp.Bookings))
	for i, b := range resp.Bookings {
		bookings[i] = FromBooking(b)
	}

	results := make([]EntryResultResponse, len(resp.EntryResults))
	for i, r := range resp.EntryResults {
		results[i] = EntryResultResponse{
			Index:   r.Index,
			Outcome: string(r.Outcome),
			Error:   r.Error,
		}
	}

	return &CheckoutResponse{
		Bookings:     bookings,
		EntryResults: results,
		CreatedCount: resp.CreatedCount,
		TotalCost:    resp.TotalCost,
	}
}

// FromBooking конвертирует бронирование в HTTP модель
func FromBooking(b *domain.Booking) BookingResponse {
	times := make([]string, len(b.Times))
	for i, t := range b.Times {
		times[i] = t.UTC().Format(time.RFC3339)
	}

	return BookingResponse{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		InstructorID:  b.InstructorID,
		Date:          b.Date.Format(domain.DateFormat),
		LessonType:    string(b.LessonType),
		Times:         times,
		Cost:          b.Cost,
		PaymentMethod: string(b.PaymentMethod),
		Paid:          b.Paid,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
