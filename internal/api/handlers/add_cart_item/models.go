package add_cart_item

import (
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	cartModels "github.com/m04kA/AutoSchool-BookingService/internal/service/cart/models"
)

// AddCartItemRequest HTTP request model
type AddCartItemRequest struct {
	Date         string   `json:"date"` // "2025-10-15"
	InstructorID string   `json:"instructorId"`
	LessonType   string   `json:"lessonType"` // "DRIVING" | "LEARNERS"
	Times        []string `json:"times"`      // RFC3339
	UnitCost     float64  `json:"unitCost"`
}

// CartEntryResponse HTTP model одной записи корзины
type CartEntryResponse struct {
	Date         string   `json:"date"`
	InstructorID string   `json:"instructorId"`
	LessonType   string   `json:"lessonType"`
	Times        []string `json:"times"`
	UnitCost     float64  `json:"unitCost"`
	TotalCost    float64  `json:"totalCost"`
}

// AddCartItemResponse HTTP response model
type AddCartItemResponse struct {
	Status string            `json:"status"`
	Entry  CartEntryResponse `json:"entry"`
}

// ToCartEntry конвертирует HTTP запрос в доменную модель
func (r *AddCartItemRequest) ToCartEntry() (domain.CartEntry, error) {
	times, err := parseTimes(r.Times)
	if err != nil {
		return domain.CartEntry{}, err
	}

	return domain.CartEntry{
		Date:         r.Date,
		InstructorID: r.InstructorID,
		LessonType:   domain.LessonType(r.LessonType),
		Times:        times,
		UnitCost:     r.UnitCost,
	}, nil
}

// FromResult конвертирует результат сервиса в HTTP response
func FromResult(result *cartModels.AddSelectionResult) *AddCartItemResponse {
	return &AddCartItemResponse{
		Status: string(result.Status),
		Entry:  FromCartEntry(result.Entry),
	}
}

// FromCartEntry конвертирует запись корзины в HTTP модель
func FromCartEntry(entry domain.CartEntry) CartEntryResponse {
	times := make([]string, len(entry.Times))
	for i, t := range entry.Times {
		times[i] = t.UTC().Format(time.RFC3339)
	}

	return CartEntryResponse{
		Date:         entry.Date,
		InstructorID: entry.InstructorID,
		LessonType:   string(entry.LessonType),
		Times:        times,
		UnitCost:     entry.UnitCost,
		TotalCost:    entry.TotalCost(),
	}
}

func parseTimes(raw []string) ([]time.Time, error) {
	times := make([]time.Time, len(raw))
	for i, s := range raw {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, err
		}
		times[i] = t
	}
	return times, nil
}
