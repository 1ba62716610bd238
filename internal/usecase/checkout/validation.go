package checkout

import (
	"fmt"
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
)

// validateRequest проверяет запрос до каких-либо записей в БД
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if len(req.Entries) == 0 {
		return ErrEmptyCart
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.PaymentMethod)
	}
	if req.PaymentMethod == domain.PaymentCard && req.PaymentToken == "" {
		return fmt.Errorf("%w: payment token is required for card payments", ErrValidation)
	}

	for i, entry := range req.Entries {
		if entry.InstructorID == "" {
			return fmt.Errorf("%w: entry %d has no instructor id", ErrValidation, i)
		}
		if len(entry.Times) == 0 {
			return fmt.Errorf("%w: entry %d has no times", ErrValidation, i)
		}
		if !domain.ValidLessonType(entry.LessonType) {
			return fmt.Errorf("%w: entry %d has unknown lesson type %q", ErrValidation, i, entry.LessonType)
		}
		if _, err := time.Parse(domain.DateFormat, entry.Date); err != nil {
			return fmt.Errorf("%w: entry %d has invalid date %q", ErrValidation, i, entry.Date)
		}
		if entry.UnitCost < 0 {
			return fmt.Errorf("%w: entry %d has negative unit cost", ErrValidation, i)
		}
	}

	return nil
}
