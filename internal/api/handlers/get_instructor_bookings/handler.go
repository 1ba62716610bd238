package get_instructor_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/checkout"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	bookingsService "github.com/m04kA/AutoSchool-BookingService/internal/service/bookings"
)

const msgNotInstructor = "просматривать записи учеников может только инструктор"

// GetInstructorBookingsResponse HTTP response model
type GetInstructorBookingsResponse struct {
	Bookings []checkout.BookingResponse `json:"bookings"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructor/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	bookings, err := h.service.ListForInstructor(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrNotInstructor):
			h.logger.Warn("GET /instructor/bookings - Not an instructor: user=%s", userID)
			handlers.RespondForbidden(w, msgNotInstructor)

		default:
			h.logger.Error("GET /instructor/bookings - Failed: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := GetInstructorBookingsResponse{
		Bookings: make([]checkout.BookingResponse, len(bookings)),
	}
	for i, b := range bookings {
		response.Bookings[i] = checkout.FromBooking(b)
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
