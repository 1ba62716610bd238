package get_user_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/checkout"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/pkg/ptr"
)

const (
	msgInvalidYear       = "некорректный год"
	msgInvalidLessonType = "некорректный тип занятия"
	msgAdminOnly         = "просмотр всех бронирований доступен только администратору"
)

// GetBookingsResponse HTTP response model
type GetBookingsResponse struct {
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

// Handle GET /api/v1/bookings
//
// Пользователь видит свою историю с опциональными фильтрами year и
// lessonType; администратор с параметром all=true видит все бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	if r.URL.Query().Get("all") == "true" {
		if !middleware.IsAdmin(r) {
			h.logger.Warn("GET /bookings - Admin list requested by non-admin: user=%s", userID)
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}

		bookings, err := h.service.ListAll(r.Context())
		if err != nil {
			h.logger.Error("GET /bookings - Failed to list all bookings: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, toResponse(bookings))
		return
	}

	filter := domain.UserBookingsFilter{UserID: userID}

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid year %q: user=%s", raw, userID)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		filter.Year = ptr.Ptr(year)
	}

	if raw := r.URL.Query().Get("lessonType"); raw != "" {
		lessonType := domain.LessonType(raw)
		if !domain.ValidLessonType(lessonType) {
			h.logger.Warn("GET /bookings - Invalid lesson type %q: user=%s", raw, userID)
			handlers.RespondBadRequest(w, msgInvalidLessonType)
			return
		}
		filter.LessonType = ptr.Ptr(lessonType)
	}

	bookings, err := h.service.ListForUser(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: user=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(bookings))
}

func toResponse(bookings []*domain.Booking) GetBookingsResponse {
	response := GetBookingsResponse{
		Bookings: make([]checkout.BookingResponse, len(bookings)),
	}
	for i, b := range bookings {
		response.Bookings[i] = checkout.FromBooking(b)
	}
	return response
}
