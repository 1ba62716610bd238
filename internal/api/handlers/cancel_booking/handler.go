package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/checkout"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	bookingsService "github.com/m04kA/AutoSchool-BookingService/internal/service/bookings"
)

const (
	msgInvalidID        = "некорректный идентификатор бронирования"
	msgNotFound         = "бронирование не найдено"
	msgPermissionDenied = "бронирование принадлежит другому пользователю"
	msgNotCancellable   = "бронирование нельзя отменить в текущем статусе"
)

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

// Handle POST /api/v1/bookings/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid id: user=%s", userID)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	booking, err := h.service.Cancel(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Not found: id=%d, user=%s", id, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookingsService.ErrPermissionDenied):
			h.logger.Warn("POST /bookings/{id}/cancel - Permission denied: id=%d, user=%s", id, userID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, bookingsService.ErrNotCancellable):
			h.logger.Warn("POST /bookings/{id}/cancel - Not cancellable: id=%d, user=%s", id, userID)
			handlers.RespondConflict(w, msgNotCancellable)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed: id=%d, user=%s, error=%v", id, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled: id=%d, user=%s", id, userID)
	handlers.RespondJSON(w, http.StatusOK, checkout.FromBooking(booking))
}
