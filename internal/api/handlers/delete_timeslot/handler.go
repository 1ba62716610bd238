package delete_timeslot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	timeslotsService "github.com/m04kA/AutoSchool-BookingService/internal/service/timeslots"
)

const (
	msgInvalidID        = "некорректный идентификатор публикации"
	msgNotFound         = "публикация не найдена"
	msgNotInstructor    = "удалять публикации может только инструктор"
	msgPermissionDenied = "публикация принадлежит другому инструктору"
)

type Handler struct {
	service TimeslotsService
	logger  Logger
}

func NewHandler(service TimeslotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/timeslots/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /timeslots/{id} - Invalid id: user=%s", userID)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, timeslotsService.ErrPublicationNotFound):
			h.logger.Warn("DELETE /timeslots/{id} - Not found: id=%d, user=%s", id, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, timeslotsService.ErrNotInstructor):
			h.logger.Warn("DELETE /timeslots/{id} - Not an instructor: user=%s", userID)
			handlers.RespondForbidden(w, msgNotInstructor)

		case errors.Is(err, timeslotsService.ErrPermissionDenied):
			h.logger.Warn("DELETE /timeslots/{id} - Permission denied: id=%d, user=%s", id, userID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		default:
			h.logger.Error("DELETE /timeslots/{id} - Failed: id=%d, user=%s, error=%v", id, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /timeslots/{id} - Publication deleted: id=%d, user=%s", id, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
