package delete_instructor

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	instructorsService "github.com/m04kA/AutoSchool-BookingService/internal/service/instructors"
)

const (
	msgAdminOnly = "удаление профиля инструктора доступно только администратору"
	msgNotFound  = "инструктор не найден"
)

type Handler struct {
	service InstructorsService
	logger  Logger
}

func NewHandler(service InstructorsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/instructors/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	instructorID := mux.Vars(r)["id"]

	if !middleware.IsAdmin(r) {
		h.logger.Warn("DELETE /instructors/%s - Delete requested by non-admin: user=%s", instructorID, userID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	if err := h.service.Delete(r.Context(), instructorID); err != nil {
		switch {
		case errors.Is(err, instructorsService.ErrInstructorNotFound):
			h.logger.Warn("DELETE /instructors/%s - Not found", instructorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /instructors/%s - Failed: error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /instructors/%s - Instructor deleted by %s", instructorID, userID)
	w.WriteHeader(http.StatusNoContent)
}
