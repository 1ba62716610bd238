package get_instructors

import (
	"net/http"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
)

type Handler struct {
	storage InstructorStorage
	logger  Logger
}

func NewHandler(storage InstructorStorage, logger Logger) *Handler {
	return &Handler{
		storage: storage,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.storage.List(r.Context())
	if err != nil {
		h.logger.Error("GET /instructors - Failed to list instructors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromInstructors(instructors))
}
