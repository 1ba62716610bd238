package get_instructor_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	slotsUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/get_instructor_slots"
	"github.com/m04kA/AutoSchool-BookingService/pkg/ptr"
)

const (
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidLessonType  = "некорректный тип занятия"
	msgInstructorNotFound = "инструктор не найден"
)

type Handler struct {
	useCase GetInstructorSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetInstructorSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors/{instructorId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID := mux.Vars(r)["instructorId"]

	req := &slotsUC.Request{InstructorID: instructorID}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /instructors/{id}/slots - Invalid date %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = ptr.Ptr(date)
	}

	if raw := r.URL.Query().Get("lessonType"); raw != "" {
		lessonType := domain.LessonType(raw)
		req.LessonType = ptr.Ptr(lessonType)
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slotsUC.ErrValidation):
			h.logger.Warn("GET /instructors/{id}/slots - Validation failed: instructor=%s: %v", instructorID, err)
			handlers.RespondBadRequest(w, msgInvalidLessonType)

		case errors.Is(err, slotsUC.ErrInstructorNotFound):
			h.logger.Warn("GET /instructors/{id}/slots - Instructor not found: instructor=%s", instructorID)
			handlers.RespondNotFound(w, msgInstructorNotFound)

		default:
			h.logger.Error("GET /instructors/{id}/slots - Failed: instructor=%s, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
