package update_instructor_costs

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/create_instructor"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	instructorsService "github.com/m04kA/AutoSchool-BookingService/internal/service/instructors"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAdminOnly          = "изменение стоимости доступно только администратору"
	msgInvalidCosts       = "некорректная стоимость интервалов"
	msgNotFound           = "инструктор не найден"
)

// UpdateCostsRequest HTTP request model
type UpdateCostsRequest struct {
	DrivingCost  float64 `json:"drivingCost"`
	LearnersCost float64 `json:"learnersCost"`
}

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

// Handle PATCH /api/v1/instructors/{id}/costs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	instructorID := mux.Vars(r)["id"]

	if !middleware.IsAdmin(r) {
		h.logger.Warn("PATCH /instructors/%s/costs - Update requested by non-admin: user=%s", instructorID, userID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	var req UpdateCostsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /instructors/%s/costs - Invalid request body: %v", instructorID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateCosts(r.Context(), instructorID, req.DrivingCost, req.LearnersCost)
	if err != nil {
		switch {
		case errors.Is(err, instructorsService.ErrInvalidInstructor):
			h.logger.Warn("PATCH /instructors/%s/costs - Invalid costs: %v", instructorID, err)
			handlers.RespondBadRequest(w, msgInvalidCosts)

		case errors.Is(err, instructorsService.ErrInstructorNotFound):
			h.logger.Warn("PATCH /instructors/%s/costs - Not found", instructorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /instructors/%s/costs - Failed: error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /instructors/%s/costs - Costs updated by %s", instructorID, userID)
	handlers.RespondJSON(w, http.StatusOK, create_instructor.FromInstructor(updated))
}
