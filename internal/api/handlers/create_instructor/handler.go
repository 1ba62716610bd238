package create_instructor

import (
	"errors"
	"net/http"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	instructorsService "github.com/m04kA/AutoSchool-BookingService/internal/service/instructors"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAdminOnly          = "создание профиля инструктора доступно только администратору"
	msgInvalidInstructor  = "некорректные параметры профиля инструктора"
	msgDuplicate          = "у пользователя уже есть профиль инструктора"
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

// Handle POST /api/v1/instructors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	if !middleware.IsAdmin(r) {
		h.logger.Warn("POST /instructors - Create requested by non-admin: user=%s", userID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	var req CreateInstructorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /instructors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), &domain.Instructor{
		ID:           req.ID,
		UserID:       req.UserID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		DrivingCost:  req.DrivingCost,
		LearnersCost: req.LearnersCost,
	})
	if err != nil {
		switch {
		case errors.Is(err, instructorsService.ErrInvalidInstructor):
			h.logger.Warn("POST /instructors - Invalid profile: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInstructor)

		case errors.Is(err, instructorsService.ErrDuplicateInstructor):
			h.logger.Warn("POST /instructors - Duplicate profile: user=%s", req.UserID)
			handlers.RespondConflict(w, msgDuplicate)

		default:
			h.logger.Error("POST /instructors - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /instructors - Instructor created: id=%s, by=%s", created.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromInstructor(created))
}
