package publish_timeslots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	timeslotsService "github.com/m04kA/AutoSchool-BookingService/internal/service/timeslots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimes       = "некорректный формат времени, ожидается RFC3339"
	msgInvalidPublication = "некорректные параметры публикации"
	msgNotInstructor      = "публиковать интервалы может только инструктор"
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

// Handle POST /api/v1/timeslots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req PublishTimeslotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /timeslots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /timeslots - Invalid date %q: user=%s", req.Date, userID)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	times := make([]time.Time, len(req.Times))
	for i, raw := range req.Times {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("POST /timeslots - Invalid time %q: user=%s", raw, userID)
			handlers.RespondBadRequest(w, msgInvalidTimes)
			return
		}
		times[i] = t
	}

	result, err := h.service.Publish(r.Context(), userID, date, domain.LessonType(req.LessonType), times)
	if err != nil {
		switch {
		case errors.Is(err, timeslotsService.ErrInvalidPublication):
			h.logger.Warn("POST /timeslots - Invalid publication: user=%s: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidPublication)

		case errors.Is(err, timeslotsService.ErrNotInstructor):
			h.logger.Warn("POST /timeslots - Not an instructor: user=%s", userID)
			handlers.RespondForbidden(w, msgNotInstructor)

		default:
			h.logger.Error("POST /timeslots - Failed: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /timeslots - Publication %s: id=%d, user=%s",
		result.Status, result.Publication.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromResult(result))
}
