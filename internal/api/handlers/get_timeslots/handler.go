package get_timeslots

import (
	"errors"
	"net/http"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/publish_timeslots"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	timeslotsService "github.com/m04kA/AutoSchool-BookingService/internal/service/timeslots"
)

const (
	msgNotInstructor = "просматривать публикации может только инструктор"
	msgAdminOnly     = "просмотр всех публикаций доступен только администратору"
)

// GetTimeslotsResponse HTTP response model
type GetTimeslotsResponse struct {
	Publications []publish_timeslots.PublicationResponse `json:"publications"`
}

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

// Handle GET /api/v1/timeslots
//
// По умолчанию инструктор видит свои публикации; с параметром all=true
// администратор видит публикации всех инструкторов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var publications []*domain.TimeSlotPublication
	var err error

	if r.URL.Query().Get("all") == "true" {
		if !middleware.IsAdmin(r) {
			h.logger.Warn("GET /timeslots - Admin list requested by non-admin: user=%s", userID)
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		publications, err = h.service.ListAll(r.Context())
	} else {
		publications, err = h.service.ListOwn(r.Context(), userID)
	}

	if err != nil {
		switch {
		case errors.Is(err, timeslotsService.ErrNotInstructor):
			h.logger.Warn("GET /timeslots - Not an instructor: user=%s", userID)
			handlers.RespondForbidden(w, msgNotInstructor)

		default:
			h.logger.Error("GET /timeslots - Failed: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := GetTimeslotsResponse{
		Publications: make([]publish_timeslots.PublicationResponse, len(publications)),
	}
	for i, pub := range publications {
		response.Publications[i] = publish_timeslots.FromPublication(pub)
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
