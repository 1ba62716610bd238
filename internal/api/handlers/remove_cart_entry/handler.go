package remove_cart_entry

import (
	"errors"
	"net/http"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	cartService "github.com/m04kA/AutoSchool-BookingService/internal/service/cart"
)

const (
	msgMissingKey    = "требуются параметры date, instructorId и lessonType"
	msgEntryNotFound = "запись корзины не найдена"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/cart/items
//
// Запись идентифицируется полным ключом (date, instructorId, lessonType)
// в query параметрах: удаление по одной только дате задело бы записи
// других инструкторов на тот же день
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	date := r.URL.Query().Get("date")
	instructorID := r.URL.Query().Get("instructorId")
	lessonType := r.URL.Query().Get("lessonType")

	if date == "" || instructorID == "" || lessonType == "" {
		h.logger.Warn("DELETE /cart/items - Missing key params: user=%s", userID)
		handlers.RespondBadRequest(w, msgMissingKey)
		return
	}

	err := h.service.RemoveEntry(r.Context(), userID, date, instructorID, domain.LessonType(lessonType))
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrEntryNotFound):
			h.logger.Warn("DELETE /cart/items - Entry not found: user=%s, date=%s, instructor=%s", userID, date, instructorID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		default:
			h.logger.Error("DELETE /cart/items - Failed to remove entry: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cart/items - Entry removed: user=%s, date=%s, instructor=%s", userID, date, instructorID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
