package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	cartService "github.com/m04kA/AutoSchool-BookingService/internal/service/cart"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimes       = "некорректный формат времени, ожидается RFC3339"
	msgInvalidEntry       = "некорректные параметры выбора"
	msgCartFull           = "корзина переполнена"
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

// Handle POST /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req AddCartItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	candidate, err := req.ToCartEntry()
	if err != nil {
		h.logger.Warn("POST /cart/items - Failed to parse times: user=%s: %v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidTimes)
		return
	}

	result, err := h.service.AddSelection(r.Context(), userID, candidate)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrInvalidEntry):
			h.logger.Warn("POST /cart/items - Invalid entry: user=%s: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidEntry)

		case errors.Is(err, cartService.ErrCartFull):
			h.logger.Warn("POST /cart/items - Cart full: user=%s", userID)
			handlers.RespondConflict(w, msgCartFull)

		default:
			h.logger.Error("POST /cart/items - Failed to add selection: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/items - Selection %s: user=%s, instructor=%s, date=%s",
		result.Status, userID, candidate.InstructorID, candidate.Date)
	handlers.RespondJSON(w, http.StatusOK, FromResult(result))
}
