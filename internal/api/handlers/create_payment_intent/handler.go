package create_payment_intent

import (
	"errors"
	"net/http"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	intentUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/create_payment_intent"
)

const (
	msgEmptyCart      = "корзина пуста"
	msgPaymentGateway = "платежный сервис временно недоступен"
)

type Handler struct {
	useCase CreatePaymentIntentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentIntentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/intent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	result, err := h.useCase.Execute(r.Context(), &intentUC.Request{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, intentUC.ErrEmptyCart):
			h.logger.Warn("POST /payments/intent - Empty cart: user=%s", userID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, intentUC.ErrPaymentGateway):
			h.logger.Error("POST /payments/intent - Gateway error: user=%s: %v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentGateway)

		default:
			h.logger.Error("POST /payments/intent - Failed: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/intent - Intent created: user=%s, intent=%s", userID, result.IntentID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
