package payment_webhook

import (
	"errors"
	"net/http"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	confirmUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEvent       = "некорректное событие оплаты"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/webhook
//
// Эндпоинт для платежного шлюза, не для пользователей: аутентификация
// запроса выполняется на API-шлюзе по подписи вебхука
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req WebhookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/webhook - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Прочие события шлюза подтверждаем, не обрабатывая, иначе шлюз
	// будет их бесконечно ретраить
	if req.Type != EventPaymentSucceeded {
		h.logger.Info("POST /payments/webhook - Ignoring event type=%s", req.Type)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmUC.Request{
		UserID:       req.Metadata.UserID,
		PaymentToken: req.IntentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmUC.ErrValidation):
			h.logger.Warn("POST /payments/webhook - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEvent)

		case errors.Is(err, confirmUC.ErrNothingToConfirm):
			// Повторный вебхук: бронирования уже оплачены, отвечаем 200,
			// чтобы шлюз не ретраил
			h.logger.Warn("POST /payments/webhook - Nothing to confirm: intent=%s", req.IntentID)
			handlers.RespondJSON(w, http.StatusOK, confirmUC.Response{PaidCount: 0})

		default:
			h.logger.Error("POST /payments/webhook - Failed: intent=%s, error=%v", req.IntentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/webhook - Confirmed %d bookings: intent=%s", result.PaidCount, req.IntentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
