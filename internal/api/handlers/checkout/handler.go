package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	checkoutUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/checkout"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyCart          = "корзина пуста"
	msgValidationFailed   = "некорректные параметры оформления"
	msgNothingBooked      = "не удалось оформить ни одной записи корзины"
)

type Handler struct {
	useCase CheckoutUseCase
	cart    CartService
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, cart CartService, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		cart:    cart,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
//
// Оформляет текущее содержимое корзины. Операция не идемпотентна:
// повторная отправка запроса после успешного ответа создаст дубликаты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Оформляем актуальный снимок корзины, а не список из тела запроса:
	// клиент не может оформить то, чего в корзине уже нет
	snapshot, err := h.cart.Snapshot(r.Context(), userID)
	if err != nil {
		h.logger.Error("POST /checkout - Failed to load cart: user=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkoutUC.Request{
		UserID:        userID,
		Entries:       snapshot.Entries,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PaymentToken:  req.PaymentToken,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkoutUC.ErrEmptyCart):
			h.logger.Warn("POST /checkout - Empty cart: user=%s", userID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, checkoutUC.ErrValidation):
			h.logger.Warn("POST /checkout - Validation failed: user=%s: %v", userID, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, checkoutUC.ErrNoBookingsCreated):
			h.logger.Warn("POST /checkout - No bookings created: user=%s", userID)
			handlers.RespondConflict(w, msgNothingBooked)

		default:
			h.logger.Error("POST /checkout - Failed: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout - Created %d bookings: user=%s", result.CreatedCount, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
