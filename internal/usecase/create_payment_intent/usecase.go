package create_payment_intent

import (
	"context"
	"fmt"
	"math"
)

// Currency валюта всех платежей
const Currency = "ron"

// UseCase use case создания платежного намерения по содержимому корзины
type UseCase struct {
	cart          CartService
	paymentClient PaymentServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cart CartService, paymentClient PaymentServiceClient, logger Logger) *UseCase {
	return &UseCase{
		cart:          cart,
		paymentClient: paymentClient,
		logger:        logger,
	}
}

// Execute выполняет создание платежного намерения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	// 2. Считаем сумму по текущему снимку корзины
	snapshot, err := uc.cart.Snapshot(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("CreatePaymentIntent: failed to load cart: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}

	if len(snapshot.Entries) == 0 {
		uc.logger.Warn("CreatePaymentIntent: empty cart: user=%s", req.UserID)
		return nil, ErrEmptyCart
	}

	// Платежный шлюз принимает сумму в минимальных единицах валюты
	amount := int64(math.Round(snapshot.TotalCost * 100))

	// 3. Создаем намерение в платежном шлюзе
	intent, err := uc.paymentClient.CreateIntent(ctx, amount, Currency, map[string]string{
		"userId":        req.UserID,
		"bookingsCount": fmt.Sprintf("%d", len(snapshot.Entries)),
	})
	if err != nil {
		uc.logger.Error("CreatePaymentIntent: gateway call failed: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	uc.logger.Info("CreatePaymentIntent: intent=%s, user=%s, amount=%d %s", intent.ID, req.UserID, amount, Currency)

	return &Response{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
		Currency:     Currency,
		TotalCost:    snapshot.TotalCost,
	}, nil
}
