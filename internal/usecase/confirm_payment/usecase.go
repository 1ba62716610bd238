package confirm_payment

import (
	"context"
	"fmt"
)

// UseCase use case подтверждения оплаты по вебхуку платежного шлюза
//
// Оплаченными помечаются только бронирования пользователя, чей
// PaymentToken совпадает с подтвержденным намерением. Обновление по
// одному лишь пользователю затронуло бы и бронирования из других,
// еще не оплаченных оформлений.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет подтверждение оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if req.PaymentToken == "" {
		return nil, fmt.Errorf("%w: payment token is required", ErrValidation)
	}

	// 2. Помечаем оплаченными бронирования этого намерения
	count, err := uc.bookingRepo.MarkPaidByPaymentToken(ctx, req.UserID, req.PaymentToken)
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to mark bookings paid: user=%s, token=%s: %v",
			req.UserID, req.PaymentToken, err)
		return nil, fmt.Errorf("%w: failed to mark bookings paid: %v", ErrInternal, err)
	}

	// Вебхук может прийти повторно или с опозданием: отсутствие
	// подходящих бронирований - не сбой, но сигнализируем вызывающему
	if count == 0 {
		uc.logger.Warn("ConfirmPayment: nothing to confirm: user=%s, token=%s", req.UserID, req.PaymentToken)
		return nil, ErrNothingToConfirm
	}

	uc.logger.Info("ConfirmPayment: marked %d bookings paid: user=%s, token=%s", count, req.UserID, req.PaymentToken)

	return &Response{PaidCount: count}, nil
}
