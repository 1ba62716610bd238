package confirm_payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AutoSchool-BookingService/internal/usecase/confirm_payment"
)

type fakeBookingRepo struct {
	count      int64
	err        error
	gotUserID  string
	gotToken   string
	callsTotal int
}

func (f *fakeBookingRepo) MarkPaidByPaymentToken(_ context.Context, userID, paymentToken string) (int64, error) {
	f.callsTotal++
	f.gotUserID = userID
	f.gotToken = paymentToken
	return f.count, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_MarksBookingsPaid(t *testing.T) {
	repo := &fakeBookingRepo{count: 3}
	uc := confirm_payment.NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &confirm_payment.Request{
		UserID:       "u1",
		PaymentToken: "pi_123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.PaidCount)
	assert.Equal(t, "u1", repo.gotUserID)
	assert.Equal(t, "pi_123", repo.gotToken)
}

func TestExecute_NothingToConfirm(t *testing.T) {
	repo := &fakeBookingRepo{count: 0}
	uc := confirm_payment.NewUseCase(repo, nopLogger{})

	// Повторный вебхук: бронирования уже оплачены
	_, err := uc.Execute(context.Background(), &confirm_payment.Request{
		UserID:       "u1",
		PaymentToken: "pi_123",
	})

	assert.ErrorIs(t, err, confirm_payment.ErrNothingToConfirm)
}

func TestExecute_Validation(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := confirm_payment.NewUseCase(repo, nopLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &confirm_payment.Request{PaymentToken: "pi_123"})
	assert.ErrorIs(t, err, confirm_payment.ErrValidation)

	_, err = uc.Execute(ctx, &confirm_payment.Request{UserID: "u1"})
	assert.ErrorIs(t, err, confirm_payment.ErrValidation)

	assert.Zero(t, repo.callsTotal)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection reset")}
	uc := confirm_payment.NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &confirm_payment.Request{
		UserID:       "u1",
		PaymentToken: "pi_123",
	})

	assert.ErrorIs(t, err, confirm_payment.ErrInternal)
}
