package create_payment_intent_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/internal/integrations/paymentservice"
	cartModels "github.com/m04kA/AutoSchool-BookingService/internal/service/cart/models"
	"github.com/m04kA/AutoSchool-BookingService/internal/usecase/create_payment_intent"
)

type fakeCartService struct {
	snapshot *cartModels.CartSnapshot
	err      error
}

func (f *fakeCartService) Snapshot(_ context.Context, _ string) (*cartModels.CartSnapshot, error) {
	return f.snapshot, f.err
}

type createCall struct {
	amount   int64
	currency string
	metadata map[string]string
}

type fakePaymentClient struct {
	calls  []createCall
	intent *paymentservice.Intent
	err    error
}

func (f *fakePaymentClient) CreateIntent(_ context.Context, amount int64, currency string, metadata map[string]string) (*paymentservice.Intent, error) {
	f.calls = append(f.calls, createCall{amount: amount, currency: currency, metadata: metadata})
	if f.err != nil {
		return nil, f.err
	}
	return f.intent, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func snapshotWithTotal(totalCost float64, entryCount int) *cartModels.CartSnapshot {
	entries := make([]domain.CartEntry, entryCount)
	for i := range entries {
		entries[i] = domain.CartEntry{
			Date:         "2025-10-15",
			InstructorID: "i1",
			LessonType:   domain.LessonDriving,
			Times:        []time.Time{time.Now()},
		}
	}
	return &cartModels.CartSnapshot{Entries: entries, TotalCost: totalCost}
}

func TestExecute_ConvertsTotalToMinorUnits(t *testing.T) {
	cart := &fakeCartService{snapshot: snapshotWithTotal(150.50, 2)}
	client := &fakePaymentClient{intent: &paymentservice.Intent{ID: "pi_123", ClientSecret: "secret"}}
	uc := create_payment_intent.NewUseCase(cart, client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &create_payment_intent.Request{UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", resp.IntentID)
	assert.Equal(t, "secret", resp.ClientSecret)
	assert.Equal(t, int64(15050), resp.Amount)
	assert.Equal(t, create_payment_intent.Currency, resp.Currency)
	assert.Equal(t, 150.50, resp.TotalCost)

	require.Len(t, client.calls, 1)
	call := client.calls[0]
	assert.Equal(t, int64(15050), call.amount)
	assert.Equal(t, "u1", call.metadata["userId"])
	assert.Equal(t, "2", call.metadata["bookingsCount"])
}

func TestExecute_RoundsFractionalMinorUnits(t *testing.T) {
	// 33.33 * 100 = 3332.9999... в double, Round дает 3333
	cart := &fakeCartService{snapshot: snapshotWithTotal(33.33, 1)}
	client := &fakePaymentClient{intent: &paymentservice.Intent{ID: "pi_1"}}
	uc := create_payment_intent.NewUseCase(cart, client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &create_payment_intent.Request{UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, int64(3333), resp.Amount)
}

func TestExecute_EmptyCart(t *testing.T) {
	cart := &fakeCartService{snapshot: &cartModels.CartSnapshot{Entries: []domain.CartEntry{}}}
	client := &fakePaymentClient{}
	uc := create_payment_intent.NewUseCase(cart, client, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_payment_intent.Request{UserID: "u1"})

	assert.ErrorIs(t, err, create_payment_intent.ErrEmptyCart)
	assert.Empty(t, client.calls)
}

func TestExecute_MissingUserID(t *testing.T) {
	uc := create_payment_intent.NewUseCase(&fakeCartService{}, &fakePaymentClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_payment_intent.Request{})

	assert.ErrorIs(t, err, create_payment_intent.ErrValidation)
}

func TestExecute_GatewayError(t *testing.T) {
	cart := &fakeCartService{snapshot: snapshotWithTotal(100, 1)}
	client := &fakePaymentClient{err: errors.New("503 service unavailable")}
	uc := create_payment_intent.NewUseCase(cart, client, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_payment_intent.Request{UserID: "u1"})

	assert.ErrorIs(t, err, create_payment_intent.ErrPaymentGateway)
}

func TestExecute_CartLoadError(t *testing.T) {
	cart := &fakeCartService{err: errors.New("redis down")}
	uc := create_payment_intent.NewUseCase(cart, &fakePaymentClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_payment_intent.Request{UserID: "u1"})

	assert.ErrorIs(t, err, create_payment_intent.ErrInternal)
}
