package checkout_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	timeslotRepo "github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/AutoSchool-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/AutoSchool-BookingService/internal/usecase/checkout"
)

type removeCall struct {
	instructorID string
	lessonType   domain.LessonType
	times        []time.Time
}

type fakeTimeSlotRepo struct {
	calls []removeCall
	// errs по ключу инструктора: позволяет провалить одну запись из нескольких
	errs map[string]error
}

func (f *fakeTimeSlotRepo) RemoveTimes(_ context.Context, instructorID string, _ time.Time, lessonType domain.LessonType, times []time.Time) error {
	f.calls = append(f.calls, removeCall{instructorID: instructorID, lessonType: lessonType, times: times})
	return f.errs[instructorID]
}

type fakeBookingRepo struct {
	inserted []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) InsertBatch(_ context.Context, bookings []*domain.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, bookings...)
	return nil
}

type fakeInstructorRepo struct {
	instructors []*domain.Instructor
}

func (f *fakeInstructorRepo) GetByIDs(_ context.Context, _ []string) ([]*domain.Instructor, error) {
	return f.instructors, nil
}

type fakeCartResetter struct {
	calls int
	err   error
}

func (f *fakeCartResetter) Reset(_ context.Context, _ string) error {
	f.calls++
	return f.err
}

type notifyCall struct {
	event      string
	recipients []notifyservice.Recipient
	payload    map[string]string
}

type fakeNotifyClient struct {
	calls []notifyCall
	err   error
}

func (f *fakeNotifyClient) Notify(_ context.Context, event string, _ notifyservice.Recipient, recipients []notifyservice.Recipient, payload map[string]string) error {
	f.calls = append(f.calls, notifyCall{event: event, recipients: recipients, payload: payload})
	return f.err
}

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	timeslots   *fakeTimeSlotRepo
	bookings    *fakeBookingRepo
	instructors *fakeInstructorRepo
	cart        *fakeCartResetter
	notify      *fakeNotifyClient
	tx          *fakeTxManager
	uc          *checkout.UseCase
}

func newFixture() *fixture {
	f := &fixture{
		timeslots: &fakeTimeSlotRepo{errs: map[string]error{}},
		bookings:  &fakeBookingRepo{},
		instructors: &fakeInstructorRepo{instructors: []*domain.Instructor{
			{ID: "i1", Name: "Ion Popescu", Email: "ion@example.com"},
		}},
		cart:   &fakeCartResetter{},
		notify: &fakeNotifyClient{},
		tx:     &fakeTxManager{},
	}
	f.uc = checkout.NewUseCase(f.timeslots, f.bookings, f.instructors, f.cart, f.notify, f.tx, nopLogger{})
	return f
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func cartEntry(t *testing.T, instructorID string, unitCost float64, times ...string) domain.CartEntry {
	t.Helper()
	parsed := make([]time.Time, 0, len(times))
	for _, v := range times {
		parsed = append(parsed, mustTime(t, v))
	}
	return domain.CartEntry{
		Date:         "2025-10-15",
		InstructorID: instructorID,
		LessonType:   domain.LessonDriving,
		Times:        parsed,
		UnitCost:     unitCost,
	}
}

func TestExecute_CashIsPaidImmediately(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID:        "u1",
		Entries:       []domain.CartEntry{cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z", "2025-10-15T10:00:00Z")},
		PaymentMethod: domain.PaymentCash,
	})

	require.NoError(t, err)
	require.Equal(t, 1, resp.CreatedCount)
	require.Len(t, f.bookings.inserted, 1)

	booking := f.bookings.inserted[0]
	assert.True(t, booking.Paid)
	assert.Empty(t, booking.PaymentToken)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, 300.0, booking.Cost)
	assert.Equal(t, 300.0, resp.TotalCost)
	assert.Equal(t, checkout.OutcomeBooked, resp.EntryResults[0].Outcome)
}

func TestExecute_CardStaysUnpaidUntilWebhook(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID:        "u1",
		Entries:       []domain.CartEntry{cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z")},
		PaymentMethod: domain.PaymentCard,
		PaymentToken:  "pi_123",
	})

	require.NoError(t, err)
	require.Len(t, f.bookings.inserted, 1)
	assert.False(t, f.bookings.inserted[0].Paid)
	assert.Equal(t, "pi_123", f.bookings.inserted[0].PaymentToken)
}

func TestExecute_CardWithoutTokenRejected(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID:        "u1",
		Entries:       []domain.CartEntry{cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z")},
		PaymentMethod: domain.PaymentCard,
	})

	assert.ErrorIs(t, err, checkout.ErrValidation)
	assert.Zero(t, f.tx.calls)
}

func TestExecute_EmptyCart(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID:        "u1",
		PaymentMethod: domain.PaymentCash,
	})

	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
}

func TestExecute_BookingNumberFormat(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID:        "u1",
		Entries:       []domain.CartEntry{cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z")},
		PaymentMethod: domain.PaymentCash,
	})

	require.NoError(t, err)
	number := f.bookings.inserted[0].BookingNumber
	assert.True(t, strings.HasPrefix(number, domain.BookingNumberPrefix))
	assert.Len(t, number, len(domain.BookingNumberPrefix)+domain.BookingNumberRandomLen)
}

func TestExecute_MissingPublicationStillBooks(t *testing.T) {
	f := newFixture()
	f.timeslots.errs["i1"] = timeslotRepo.ErrPublicationNotFound

	resp, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID:        "u1",
		Entries:       []domain.CartEntry{cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z")},
		PaymentMethod: domain.PaymentCash,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.CreatedCount)
	assert.Equal(t, checkout.OutcomeBookedStale, resp.EntryResults[0].Outcome)
}

func TestExecute_FailedEntryExcludedFromBatch(t *testing.T) {
	f := newFixture()
	f.timeslots.errs["i2"] = errors.New("deadlock detected")

	resp, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID: "u1",
		Entries: []domain.CartEntry{
			cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z"),
			cartEntry(t, "i2", 100, "2025-10-15T11:00:00Z"),
		},
		PaymentMethod: domain.PaymentCash,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.CreatedCount)
	require.Len(t, f.bookings.inserted, 1)
	assert.Equal(t, "i1", f.bookings.inserted[0].InstructorID)
	assert.Equal(t, checkout.OutcomeBooked, resp.EntryResults[0].Outcome)
	assert.Equal(t, checkout.OutcomeFailed, resp.EntryResults[1].Outcome)
	assert.Equal(t, 150.0, resp.TotalCost)
}

func TestExecute_AllEntriesFailed(t *testing.T) {
	f := newFixture()
	f.timeslots.errs["i1"] = errors.New("deadlock detected")

	_, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID:        "u1",
		Entries:       []domain.CartEntry{cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z")},
		PaymentMethod: domain.PaymentCash,
	})

	assert.ErrorIs(t, err, checkout.ErrNoBookingsCreated)
	assert.Empty(t, f.bookings.inserted)
	assert.Zero(t, f.cart.calls)
}

func TestExecute_EachEntryOwnTransaction(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID: "u1",
		Entries: []domain.CartEntry{
			cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z"),
			cartEntry(t, "i1", 150, "2025-10-15T10:00:00Z"),
		},
		PaymentMethod: domain.PaymentCash,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.CreatedCount)
	assert.Equal(t, 2, f.tx.calls)
}

func TestExecute_InsertFailureFailsEntry(t *testing.T) {
	f := newFixture()
	f.bookings.err = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID:        "u1",
		Entries:       []domain.CartEntry{cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z")},
		PaymentMethod: domain.PaymentCash,
	})

	assert.ErrorIs(t, err, checkout.ErrNoBookingsCreated)
	assert.Zero(t, f.cart.calls)
	assert.Empty(t, f.notify.calls)
}

func TestExecute_CartResetFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	f.cart.err = errors.New("redis down")

	resp, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID:        "u1",
		Entries:       []domain.CartEntry{cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z")},
		PaymentMethod: domain.PaymentCash,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.CreatedCount)
	assert.Equal(t, 1, f.cart.calls)
}

func TestExecute_NotifiesEachInstructorOnce(t *testing.T) {
	f := newFixture()
	f.instructors.instructors = []*domain.Instructor{
		{ID: "i1", Name: "Ion Popescu", Email: "ion@example.com"},
		{ID: "i2", Name: "Maria Ionescu", Email: "maria@example.com"},
	}

	_, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID: "u1",
		Entries: []domain.CartEntry{
			cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z"),
			cartEntry(t, "i1", 150, "2025-10-15T10:00:00Z"),
			cartEntry(t, "i2", 100, "2025-10-15T11:00:00Z"),
		},
		PaymentMethod: domain.PaymentCash,
	})

	require.NoError(t, err)
	require.Len(t, f.notify.calls, 1)
	call := f.notify.calls[0]
	assert.Equal(t, checkout.EventBookingsCreated, call.event)
	assert.Len(t, call.recipients, 2)
	assert.Equal(t, "3", call.payload["bookingsCount"])
}

func TestExecute_NotifyFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	f.notify.err = errors.New("service unavailable")

	resp, err := f.uc.Execute(context.Background(), &checkout.Request{
		UserID:        "u1",
		Entries:       []domain.CartEntry{cartEntry(t, "i1", 150, "2025-10-15T09:00:00Z")},
		PaymentMethod: domain.PaymentCash,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.CreatedCount)
}
