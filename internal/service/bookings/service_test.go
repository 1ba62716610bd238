package bookings_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/instructor"
	"github.com/m04kA/AutoSchool-BookingService/internal/service/bookings"
)

// fakeBookingStorage хранилище бронирований в памяти для тестов
type fakeBookingStorage struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingStorage(items ...*domain.Booking) *fakeBookingStorage {
	f := &fakeBookingStorage{bookings: make(map[int64]*domain.Booking)}
	for _, b := range items {
		f.bookings[b.ID] = b
	}
	return f
}

func (f *fakeBookingStorage) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingStorage) GetByUser(_ context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID != filter.UserID {
			continue
		}
		if filter.Year != nil && b.Date.Year() != *filter.Year {
			continue
		}
		if filter.LessonType != nil && b.LessonType != *filter.LessonType {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingStorage) GetByInstructor(_ context.Context, instructorID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.InstructorID == instructorID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStorage) GetAll(_ context.Context) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingStorage) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type fakeInstructorStorage struct {
	byUserID map[string]*domain.Instructor
}

func (f *fakeInstructorStorage) GetByUserID(_ context.Context, userID string) (*domain.Instructor, error) {
	inst, ok := f.byUserID[userID]
	if !ok {
		return nil, instructor.ErrInstructorNotFound
	}
	return inst, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func sampleBooking(t *testing.T, id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		UserID:       "u1",
		InstructorID: "i1",
		Date:         mustTime(t, "2025-10-15T00:00:00Z"),
		LessonType:   domain.LessonDriving,
		Times:        []time.Time{mustTime(t, "2025-10-15T09:00:00Z")},
		Status:       status,
	}
}

func newService(storage *fakeBookingStorage) *bookings.Service {
	instructors := &fakeInstructorStorage{byUserID: map[string]*domain.Instructor{
		"instr-user": {ID: "i1", UserID: "instr-user", Name: "Ion Popescu"},
	}}
	return bookings.NewService(storage, instructors, nopLogger{})
}

func TestListForUser_FiltersByYearAndLessonType(t *testing.T) {
	thisYear := sampleBooking(t, 1, domain.StatusPending)
	lastYear := sampleBooking(t, 2, domain.StatusPending)
	lastYear.Date = mustTime(t, "2024-06-01T00:00:00Z")
	theory := sampleBooking(t, 3, domain.StatusPending)
	theory.LessonType = domain.LessonLearners

	service := newService(newFakeBookingStorage(thisYear, lastYear, theory))

	year := 2025
	lessonType := domain.LessonDriving
	result, err := service.ListForUser(context.Background(), domain.UserBookingsFilter{
		UserID:     "u1",
		Year:       &year,
		LessonType: &lessonType,
	})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(1), result[0].ID)
}

func TestListForUser_UnknownLessonType(t *testing.T) {
	service := newService(newFakeBookingStorage())

	lessonType := domain.LessonType("KARTING")
	_, err := service.ListForUser(context.Background(), domain.UserBookingsFilter{
		UserID:     "u1",
		LessonType: &lessonType,
	})

	assert.ErrorIs(t, err, bookings.ErrInvalidStatus)
}

func TestListForInstructor_RequiresInstructorProfile(t *testing.T) {
	service := newService(newFakeBookingStorage(sampleBooking(t, 1, domain.StatusPending)))

	result, err := service.ListForInstructor(context.Background(), "instr-user")
	require.NoError(t, err)
	assert.Len(t, result, 1)

	_, err = service.ListForInstructor(context.Background(), "u1")
	assert.ErrorIs(t, err, bookings.ErrNotInstructor)
}

func TestCancel_PendingBooking(t *testing.T) {
	storage := newFakeBookingStorage(sampleBooking(t, 1, domain.StatusPending))
	service := newService(storage)

	result, err := service.Cancel(context.Background(), "u1", 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, result.Status)
	assert.Equal(t, domain.StatusCancelled, storage.bookings[1].Status)
}

func TestCancel_ForeignBooking(t *testing.T) {
	service := newService(newFakeBookingStorage(sampleBooking(t, 1, domain.StatusPending)))

	_, err := service.Cancel(context.Background(), "u2", 1)

	assert.ErrorIs(t, err, bookings.ErrPermissionDenied)
}

func TestCancel_CompletedBooking(t *testing.T) {
	service := newService(newFakeBookingStorage(sampleBooking(t, 1, domain.StatusCompleted)))

	_, err := service.Cancel(context.Background(), "u1", 1)

	assert.ErrorIs(t, err, bookings.ErrNotCancellable)
}

func TestCancel_NotFound(t *testing.T) {
	service := newService(newFakeBookingStorage())

	_, err := service.Cancel(context.Background(), "u1", 404)

	assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
}

func TestComplete_ByOwningInstructor(t *testing.T) {
	storage := newFakeBookingStorage(sampleBooking(t, 1, domain.StatusPending))
	service := newService(storage)

	result, err := service.Complete(context.Background(), "instr-user", 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, result.Status)
	assert.Equal(t, domain.StatusCompleted, storage.bookings[1].Status)
}

func TestComplete_NotInstructor(t *testing.T) {
	service := newService(newFakeBookingStorage(sampleBooking(t, 1, domain.StatusPending)))

	_, err := service.Complete(context.Background(), "u1", 1)

	assert.ErrorIs(t, err, bookings.ErrNotInstructor)
}

func TestComplete_ForeignInstructorBooking(t *testing.T) {
	b := sampleBooking(t, 1, domain.StatusPending)
	b.InstructorID = "i2"
	service := newService(newFakeBookingStorage(b))

	_, err := service.Complete(context.Background(), "instr-user", 1)

	assert.ErrorIs(t, err, bookings.ErrPermissionDenied)
}

func TestComplete_CancelledBooking(t *testing.T) {
	service := newService(newFakeBookingStorage(sampleBooking(t, 1, domain.StatusCancelled)))

	_, err := service.Complete(context.Background(), "instr-user", 1)

	assert.ErrorIs(t, err, bookings.ErrInvalidStatus)
}
