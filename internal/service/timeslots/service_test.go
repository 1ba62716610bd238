package timeslots_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	"github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/instructor"
	"github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/AutoSchool-BookingService/internal/service/timeslots"
	"github.com/m04kA/AutoSchool-BookingService/internal/service/timeslots/models"
)

// fakeTimeSlotStorage хранилище публикаций в памяти для тестов
type fakeTimeSlotStorage struct {
	publications map[int64]*domain.TimeSlotPublication
	nextID       int64
	updateCalls  int
}

func newFakeTimeSlotStorage() *fakeTimeSlotStorage {
	return &fakeTimeSlotStorage{publications: make(map[int64]*domain.TimeSlotPublication), nextID: 1}
}

func (f *fakeTimeSlotStorage) GetByKey(_ context.Context, instructorID string, date time.Time, lessonType domain.LessonType) (*domain.TimeSlotPublication, error) {
	for _, pub := range f.publications {
		if pub.InstructorID == instructorID && domain.SameCalendarDay(pub.Date, date) && pub.LessonType == lessonType {
			return pub, nil
		}
	}
	return nil, timeslot.ErrPublicationNotFound
}

func (f *fakeTimeSlotStorage) GetByID(_ context.Context, id int64) (*domain.TimeSlotPublication, error) {
	pub, ok := f.publications[id]
	if !ok {
		return nil, timeslot.ErrPublicationNotFound
	}
	return pub, nil
}

func (f *fakeTimeSlotStorage) GetByInstructor(_ context.Context, instructorID string) ([]*domain.TimeSlotPublication, error) {
	var out []*domain.TimeSlotPublication
	for _, pub := range f.publications {
		if pub.InstructorID == instructorID {
			out = append(out, pub)
		}
	}
	return out, nil
}

func (f *fakeTimeSlotStorage) GetAll(_ context.Context) ([]*domain.TimeSlotPublication, error) {
	var out []*domain.TimeSlotPublication
	for _, pub := range f.publications {
		out = append(out, pub)
	}
	return out, nil
}

func (f *fakeTimeSlotStorage) Create(_ context.Context, pub *domain.TimeSlotPublication) (*domain.TimeSlotPublication, error) {
	stored := *pub
	stored.ID = f.nextID
	f.nextID++
	f.publications[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeTimeSlotStorage) UpdateTimes(_ context.Context, id int64, times []time.Time) error {
	pub, ok := f.publications[id]
	if !ok {
		return timeslot.ErrPublicationNotFound
	}
	f.updateCalls++
	pub.Times = times
	return nil
}

func (f *fakeTimeSlotStorage) Delete(_ context.Context, id int64) error {
	if _, ok := f.publications[id]; !ok {
		return timeslot.ErrPublicationNotFound
	}
	delete(f.publications, id)
	return nil
}

// fakeInstructorStorage отдаёт профиль инструктора по пользователю
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

type fixture struct {
	storage *fakeTimeSlotStorage
	service *timeslots.Service
}

func newFixture() *fixture {
	storage := newFakeTimeSlotStorage()
	instructors := &fakeInstructorStorage{byUserID: map[string]*domain.Instructor{
		"u1": {ID: "i1", UserID: "u1", Name: "Ion Popescu"},
		"u2": {ID: "i2", UserID: "u2", Name: "Maria Ionescu"},
	}}
	return &fixture{
		storage: storage,
		service: timeslots.NewService(storage, instructors, nopLogger{}),
	}
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestPublish_CreatesNewPublication(t *testing.T) {
	f := newFixture()

	result, err := f.service.Publish(context.Background(), "u1",
		mustTime(t, "2025-10-15T00:00:00Z"), domain.LessonDriving,
		[]time.Time{mustTime(t, "2025-10-15T09:00:00Z"), mustTime(t, "2025-10-15T10:00:00Z")})

	require.NoError(t, err)
	assert.Equal(t, models.PublishStatusCreated, result.Status)
	assert.Equal(t, "i1", result.Publication.InstructorID)
	assert.Len(t, result.Publication.Times, 2)
}

func TestPublish_ExtendsExistingPublication(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	date := mustTime(t, "2025-10-15T00:00:00Z")

	_, err := f.service.Publish(ctx, "u1", date, domain.LessonDriving,
		[]time.Time{mustTime(t, "2025-10-15T09:00:00Z")})
	require.NoError(t, err)

	// Повтор с пересекающимся набором: 09:00 уже есть, добавится только 10:00
	result, err := f.service.Publish(ctx, "u1", date, domain.LessonDriving,
		[]time.Time{mustTime(t, "2025-10-15T09:00:00Z"), mustTime(t, "2025-10-15T10:00:00Z")})

	require.NoError(t, err)
	assert.Equal(t, models.PublishStatusExtended, result.Status)
	assert.Len(t, result.Publication.Times, 2)
	assert.Len(t, f.storage.publications, 1)
}

func TestPublish_DifferentLessonTypesSeparatePublications(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	date := mustTime(t, "2025-10-15T00:00:00Z")
	slot := []time.Time{mustTime(t, "2025-10-15T09:00:00Z")}

	_, err := f.service.Publish(ctx, "u1", date, domain.LessonDriving, slot)
	require.NoError(t, err)

	result, err := f.service.Publish(ctx, "u1", date, domain.LessonLearners, slot)

	require.NoError(t, err)
	assert.Equal(t, models.PublishStatusCreated, result.Status)
	assert.Len(t, f.storage.publications, 2)
}

func TestPublish_DedupesInputTimes(t *testing.T) {
	f := newFixture()

	result, err := f.service.Publish(context.Background(), "u1",
		mustTime(t, "2025-10-15T00:00:00Z"), domain.LessonDriving,
		[]time.Time{
			mustTime(t, "2025-10-15T09:00:00Z"),
			mustTime(t, "2025-10-15T09:00:30Z"), // тот же час:минута
		})

	require.NoError(t, err)
	assert.Len(t, result.Publication.Times, 1)
}

func TestPublish_NotInstructor(t *testing.T) {
	f := newFixture()

	_, err := f.service.Publish(context.Background(), "stranger",
		mustTime(t, "2025-10-15T00:00:00Z"), domain.LessonDriving,
		[]time.Time{mustTime(t, "2025-10-15T09:00:00Z")})

	assert.ErrorIs(t, err, timeslots.ErrNotInstructor)
}

func TestPublish_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	date := mustTime(t, "2025-10-15T00:00:00Z")

	_, err := f.service.Publish(ctx, "u1", date, "KARTING",
		[]time.Time{mustTime(t, "2025-10-15T09:00:00Z")})
	assert.ErrorIs(t, err, timeslots.ErrInvalidPublication)

	_, err = f.service.Publish(ctx, "u1", date, domain.LessonDriving, nil)
	assert.ErrorIs(t, err, timeslots.ErrInvalidPublication)
}

func TestListOwn_ReturnsOnlyOwnPublications(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	date := mustTime(t, "2025-10-15T00:00:00Z")
	slot := []time.Time{mustTime(t, "2025-10-15T09:00:00Z")}

	_, err := f.service.Publish(ctx, "u1", date, domain.LessonDriving, slot)
	require.NoError(t, err)
	_, err = f.service.Publish(ctx, "u2", date, domain.LessonDriving, slot)
	require.NoError(t, err)

	own, err := f.service.ListOwn(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "i1", own[0].InstructorID)
}

func TestDelete_OwnPublication(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.service.Publish(ctx, "u1",
		mustTime(t, "2025-10-15T00:00:00Z"), domain.LessonDriving,
		[]time.Time{mustTime(t, "2025-10-15T09:00:00Z")})
	require.NoError(t, err)

	err = f.service.Delete(ctx, "u1", result.Publication.ID)

	require.NoError(t, err)
	assert.Empty(t, f.storage.publications)
}

func TestDelete_ForeignPublication(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.service.Publish(ctx, "u1",
		mustTime(t, "2025-10-15T00:00:00Z"), domain.LessonDriving,
		[]time.Time{mustTime(t, "2025-10-15T09:00:00Z")})
	require.NoError(t, err)

	err = f.service.Delete(ctx, "u2", result.Publication.ID)

	assert.ErrorIs(t, err, timeslots.ErrPermissionDenied)
	assert.Len(t, f.storage.publications, 1)
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture()

	err := f.service.Delete(context.Background(), "u1", 404)

	assert.ErrorIs(t, err, timeslots.ErrPublicationNotFound)
}
