package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/AutoSchool-BookingService/internal/domain"
	timeslotRepo "github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/AutoSchool-BookingService/internal/integrations/notifyservice"
)

// EventBookingsCreated событие для сервиса уведомлений
const EventBookingsCreated = "bookings.created"

// UseCase use case оформления корзины
//
// Для каждой записи корзины снимает выбранные времена с публикации
// инструктора и создает бронирование. Каждая запись оформляется в
// собственной транзакции: снятие времен и вставка бронирования атомарны
// внутри записи, но сбой одной записи не откатывает уже оформленные.
type UseCase struct {
	timeslotRepo   TimeSlotRepository
	bookingRepo    BookingRepository
	instructorRepo InstructorRepository
	cart           CartResetter
	notifyClient   NotifyServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeslotRepo TimeSlotRepository,
	bookingRepo BookingRepository,
	instructorRepo InstructorRepository,
	cart CartResetter,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		timeslotRepo:   timeslotRepo,
		bookingRepo:    bookingRepo,
		instructorRepo: instructorRepo,
		cart:           cart,
		notifyClient:   notifyClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет оформление корзины
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Checkout: user=%s, entries=%d, payMethod=%s", req.UserID, len(req.Entries), req.PaymentMethod)

	// 1. Валидация до каких-либо записей в БД
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Checkout: validation failed: %v", err)
		return nil, err
	}

	// Оплата наличными считается подтвержденной сразу, картой - после вебхука
	isPaid := req.PaymentMethod == domain.PaymentCash

	results := make([]EntryResult, len(req.Entries))
	created := make([]*domain.Booking, 0, len(req.Entries))

	// 2. Оформляем каждую запись в собственной транзакции. Общая
	// транзакция здесь не годится: ошибка SQL на одной записи отравила
	// бы её целиком (25P02), и частичный результат стал бы недостижим
	for i, entry := range req.Entries {
		date, _ := time.Parse(domain.DateFormat, entry.Date)

		var booked *domain.Booking
		var outcome EntryOutcome

		err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
			outcome = OutcomeBooked

			// 2.1. Атомарно вычитаем времена записи из публикации одним
			// UPDATE: конкурентное оформление той же публикации не может
			// вернуть снятые времена обратно
			if err := uc.timeslotRepo.RemoveTimes(txCtx, entry.InstructorID, date, entry.LessonType, entry.Times); err != nil {
				if !errors.Is(err, timeslotRepo.ErrPublicationNotFound) {
					return err
				}
				// Публикацию уже удалили - бронирование все равно создаем
				outcome = OutcomeBookedStale
			}

			// 2.2. Вставляем бронирование в той же транзакции
			booked = &domain.Booking{
				UserID:        req.UserID,
				InstructorID:  entry.InstructorID,
				Date:          date,
				LessonType:    entry.LessonType,
				Times:         entry.Times,
				Cost:          entry.TotalCost(),
				PaymentMethod: req.PaymentMethod,
				Paid:          isPaid,
				BookingNumber: newBookingNumber(),
				PaymentToken:  req.PaymentToken,
				Status:        domain.StatusPending,
			}
			return uc.bookingRepo.InsertBatch(txCtx, []*domain.Booking{booked})
		})
		if err != nil {
			uc.logger.Error("Checkout: failed to book entry: user=%s, entry=%d: %v", req.UserID, i, err)
			results[i] = EntryResult{Index: i, Outcome: OutcomeFailed, Error: "failed to book entry"}
			continue
		}

		if outcome == OutcomeBookedStale {
			uc.logger.Warn("Checkout: publication missing: user=%s, instructor=%s, date=%s",
				req.UserID, entry.InstructorID, entry.Date)
		}

		created = append(created, booked)
		results[i] = EntryResult{Index: i, Outcome: outcome}
	}

	if len(created) == 0 {
		return nil, ErrNoBookingsCreated
	}

	totalCost := 0.0
	for _, b := range created {
		totalCost += b.Cost
	}

	uc.logger.Info("Checkout: created %d bookings: user=%s, totalCost=%.2f", len(created), req.UserID, totalCost)

	// 3. Очищаем корзину. Бронирования уже зафиксированы, поэтому сбой
	// очистки только логируем
	if err := uc.cart.Reset(ctx, req.UserID); err != nil {
		uc.logger.Error("Checkout: failed to reset cart: user=%s: %v", req.UserID, err)
	}

	// 4. Уведомляем инструкторов: best-effort, сбой не откатывает оформление
	uc.notifyInstructors(ctx, req.UserID, created)

	return &Response{
		Bookings:     created,
		EntryResults: results,
		CreatedCount: len(created),
		TotalCost:    totalCost,
	}, nil
}

// notifyInstructors отправляет уведомление каждому затронутому инструктору
func (uc *UseCase) notifyInstructors(ctx context.Context, userID string, bookings []*domain.Booking) {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.InstructorID]; ok {
			continue
		}
		seen[b.InstructorID] = struct{}{}
		ids = append(ids, b.InstructorID)
	}

	instructors, err := uc.instructorRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("Checkout: failed to load instructors for notification: %v", err)
		return
	}

	recipients := make([]notifyservice.Recipient, 0, len(instructors))
	for _, inst := range instructors {
		recipients = append(recipients, notifyservice.Recipient{
			ID:    inst.ID,
			Name:  inst.Name,
			Email: inst.Email,
		})
	}

	payload := map[string]string{
		"userId":        userID,
		"bookingsCount": fmt.Sprintf("%d", len(bookings)),
	}

	if err := uc.notifyClient.Notify(ctx, EventBookingsCreated, notifyservice.Recipient{ID: userID}, recipients, payload); err != nil {
		uc.logger.Error("Checkout: failed to notify instructors: %v", err)
	}
}

// newBookingNumber генерирует человекочитаемый номер бронирования
func newBookingNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return domain.BookingNumberPrefix + strings.ToUpper(raw[:domain.BookingNumberRandomLen])
}
