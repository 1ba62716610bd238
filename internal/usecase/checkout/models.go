package checkout

import "github.com/m04kA/AutoSchool-BookingService/internal/domain"

// Request запрос на оформление корзины
type Request struct {
	UserID        string
	Entries       []domain.CartEntry
	PaymentMethod domain.PaymentMethod
	// PaymentToken - идентификатор платежного намерения, по которому
	// вебхук оплаты позже найдет созданные бронирования. Для оплаты
	// наличными пуст.
	PaymentToken string
}

// EntryOutcome исход оформления одной записи корзины
type EntryOutcome string

const (
	// OutcomeBooked - бронирование создано, времена сняты с публикации
	OutcomeBooked EntryOutcome = "booked"
	// OutcomeBookedStale - бронирование создано, но публикация с таким
	// ключом уже не существует (инструктор удалил ее после добавления
	// в корзину), снимать времена не с чего
	OutcomeBookedStale EntryOutcome = "booked_publication_missing"
	// OutcomeFailed - запись не оформлена
	OutcomeFailed EntryOutcome = "failed"
)

// EntryResult результат оформления одной записи корзины
type EntryResult struct {
	Index   int          `json:"index"`
	Outcome EntryOutcome `json:"outcome"`
	Error   string       `json:"error,omitempty"`
}

// Response результат оформления корзины
//
// Оформление не идемпотентно: повторная отправка того же запроса создаст
// дубликаты бронирований, защита от двойной отправки лежит на вызывающем
type Response struct {
	Bookings     []*domain.Booking `json:"bookings"`
	EntryResults []EntryResult     `json:"entryResults"`
	CreatedCount int               `json:"createdCount"`
	TotalCost    float64           `json:"totalCost"`
}
