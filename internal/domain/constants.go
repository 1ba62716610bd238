package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxTimesPerEntry       = 48 // Интервалы по 30 минут, больше суток выбрать нельзя
	MaxCartEntries         = 50 // Ограничение на размер корзины
	BookingNumberPrefix    = "BK"
	BookingNumberRandomLen = 8
)

// ActiveStatuses список статусов, при которых бронирование занимает свои интервалы
// Используется при вычислении эффективной доступности
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusCompleted,
}
