package confirm_payment

// Request подтверждение оплаты от платежного шлюза
type Request struct {
	// UserID приходит в метаданных платежного намерения
	UserID string
	// PaymentToken - идентификатор подтвержденного намерения
	PaymentToken string
}

// Response результат подтверждения оплаты
type Response struct {
	PaidCount int64 `json:"paidCount"`
}
