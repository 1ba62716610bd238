package create_payment_intent

// Request запрос на создание платежного намерения
type Request struct {
	UserID string
}

// Response созданное платежное намерение
//
// IntentID передается обратно в запрос оформления корзины как
// PaymentToken: по нему вебхук оплаты находит созданные бронирования
type Response struct {
	IntentID     string  `json:"intentId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       int64   `json:"amount"`
	Currency     string  `json:"currency"`
	TotalCost    float64 `json:"totalCost"`
}
