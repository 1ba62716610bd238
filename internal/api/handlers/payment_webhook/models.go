package payment_webhook

// WebhookRequest событие от платежного шлюза
//
// Шлюз присылает идентификатор подтвержденного намерения и метаданные,
// заданные при его создании
type WebhookRequest struct {
	Type     string `json:"type"` // Интересует только "payment_intent.succeeded"
	IntentID string `json:"intentId"`
	Metadata struct {
		UserID string `json:"userId"`
	} `json:"metadata"`
}

// EventPaymentSucceeded тип события успешной оплаты
const EventPaymentSucceeded = "payment_intent.succeeded"
