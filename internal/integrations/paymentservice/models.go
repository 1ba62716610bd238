package paymentservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// IntentRequest запрос на создание payment intent
type IntentRequest struct {
	Amount   int64             `json:"amount"`   // Сумма в минорных единицах (бани)
	Currency string            `json:"currency"` // Код валюты, например "ron"
	Metadata map[string]string `json:"metadata"`
}

// Intent созданный payment intent
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

// ErrorResponse модель ошибки платёжного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
