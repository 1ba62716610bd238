package notifyservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recipient получатель уведомления
type Recipient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// notifyRequest запрос на отправку уведомления
type notifyRequest struct {
	Event      string            `json:"event"`
	Actor      Recipient         `json:"actor"`
	Recipients []Recipient       `json:"recipients"`
	Payload    map[string]string `json:"payload,omitempty"`
}
