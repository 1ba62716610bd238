package models

import "github.com/m04kA/AutoSchool-BookingService/internal/domain"

// AddStatus результат добавления выбора в корзину
type AddStatus string

const (
	// AddStatusAdded - создана новая запись корзины
	AddStatusAdded AddStatus = "added"
	// AddStatusMerged - времена слиты в существующую запись
	AddStatusMerged AddStatus = "merged"
)

// AddSelectionResult результат операции AddSelection
type AddSelectionResult struct {
	Status AddStatus        `json:"status"`
	Entry  domain.CartEntry `json:"entry"`
}

// CartSnapshot снимок корзины пользователя с итоговой стоимостью
type CartSnapshot struct {
	Entries   []domain.CartEntry `json:"entries"`
	TotalCost float64            `json:"totalCost"`
}
