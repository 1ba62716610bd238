package get_cart

import (
	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/add_cart_item"
	cartModels "github.com/m04kA/AutoSchool-BookingService/internal/service/cart/models"
)

// GetCartResponse HTTP response model
type GetCartResponse struct {
	Entries   []add_cart_item.CartEntryResponse `json:"entries"`
	TotalCost float64                           `json:"totalCost"`
}

// FromSnapshot конвертирует снимок корзины в HTTP response
func FromSnapshot(snapshot *cartModels.CartSnapshot) *GetCartResponse {
	entries := make([]add_cart_item.CartEntryResponse, len(snapshot.Entries))
	for i, entry := range snapshot.Entries {
		entries[i] = add_cart_item.FromCartEntry(entry)
	}

	return &GetCartResponse{
		Entries:   entries,
		TotalCost: snapshot.TotalCost,
	}
}
