package lansky

import "github.com/etnz/lansky/date"

// Status tells whether an inventory item can still be sold.
type Status string

const (
	Available Status = "available"
	Sold      Status = "sold"
)

// InventoryItem is a piece of stock bought for resale.
type InventoryItem struct {
	ID            string    `json:"id" validate:"required"`
	ItemName      string    `json:"itemName" validate:"required"`
	Description   string    `json:"description,omitempty"`
	PurchasePrice Money     `json:"purchasePrice" validate:"gte=0"`
	PurchaseDate  date.Date `json:"purchaseDate" validate:"required"`
	Status        Status    `json:"status" validate:"oneof=available sold"`
}

// IsAvailable reports whether the item is still in stock.
func (i InventoryItem) IsAvailable() bool { return i.Status == Available }

// ActiveItems returns the items still available for sale, in their original order.
func ActiveItems(inventory []InventoryItem) []InventoryItem {
	var active []InventoryItem
	for _, item := range inventory {
		if item.IsAvailable() {
			active = append(active, item)
		}
	}
	return active
}

// FindItem returns the index of the item with this id, or -1.
func FindItem(inventory []InventoryItem, id string) int {
	for i, item := range inventory {
		if item.ID == id {
			return i
		}
	}
	return -1
}
