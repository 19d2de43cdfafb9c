package lansky

import "github.com/etnz/lansky/date"

// Sale records an inventory item leaving the stock.
//
// Item fields are copied from the inventory at sale time and NetProfit and
// Quarter are computed once: later edits never rewrite a past sale.
type Sale struct {
	ID              string    `json:"id" validate:"required"`
	InventoryItemID string    `json:"inventoryItemId,omitempty"`
	Date            date.Date `json:"date" validate:"required"`
	ItemName        string    `json:"itemName" validate:"required"`
	Description     string    `json:"description,omitempty"`
	Platform        string    `json:"platform"`
	PurchasePrice   Money     `json:"purchasePrice" validate:"gte=0"`
	SalePrice       Money     `json:"salePrice" validate:"gte=0"`
	Fees            Money     `json:"fees" validate:"gte=0"`
	ShippingPaid    Money     `json:"shippingPaid" validate:"gte=0"`
	NetProfit       Money     `json:"netProfit"`
	Quarter         Quarter   `json:"quarter" validate:"min=1,max=4"`
}

// SaleOrder holds what the seller enters when an item is sold.
type SaleOrder struct {
	Date         date.Date
	Platform     string
	SalePrice    Money
	Fees         Money
	ShippingPaid Money
}

// NetProfit returns salePrice − purchasePrice − fees − shippingPaid.
func NetProfit(salePrice, purchasePrice, fees, shippingPaid Money) Money {
	return salePrice.Sub(purchasePrice).Sub(fees).Sub(shippingPaid)
}

// FindSale returns the index of the sale with this id, or -1.
func FindSale(sales []Sale, id string) int {
	for i, s := range sales {
		if s.ID == id {
			return i
		}
	}
	return -1
}
