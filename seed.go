package lansky

import "github.com/etnz/lansky/date"

// SeedDemoData returns the fixed demo dataset used to discover the tool.
//
// The values are literal: two items were sold in Q1 2024, three are still in stock.
func SeedDemoData() ([]InventoryItem, []Sale, []Expense) {
	inventory := []InventoryItem{
		{ID: "1", ItemName: "Vintage Denim Jacket", PurchasePrice: USD(15), PurchaseDate: date.MustParse("2023-11-15"), Status: Sold},
		{ID: "2", ItemName: "Limited Edition Sneakers", PurchasePrice: USD(85), PurchaseDate: date.MustParse("2023-12-05"), Status: Available},
		{ID: "3", ItemName: "Retro Gaming Console", PurchasePrice: USD(40), PurchaseDate: date.MustParse("2024-01-10"), Status: Sold},
		{ID: "4", ItemName: "Classic Camera", PurchasePrice: USD(55), PurchaseDate: date.MustParse("2024-01-20"), Status: Available},
		{ID: "5", ItemName: "Designer Handbag", PurchasePrice: USD(120), PurchaseDate: date.MustParse("2024-02-01"), Status: Available},
	}

	sales := []Sale{
		{
			ID:              "s1",
			InventoryItemID: "1",
			Date:            date.MustParse("2024-01-05"),
			ItemName:        "Vintage Denim Jacket",
			Platform:        "eBay",
			PurchasePrice:   USD(15),
			SalePrice:       USD(45),
			Fees:            USD(5.85),
			ShippingPaid:    USD(10),
			NetProfit:       USD(14.15),
			Quarter:         Q1,
		},
		{
			ID:              "s2",
			InventoryItemID: "3",
			Date:            date.MustParse("2024-02-12"),
			ItemName:        "Retro Gaming Console",
			Platform:        "Poshmark",
			PurchasePrice:   USD(40),
			SalePrice:       USD(95),
			Fees:            USD(19),
			ShippingPaid:    USD(0),
			NetProfit:       USD(36),
			Quarter:         Q1,
		},
	}

	expenses := []Expense{
		{ID: "e1", Date: date.MustParse("2024-01-02"), Category: "Packaging/Boxes", Amount: USD(25.50), Description: "Bulk bubble mailers", Quarter: Q1},
		{ID: "e2", Date: date.MustParse("2024-02-15"), Category: "Inventory Software", Amount: USD(15.00), Description: "Monthly subscription", Quarter: Q1},
	}
	return inventory, sales, expenses
}
