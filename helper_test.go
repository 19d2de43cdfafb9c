package lansky

import (
	"github.com/etnz/lansky/date"
	"github.com/google/go-cmp/cmp"
)

// cmpOpts compares ledger records field by field, amounts by value.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// widgetState returns a ledger with one sold item, one available item and one expense.
func widgetState() State {
	s := NewState()
	s, _ = s.AddInventoryItem("1", "Vintage Denim Jacket", "", USD(15), date.MustParse("2023-11-15"))
	s, _ = s.SellInventoryItem("s1", "1", SaleOrder{
		Date:         date.MustParse("2024-01-05"),
		Platform:     "eBay",
		SalePrice:    USD(45),
		Fees:         USD(5.85),
		ShippingPaid: USD(10),
	})
	s, _ = s.AddInventoryItem("2", "Classic Camera", "", USD(55), date.MustParse("2024-01-20"))
	s, _ = s.AddExpense("e1", date.MustParse("2024-01-02"), "Packaging/Boxes", USD(25.5), "Bulk bubble mailers")
	return s
}
