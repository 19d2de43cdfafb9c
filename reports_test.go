package lansky

import (
	"testing"

	"github.com/etnz/lansky/date"
	"github.com/google/go-cmp/cmp"
)

func TestBreakdowns(t *testing.T) {
	s := NewState().Seed()
	// a Q3 sale on eBay, listed first like a recent sale
	s, err := s.SellInventoryItem("s3", "4", SaleOrder{Date: date.MustParse("2024-08-10"), Platform: "eBay", SalePrice: USD(70), Fees: USD(9)})
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name string
		got  []Bucket
		want []Bucket
	}{
		{
			name: "by quarter",
			got:  ProfitByQuarter(s.Sales),
			want: []Bucket{{"Q1", USD(50.15)}, {"Q3", USD(6)}},
		},
		{
			name: "by platform",
			got:  ProfitByPlatform(s.Sales),
			want: []Bucket{{"eBay", USD(20.15)}, {"Poshmark", USD(36)}},
		},
		{
			name: "by month",
			got:  ProfitByMonth(s.Sales),
			want: []Bucket{{"Aug", USD(6)}, {"Jan", USD(14.15)}, {"Feb", USD(36)}},
		},
		{
			name: "expenses by category",
			got:  ExpensesByCategory(s.Expenses),
			want: []Bucket{{"Packaging/Boxes", USD(25.5)}, {"Inventory Software", USD(15)}},
		},
		{
			name: "empty",
			got:  ProfitByQuarter(nil),
			want: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.got, cmpOpts); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewTaxReport(t *testing.T) {
	s := NewState().Seed()
	s, _ = s.AddExpense("e3", date.MustParse("2023-12-20"), "Packaging/Boxes", USD(4.5), "tape")

	year := date.NewRange(date.MustParse("2024-06-01"), date.Yearly)
	r := NewTaxReport(FilterSales(s.Sales, year), FilterExpenses(s.Expenses, year))

	want := &TaxReport{
		GrossReceipts:      USD(140),
		COGS:               USD(55),
		PlatformFees:       USD(24.85),
		ShippingCosts:      USD(10),
		ExpensesByCategory: []Bucket{{"Packaging/Boxes", USD(25.5)}, {"Inventory Software", USD(15)}},
		TotalExpenses:      USD(40.5),
	}
	if diff := cmp.Diff(want, r, cmpOpts); diff != "" {
		t.Errorf("NewTaxReport() mismatch (-want +got):\n%s", diff)
	}
	if got, want := r.NetBusinessIncome(), USD(9.65); !got.Equal(want) {
		t.Errorf("NetBusinessIncome() = %s, want %s", got.Number(), want.Number())
	}
}

func TestAdvisorSummary(t *testing.T) {
	want := `Total Sales: 2
Total Revenue: $140.00
Total Profit: $50.15
Active Inventory: 3 items
Inventory Value (Cost): $260.00
Total Expenses: $40.50
`
	if diff := cmp.Diff(want, AdvisorSummary(NewState().Seed())); diff != "" {
		t.Errorf("AdvisorSummary() mismatch (-want +got):\n%s", diff)
	}
}
