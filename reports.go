package lansky

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/lansky/date"
)

// Bucket is a labelled total in a breakdown.
type Bucket struct {
	Label string
	Total Money
}

// breakdown sums amounts per label, keeping labels in first seen order.
func breakdown[T any](xs []T, label func(T) string, amount func(T) Money) []Bucket {
	var buckets []Bucket
	index := make(map[string]int)
	for _, x := range xs {
		l := label(x)
		i, ok := index[l]
		if !ok {
			i = len(buckets)
			index[l] = i
			buckets = append(buckets, Bucket{Label: l})
		}
		buckets[i].Total = buckets[i].Total.Add(amount(x))
	}
	return buckets
}

// ProfitByQuarter returns the net profit per quarter label, sorted by label.
func ProfitByQuarter(sales []Sale) []Bucket {
	buckets := breakdown(sales, func(s Sale) string { return s.Quarter.String() }, func(s Sale) Money { return s.NetProfit })
	slices.SortFunc(buckets, func(a, b Bucket) int { return strings.Compare(a.Label, b.Label) })
	return buckets
}

// ProfitByPlatform returns the net profit per platform in first seen order.
func ProfitByPlatform(sales []Sale) []Bucket {
	return breakdown(sales, func(s Sale) string { return s.Platform }, func(s Sale) Money { return s.NetProfit })
}

// ProfitByMonth returns the net profit per short month name ("Jan") in first seen order.
//
// Like the sales ledger chart, months of different years share a bucket.
func ProfitByMonth(sales []Sale) []Bucket {
	return breakdown(sales, func(s Sale) string { return s.Date.Month().String()[:3] }, func(s Sale) Money { return s.NetProfit })
}

// ExpensesByCategory returns the expense total per category in first seen order.
func ExpensesByCategory(expenses []Expense) []Bucket {
	return breakdown(expenses, func(e Expense) string { return e.Category }, func(e Expense) Money { return e.Amount })
}

// FilterSales returns the sales dated within r.
func FilterSales(sales []Sale, r date.Range) []Sale {
	var out []Sale
	for _, s := range sales {
		if r.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}

// FilterExpenses returns the expenses dated within r.
func FilterExpenses(expenses []Expense, r date.Range) []Expense {
	var out []Expense
	for _, e := range expenses {
		if r.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// TaxReport is a Schedule C style summary of the business.
type TaxReport struct {
	GrossReceipts      Money
	COGS               Money
	PlatformFees       Money
	ShippingCosts      Money
	ExpensesByCategory []Bucket
	TotalExpenses      Money
}

// NewTaxReport aggregates the sales and expenses it is given. Callers
// restrict them to a tax year with FilterSales and FilterExpenses.
func NewTaxReport(sales []Sale, expenses []Expense) *TaxReport {
	r := &TaxReport{
		GrossReceipts:      Sum(sales, func(s Sale) Money { return s.SalePrice }),
		COGS:               Sum(sales, func(s Sale) Money { return s.PurchasePrice }),
		PlatformFees:       Sum(sales, func(s Sale) Money { return s.Fees }),
		ShippingCosts:      Sum(sales, func(s Sale) Money { return s.ShippingPaid }),
		ExpensesByCategory: ExpensesByCategory(expenses),
	}
	r.TotalExpenses = Sum(r.ExpensesByCategory, func(b Bucket) Money { return b.Total })
	return r
}

// NetBusinessIncome is the taxable income: receipts minus every cost.
func (r *TaxReport) NetBusinessIncome() Money {
	return r.GrossReceipts.Sub(r.COGS).Sub(r.PlatformFees).Sub(r.ShippingCosts).Sub(r.TotalExpenses)
}

// AdvisorSummary returns the plain text financial summary sent to the business advisor.
//
// It holds aggregates only, never individual records.
func AdvisorSummary(s State) string {
	m := ComputeMetrics(s.Sales, s.Inventory)
	expenses := Sum(s.Expenses, func(e Expense) Money { return e.Amount })

	var b strings.Builder
	fmt.Fprintf(&b, "Total Sales: %d\n", len(s.Sales))
	fmt.Fprintf(&b, "Total Revenue: $%s\n", m.TotalRevenue.Fixed())
	fmt.Fprintf(&b, "Total Profit: $%s\n", m.TotalNetProfit.Fixed())
	fmt.Fprintf(&b, "Active Inventory: %d items\n", m.ActiveInventoryCount)
	fmt.Fprintf(&b, "Inventory Value (Cost): $%s\n", m.ActiveInventoryValue.Fixed())
	fmt.Fprintf(&b, "Total Expenses: $%s\n", expenses.Fixed())
	return b.String()
}
