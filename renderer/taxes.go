package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/lansky"
	"github.com/etnz/lansky/date"
	md "github.com/nao1215/markdown"
)

// TaxMarkdown renders the Schedule C summary. A nil period means all records.
func TaxMarkdown(r *lansky.TaxReport, period *date.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if period == nil {
		doc.H1("Tax Prep (Schedule C)")
		doc.PlainText("Aggregated totals of all recorded sales and expenses.")
	} else {
		doc.H1(fmt.Sprintf("Tax Prep (Schedule C) %s", period.Identifier()))
		doc.PlainText(fmt.Sprintf("Aggregated totals from %s to %s.", period.From, period.To))
	}

	doc.H2("Income & Direct Costs")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Line", "Amount"},
		Rows: [][]string{
			{"Line 1: Gross Receipts / Sales", r.GrossReceipts.String()},
			{"Line 4: Cost of Goods Sold (COGS)", r.COGS.String()},
			{md.Bold("Gross Profit"), md.Bold(r.GrossReceipts.Sub(r.COGS).String())},
		},
	})

	doc.H2("Operating Deductions")
	deductions := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Deduction", "Amount"},
		Rows: [][]string{
			{"Platform Selling Fees", r.PlatformFees.String()},
			{"Shipping & Logistics Costs", r.ShippingCosts.String()},
		},
	}
	for _, b := range r.ExpensesByCategory {
		deductions.Rows = append(deductions.Rows, []string{b.Label, b.Total.String()})
	}
	doc.Table(deductions)

	doc.H2("Estimated Net Income")
	doc.PlainText(md.Bold(r.NetBusinessIncome().String()))
	doc.PlainText("This is your taxable business income after subtracting all recorded expenses and costs.")
	doc.PlainText(md.Italic("Tax Tip: Keep digital receipts for all expenses logged. If you use your car for sourcing, ensure you track your mileage separately for Line 9 (Car and truck expenses)."))
	return doc.String()
}
