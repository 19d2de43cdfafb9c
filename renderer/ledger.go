package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/lansky"
	md "github.com/nao1215/markdown"
)

// InventoryMarkdown renders the stock. Sold items are listed only when 'all' is set.
func InventoryMarkdown(inventory []lansky.InventoryItem, all bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Stock")
	doc.PlainText("Add items here first. Move them to Sales once sold.")

	items := inventory
	if !all {
		items = lansky.ActiveItems(inventory)
	}
	if len(items) == 0 {
		doc.H3("No items in stock")
		doc.PlainText("Add your inventory to start tracking profits.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Item", "Description", "Purchased", "Cost", "ID"},
	}
	if all {
		table.Alignment = append(table.Alignment, md.AlignLeft)
		table.Header = append(table.Header, "Status")
	}
	for _, item := range items {
		row := []string{item.ItemName, item.Description, item.PurchaseDate.String(), item.PurchasePrice.String(), item.ID}
		if all {
			row = append(row, string(item.Status))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	cost := lansky.Sum(items, func(i lansky.InventoryItem) lansky.Money { return i.PurchasePrice })
	doc.PlainText(fmt.Sprintf("%d items, %s total cost.", len(items), cost))
	return doc.String()
}

// SalesMarkdown renders the sales ledger with its monthly and platform breakdowns.
func SalesMarkdown(sales []lansky.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Ledger")
	doc.PlainText("History of all sold inventory.")
	if len(sales) == 0 {
		doc.PlainText("No sales history yet. Go to Inventory to sell your stock!")
		return doc.String()
	}

	doc.H2("Monthly Performance")
	doc.Table(bucketTable("Month", "Net Profit", lansky.ProfitByMonth(sales)))
	doc.H2("Platform Profit")
	doc.Table(bucketTable("Platform", "Net Profit", lansky.ProfitByPlatform(sales)))

	doc.H2("Sales")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Date", "Quarter", "Item", "Platform", "Sale", "Cost", "Fees", "Shipping", "Net Profit", "ID"},
	}
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{
			s.Date.String(),
			s.Quarter.String(),
			s.ItemName,
			s.Platform,
			s.SalePrice.String(),
			s.PurchasePrice.String(),
			s.Fees.String(),
			s.ShippingPaid.String(),
			md.Bold(s.NetProfit.String()),
			s.ID,
		})
	}
	doc.Table(table)
	return doc.String()
}

// ExpensesMarkdown renders the expenses.
func ExpensesMarkdown(expenses []lansky.Expense) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Business Expenses")
	doc.PlainText("Track overhead and sourcing costs.")
	if len(expenses) == 0 {
		doc.PlainText("No expenses logged. Track your costs for tax deductions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Date", "Quarter", "Category", "Description", "Amount", "ID"},
	}
	for _, e := range expenses {
		table.Rows = append(table.Rows, []string{e.Date.String(), e.Quarter.String(), e.Category, e.Description, e.Amount.String(), e.ID})
	}
	doc.Table(table)

	total := lansky.Sum(expenses, func(e lansky.Expense) lansky.Money { return e.Amount })
	doc.PlainText(fmt.Sprintf("Total: %s", md.Bold(total.String())))
	return doc.String()
}
