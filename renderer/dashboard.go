package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/lansky"
	md "github.com/nao1215/markdown"
)

// maxNewStock is the number of available items listed on the dashboard.
const maxNewStock = 8

// DashboardMarkdown renders the headline metrics, the newest stock and the quarterly profit.
func DashboardMarkdown(st lansky.State) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	m := lansky.ComputeMetrics(st.Sales, st.Inventory)

	doc.H1(fmt.Sprintf("%s Dashboard", st.Settings.AppName))
	doc.PlainText("Real-time financial performance overview.")

	cards := []struct{ title, value, sub, hint string }{
		{"Net Profit", m.TotalNetProfit.String(), "Earnings after all deductions", "Your total take-home pay after COGS, fees, and shipping."},
		{"Revenue", m.TotalRevenue.String(), "Total gross sales volume", "The total amount of money collected from customers before any costs."},
		{"Active Stock", strconv.Itoa(m.ActiveInventoryCount), fmt.Sprintf("%s total cost", m.ActiveInventoryValue), "Count of items currently listed and ready for sale."},
		{"Margin", m.AvgMargin.String(), "Business efficiency rating", "The percentage of revenue that is kept as profit."},
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Metric", "Value", "Details"},
	}
	var hints []string
	for _, c := range cards {
		table.Rows = append(table.Rows, []string{md.Bold(c.title), c.value, c.sub})
		hints = append(hints, fmt.Sprintf("%s: %s", md.Bold(c.title), c.hint))
	}
	doc.Table(table)
	if st.Settings.InspectionMode {
		doc.BulletList(hints...)
	}

	doc.H2("New Stock")
	active := lansky.ActiveItems(st.Inventory)
	if len(active) == 0 {
		doc.PlainText("Your inventory is empty. Add your first item with `lansky add-item`.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Item", "Purchased", "Cost"},
		}
		for _, item := range active[:min(len(active), maxNewStock)] {
			table.Rows = append(table.Rows, []string{item.ItemName, item.PurchaseDate.String(), item.PurchasePrice.String()})
		}
		doc.Table(table)
		if n := len(active) - maxNewStock; n > 0 {
			doc.PlainText(fmt.Sprintf("and %d more, see `lansky inventory`.", n))
		}
	}

	doc.H2("Financial Growth")
	doc.PlainText("Quarterly net profit performance")
	if quarters := lansky.ProfitByQuarter(st.Sales); len(quarters) > 0 {
		doc.Table(bucketTable("Quarter", "Net Profit", quarters))
	}
	return doc.String()
}

// bucketTable renders a breakdown as a two column table.
func bucketTable(label, total string, buckets []lansky.Bucket) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{label, total},
	}
	for _, b := range buckets {
		table.Rows = append(table.Rows, []string{b.Label, b.Total.String()})
	}
	return table
}
