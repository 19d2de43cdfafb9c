package lansky

// Metrics are the headline figures of the dashboard.
type Metrics struct {
	TotalRevenue         Money
	TotalCOGS            Money
	TotalNetProfit       Money
	AvgMargin            Percent
	ActiveInventoryValue Money
	ActiveInventoryCount int
}

// ComputeMetrics aggregates the sales and the available stock.
//
// AvgMargin is the net profit as a percentage of the revenue, and 0 when
// there is no revenue.
func ComputeMetrics(sales []Sale, inventory []InventoryItem) Metrics {
	m := Metrics{
		TotalRevenue:   Sum(sales, func(s Sale) Money { return s.SalePrice }),
		TotalCOGS:      Sum(sales, func(s Sale) Money { return s.PurchasePrice }),
		TotalNetProfit: Sum(sales, func(s Sale) Money { return s.NetProfit }),
	}
	if m.TotalRevenue.Decimal().IsPositive() {
		ratio := m.TotalNetProfit.Decimal().Div(m.TotalRevenue.Decimal())
		m.AvgMargin = Percent(ratio.InexactFloat64() * 100)
	}

	active := ActiveItems(inventory)
	m.ActiveInventoryCount = len(active)
	m.ActiveInventoryValue = Sum(active, func(i InventoryItem) Money { return i.PurchasePrice })
	return m
}
