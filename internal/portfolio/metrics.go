package portfolio

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// TotalMarketValue sums the stored market values.
func TotalMarketValue(positions []Position) float64 {
	total := decimal.Zero
	for _, p := range positions {
		total = total.Add(decimal.NewFromFloat(p.MarketValue))
	}
	return total.InexactFloat64()
}

// PositionMetrics are the derived figures shown next to a holding.
type PositionMetrics struct {
	CostBasis     decimal.Decimal
	ProfitLoss    decimal.Decimal
	ProfitLossPct decimal.Decimal // percent of cost basis
	AllocationPct decimal.Decimal // percent of total market value
}

// ComputeMetrics derives P/L from the stored market value and the cost basis
// (quantity × average cost). Percentages are zero when their base is zero.
func ComputeMetrics(p Position, totalValue float64) PositionMetrics {
	cost := decimal.NewFromFloat(p.Quantity).Mul(decimal.NewFromFloat(p.AverageCost))
	value := decimal.NewFromFloat(p.MarketValue)
	total := decimal.NewFromFloat(totalValue)

	m := PositionMetrics{
		CostBasis:  cost,
		ProfitLoss: value.Sub(cost),
	}
	if !cost.IsZero() {
		m.ProfitLossPct = m.ProfitLoss.Div(cost).Mul(hundred)
	}
	if !total.IsZero() {
		m.AllocationPct = value.Div(total).Mul(hundred)
	}
	return m
}

// Summary aggregates metrics over a whole portfolio.
type Summary struct {
	TotalValue    decimal.Decimal
	TotalCost     decimal.Decimal
	ProfitLoss    decimal.Decimal
	ProfitLossPct decimal.Decimal
}

func Summarize(positions []Position) Summary {
	var s Summary
	for _, p := range positions {
		s.TotalValue = s.TotalValue.Add(decimal.NewFromFloat(p.MarketValue))
		s.TotalCost = s.TotalCost.Add(decimal.NewFromFloat(p.Quantity).Mul(decimal.NewFromFloat(p.AverageCost)))
	}
	s.ProfitLoss = s.TotalValue.Sub(s.TotalCost)
	if !s.TotalCost.IsZero() {
		s.ProfitLossPct = s.ProfitLoss.Div(s.TotalCost).Mul(hundred)
	}
	return s
}
