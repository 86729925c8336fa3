package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics(t *testing.T) {
	positions := demoSeed("demo@example.com", "x").Positions
	total := TotalMarketValue(positions)
	assert.InDelta(t, 4610.0, total, 1e-9)

	tests := []struct {
		symbol     string
		cost       string
		pl         string
		plPct      string
		allocation string
	}{
		{"AAPL", "1500.00", "300.00", "20.00", "39.05"},
		{"VOO", "2000.00", "150.00", "7.50", "46.64"},
		{"TSLA", "600.00", "60.00", "10.00", "14.32"},
	}

	for i, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			p := positions[i]
			assert.Equal(t, tt.symbol, p.Symbol)

			m := ComputeMetrics(p, total)
			assert.Equal(t, tt.cost, m.CostBasis.StringFixed(2))
			assert.Equal(t, tt.pl, m.ProfitLoss.StringFixed(2))
			assert.Equal(t, tt.plPct, m.ProfitLossPct.StringFixed(2))
			assert.Equal(t, tt.allocation, m.AllocationPct.StringFixed(2))
		})
	}
}

func TestComputeMetrics_ZeroBases(t *testing.T) {
	m := ComputeMetrics(Position{Quantity: 0, AverageCost: 10, MarketValue: 0}, 0)

	assert.True(t, m.ProfitLossPct.IsZero())
	assert.True(t, m.AllocationPct.IsZero())
}

func TestComputeMetrics_Loss(t *testing.T) {
	m := ComputeMetrics(Position{Quantity: 2, AverageCost: 50, MarketValue: 80}, 80)

	assert.Equal(t, "-20.00", m.ProfitLoss.StringFixed(2))
	assert.Equal(t, "-20.00", m.ProfitLossPct.StringFixed(2))
	assert.Equal(t, "100.00", m.AllocationPct.StringFixed(2))
}

func TestSummarize(t *testing.T) {
	s := Summarize(demoSeed("demo@example.com", "x").Positions)

	assert.Equal(t, "4610.00", s.TotalValue.StringFixed(2))
	assert.Equal(t, "4100.00", s.TotalCost.StringFixed(2))
	assert.Equal(t, "510.00", s.ProfitLoss.StringFixed(2))
	assert.Equal(t, "12.44", s.ProfitLossPct.StringFixed(2))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.True(t, s.TotalValue.IsZero())
	assert.True(t, s.ProfitLossPct.IsZero())
}
