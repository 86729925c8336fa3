package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redmonkez12/holdings-api/internal/portfolio"
	"github.com/redmonkez12/holdings-api/internal/user"
)

func TestRenderHoldings(t *testing.T) {
	account := &portfolio.Account{Name: "E*TRADE Individual", Broker: "ETRADE"}
	h := &portfolio.Holdings{
		User: &user.User{Email: "demo@example.com"},
		Positions: []portfolio.Position{
			{Symbol: "AAPL", Name: "Apple Inc", Quantity: 10, AverageCost: 150, MarketPrice: 180, MarketValue: 1800, Account: account},
			{Symbol: "TSLA", Name: "Tesla Inc", Quantity: 3, AverageCost: 200, MarketPrice: 220, MarketValue: 660, Account: account},
		},
		TotalValue: 2460,
	}

	out := RenderHoldings(h)

	assert.Contains(t, out, "demo@example.com")
	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "300.00")
	assert.Contains(t, out, "20.00%")
	assert.Contains(t, out, "Total value: 2460.00")
	assert.Contains(t, out, "P/L:         360.00 (17.14%)")
	assert.Less(t, strings.Index(out, "AAPL"), strings.Index(out, "TSLA"))
}

func TestRenderHoldings_Empty(t *testing.T) {
	out := RenderHoldings(&portfolio.Holdings{User: &user.User{Email: "demo@example.com"}})

	assert.Contains(t, out, "SYMBOL")
	assert.Contains(t, out, "Total value: 0.00")
}
