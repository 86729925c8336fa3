package web

import (
	"github.com/redmonkez12/holdings-api/internal/portfolio"
)

type holdingsView struct {
	Title     string
	Viewer    string
	Owner     string
	NotSeeded bool
	Error     string

	TotalValue string
	TotalCost  string
	TotalPL    string
	TotalPLPct string
	PLClass    string
	Rows       []holdingRow
}

type holdingRow struct {
	Symbol        string
	Name          string
	Account       string
	Quantity      string
	AverageCost   string
	MarketPrice   string
	MarketValue   string
	ProfitLoss    string
	ProfitLossPct string
	Allocation    string
	PLClass       string
}

func (v *holdingsView) fill(h *portfolio.Holdings) {
	v.Owner = h.User.Email

	summary := portfolio.Summarize(h.Positions)
	v.TotalValue = formatMoneyFloat(h.TotalValue, defaultCurrency)
	v.TotalCost = formatMoney(summary.TotalCost, defaultCurrency)
	v.TotalPL = formatMoney(summary.ProfitLoss, defaultCurrency)
	v.TotalPLPct = formatPercent(summary.ProfitLossPct)
	v.PLClass = signClass(summary.ProfitLoss)

	v.Rows = make([]holdingRow, 0, len(h.Positions))
	for _, p := range h.Positions {
		currency := defaultCurrency
		account := ""
		if p.Account != nil {
			account = p.Account.Broker + " · " + p.Account.Name
			if p.Account.Currency != "" {
				currency = p.Account.Currency
			}
		}

		m := portfolio.ComputeMetrics(p, h.TotalValue)
		v.Rows = append(v.Rows, holdingRow{
			Symbol:        p.Symbol,
			Name:          p.Name,
			Account:       account,
			Quantity:      formatQuantity(p.Quantity),
			AverageCost:   formatMoneyFloat(p.AverageCost, currency),
			MarketPrice:   formatMoneyFloat(p.MarketPrice, currency),
			MarketValue:   formatMoneyFloat(p.MarketValue, currency),
			ProfitLoss:    formatMoney(m.ProfitLoss, currency),
			ProfitLossPct: formatPercent(m.ProfitLossPct),
			Allocation:    formatPercent(m.AllocationPct),
			PLClass:       signClass(m.ProfitLoss),
		})
	}
}
