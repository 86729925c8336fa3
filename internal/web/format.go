package web

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const defaultCurrency = "USD"

// formatMoney renders amount in currency's display format, for example
// "$1,800.00". Unknown currency codes fall back to "1800.00 XYZ".
func formatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}

	factor := decimal.New(1, int32(cur.Fraction))
	minor := amount.Mul(factor).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

func formatMoneyFloat(amount float64, currency string) string {
	return formatMoney(decimal.NewFromFloat(amount), currency)
}

func formatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

func formatQuantity(q float64) string {
	return decimal.NewFromFloat(q).StringFixed(2)
}

// signClass picks the CSS class for a profit or loss figure.
func signClass(d decimal.Decimal) string {
	switch d.Sign() {
	case 1:
		return "gain"
	case -1:
		return "loss"
	default:
		return ""
	}
}
