package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/redmonkez12/holdings-api/internal/portfolio"
)

// RenderHoldings formats the portfolio as a table followed by its totals.
func RenderHoldings(h *portfolio.Holdings) string {
	rows := make([][]string, 0, len(h.Positions))
	plSigns := make([]int, 0, len(h.Positions))
	for _, p := range h.Positions {
		m := portfolio.ComputeMetrics(p, h.TotalValue)
		account := ""
		if p.Account != nil {
			account = p.Account.Broker + " · " + p.Account.Name
		}
		rows = append(rows, []string{
			p.Symbol,
			p.Name,
			account,
			decimal.NewFromFloat(p.Quantity).StringFixed(2),
			decimal.NewFromFloat(p.AverageCost).StringFixed(2),
			decimal.NewFromFloat(p.MarketValue).StringFixed(2),
			m.ProfitLoss.StringFixed(2),
			m.ProfitLossPct.StringFixed(2) + "%",
			m.AllocationPct.StringFixed(2) + "%",
		})
		plSigns = append(plSigns, m.ProfitLoss.Sign())
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SYMBOL", "NAME", "ACCOUNT", "QTY", "AVG COST", "VALUE", "P/L", "P/L %", "ALLOC").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if (col == 6 || col == 7) && row >= 0 && row < len(plSigns) {
				switch plSigns[row] {
				case 1:
					return cellStyle.Foreground(gainStyle.GetForeground())
				case -1:
					return cellStyle.Foreground(lossStyle.GetForeground())
				}
			}
			return cellStyle
		})

	summary := portfolio.Summarize(h.Positions)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Portfolio of " + h.User.Email))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total value: %s\n", summary.TotalValue.StringFixed(2))
	fmt.Fprintf(&b, "Cost basis:  %s\n", summary.TotalCost.StringFixed(2))
	fmt.Fprintf(&b, "P/L:         %s (%s%%)\n", summary.ProfitLoss.StringFixed(2), summary.ProfitLossPct.StringFixed(2))
	return b.String()
}

// PrintSeedResult prints what a reset created.
func PrintSeedResult(r *portfolio.SeedResult) {
	fmt.Println(successStyle.Render("Demo data reset"))
	fmt.Printf("  User:      %s (id %d)\n", r.User.Email, r.User.ID)
	fmt.Printf("  Account:   %s (%s)\n", r.Account.Name, r.Account.Broker)
	fmt.Printf("  Positions: %d\n", len(r.Positions))
	fmt.Printf("  Snapshot:  %s\n", decimal.NewFromFloat(r.Snapshot.TotalValue).StringFixed(2))
	fmt.Println()
}

// PrintSuccess prints a one-line success message.
func PrintSuccess(msg string) {
	fmt.Println(successStyle.Render(msg))
}

// PrintNote prints a dimmed hint.
func PrintNote(msg string) {
	fmt.Println(subtleStyle.Render(msg))
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Println(errorStyle.Render("Error: " + msg))
}
