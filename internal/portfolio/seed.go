package portfolio

import "github.com/redmonkez12/holdings-api/internal/user"

// SeedSet is the full demo data set written by a reset. IDs are assigned by
// the repository.
type SeedSet struct {
	User      user.User
	Account   Account
	Positions []Position
	Snapshot  Snapshot
}

// demoSeed builds the fixed demo data for email with an already hashed password.
func demoSeed(email, passwordHash string) SeedSet {
	positions := []Position{
		demoPosition("AAPL", "Apple Inc", "STOCK", 10, 150, 180),
		demoPosition("VOO", "Vanguard S&P 500 ETF", "ETF", 5, 400, 430),
		demoPosition("TSLA", "Tesla Inc", "STOCK", 3, 200, 220),
	}

	return SeedSet{
		User: user.User{Email: email, PasswordHash: passwordHash},
		Account: Account{
			Name:              "E*TRADE Individual",
			Broker:            "ETRADE",
			ExternalAccountID: "demo-account-123",
			Type:              "TAXABLE",
			Currency:          "USD",
		},
		Positions: positions,
		Snapshot:  Snapshot{TotalValue: TotalMarketValue(positions)},
	}
}

func demoPosition(symbol, name, assetType string, quantity, averageCost, marketPrice float64) Position {
	return Position{
		Symbol:      symbol,
		Name:        name,
		AssetType:   assetType,
		Quantity:    quantity,
		AverageCost: averageCost,
		MarketPrice: marketPrice,
		MarketValue: quantity * marketPrice,
	}
}
