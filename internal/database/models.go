package database

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the users table row.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Account is a brokerage account owned by a user.
type Account struct {
	bun.BaseModel `bun:"table:accounts,alias:a"`

	ID                int64     `bun:"id,pk,autoincrement"`
	UserID            int64     `bun:"user_id,notnull"`
	Name              string    `bun:"name,notnull"`
	Broker            string    `bun:"broker,notnull"`
	ExternalAccountID string    `bun:"external_account_id,notnull"`
	Type              string    `bun:"type,notnull"`
	Currency          string    `bun:"currency,notnull"`
	CreatedAt         time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Position is a holding within an account. MarketValue is stored as written
// at seed time and is not derived from Quantity and MarketPrice.
type Position struct {
	bun.BaseModel `bun:"table:positions,alias:p"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UserID      int64     `bun:"user_id,notnull"`
	AccountID   int64     `bun:"account_id,notnull"`
	Symbol      string    `bun:"symbol,notnull"`
	Name        string    `bun:"name,notnull"`
	AssetType   string    `bun:"asset_type,notnull"`
	Quantity    float64   `bun:"quantity,notnull"`
	AverageCost float64   `bun:"average_cost,notnull"`
	MarketPrice float64   `bun:"market_price,notnull"`
	MarketValue float64   `bun:"market_value,notnull"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`

	Account *Account `bun:"rel:belongs-to,join:account_id=id"`
}

// PortfolioSnapshot is a point-in-time total value record.
type PortfolioSnapshot struct {
	bun.BaseModel `bun:"table:portfolio_snapshots,alias:ps"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     int64     `bun:"user_id,notnull"`
	TotalValue float64   `bun:"total_value,notnull"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
