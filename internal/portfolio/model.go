package portfolio

import "time"

// Account is a brokerage account owned by a user.
type Account struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	Name              string    `json:"name"`
	Broker            string    `json:"broker"`
	ExternalAccountID string    `json:"externalAccountId"`
	Type              string    `json:"type"`
	Currency          string    `json:"currency"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Position is a holding within an account. MarketValue is the stored value;
// it may differ from Quantity*MarketPrice and is never recomputed.
type Position struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	AccountID   int64     `json:"accountId"`
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	AssetType   string    `json:"assetType"`
	Quantity    float64   `json:"quantity"`
	AverageCost float64   `json:"averageCost"`
	MarketPrice float64   `json:"marketPrice"`
	MarketValue float64   `json:"marketValue"`
	CreatedAt   time.Time `json:"createdAt"`

	Account *Account `json:"account,omitempty"`
}

// Snapshot is a point-in-time total portfolio value.
type Snapshot struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	TotalValue float64   `json:"totalValue"`
	CreatedAt  time.Time `json:"createdAt"`
}
