package portfolio

import (
	"errors"
	"net/http"

	"github.com/redmonkez12/holdings-api/internal/httputil"
	"github.com/redmonkez12/holdings-api/internal/logging"
)

// Handler contains HTTP handlers for the demo portfolio endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UserSummary identifies the portfolio owner
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// AccountSummary is the account embedded in each holding
type AccountSummary struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Broker string `json:"broker"`
	Type   string `json:"type"`
}

// HoldingResponse is one position in the holdings response
type HoldingResponse struct {
	ID          int64           `json:"id"`
	Symbol      string          `json:"symbol"`
	Name        string          `json:"name"`
	AssetType   string          `json:"assetType"`
	Quantity    float64         `json:"quantity"`
	AverageCost float64         `json:"averageCost"`
	MarketPrice float64         `json:"marketPrice"`
	MarketValue float64         `json:"marketValue"`
	Account     *AccountSummary `json:"account"`
}

// HoldingsResponse is returned by GET /dev/holdings
type HoldingsResponse struct {
	OK         bool              `json:"ok"`
	User       UserSummary       `json:"user"`
	TotalValue float64           `json:"totalValue"`
	Positions  []HoldingResponse `json:"positions"`
}

// SeedResponse is returned by POST /dev/seed
type SeedResponse struct {
	OK             bool        `json:"ok"`
	User           UserSummary `json:"user"`
	Account        Account     `json:"account"`
	PositionsCount int         `json:"positionsCount"`
	Snapshot       Snapshot    `json:"snapshot"`
}

// Holdings returns the demo user's positions
// @Summary      Demo holdings
// @Description  Positions of the demo user sorted by symbol, with their account and total market value
// @Tags         dev
// @Produce      json
// @Success      200 {object} HoldingsResponse
// @Failure      404 {object} httputil.ErrorResponse "Demo user not found"
// @Failure      500 {object} httputil.ErrorResponse "Failed to load holdings"
// @Router       /dev/holdings [get]
func (h *Handler) Holdings(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	holdings, err := h.service.DemoHoldings(r.Context())
	if err != nil {
		if errors.Is(err, ErrDemoUserNotFound) {
			logger.Warn("holdings requested before seeding")
			httputil.RespondErrorWithCode(w, "Demo user not found. Run POST /dev/seed first.", httputil.CodeDemoUserNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to load holdings", "error", err.Error())
		httputil.RespondInternalError(w, "Failed to load holdings")
		return
	}

	httputil.RespondJSON(w, NewHoldingsResponse(holdings), http.StatusOK)
}

// Seed resets the database to the demo data set
// @Summary      Reset demo data
// @Description  Delete ALL users, accounts, positions and snapshots, then create the demo user with one account and three positions
// @Tags         dev
// @Produce      json
// @Success      200 {object} SeedResponse
// @Failure      500 {object} httputil.ErrorResponse "Seed failed"
// @Router       /dev/seed [post]
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	result, err := h.service.Seed(r.Context())
	if err != nil {
		logger.Error("seed failed", "error", err.Error())
		httputil.RespondInternalError(w, "Seed failed")
		return
	}

	logger.Info("demo data seeded",
		"user_id", result.User.ID,
		"positions", len(result.Positions),
		"total_value", result.Snapshot.TotalValue,
	)

	httputil.RespondJSON(w, SeedResponse{
		OK:             true,
		User:           UserSummary{ID: result.User.ID, Email: result.User.Email},
		Account:        result.Account,
		PositionsCount: len(result.Positions),
		Snapshot:       result.Snapshot,
	}, http.StatusOK)
}

func NewHoldingsResponse(h *Holdings) HoldingsResponse {
	resp := HoldingsResponse{
		OK:         true,
		User:       UserSummary{ID: h.User.ID, Email: h.User.Email},
		TotalValue: h.TotalValue,
		Positions:  make([]HoldingResponse, 0, len(h.Positions)),
	}

	for _, p := range h.Positions {
		holding := HoldingResponse{
			ID:          p.ID,
			Symbol:      p.Symbol,
			Name:        p.Name,
			AssetType:   p.AssetType,
			Quantity:    p.Quantity,
			AverageCost: p.AverageCost,
			MarketPrice: p.MarketPrice,
			MarketValue: p.MarketValue,
		}
		if p.Account != nil {
			holding.Account = &AccountSummary{
				ID:     p.Account.ID,
				Name:   p.Account.Name,
				Broker: p.Account.Broker,
				Type:   p.Account.Type,
			}
		}
		resp.Positions = append(resp.Positions, holding)
	}
	return resp
}
