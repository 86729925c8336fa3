package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/holdings-api/internal/auth"
	"github.com/redmonkez12/holdings-api/internal/portfolio"
	"github.com/redmonkez12/holdings-api/internal/user"
)

type stubHoldings struct {
	holdings *portfolio.Holdings
	err      error
}

func (s stubHoldings) DemoHoldings(ctx context.Context) (*portfolio.Holdings, error) {
	return s.holdings, s.err
}

func demoHoldings() *portfolio.Holdings {
	account := &portfolio.Account{ID: 1, Name: "E*TRADE Individual", Broker: "ETRADE", Type: "TAXABLE", Currency: "USD"}
	return &portfolio.Holdings{
		User: &user.User{ID: 1, Email: "demo@example.com"},
		Positions: []portfolio.Position{
			{ID: 1, Symbol: "AAPL", Name: "Apple Inc", Quantity: 10, AverageCost: 150, MarketPrice: 180, MarketValue: 1800, Account: account},
			{ID: 2, Symbol: "TSLA", Name: "Tesla Inc", Quantity: 3, AverageCost: 200, MarketPrice: 220, MarketValue: 660, Account: account},
			{ID: 3, Symbol: "VOO", Name: "Vanguard S&P 500 ETF", Quantity: 5, AverageCost: 400, MarketPrice: 430, MarketValue: 2150, Account: account},
		},
		TotalValue: 4610,
	}
}

func newTestHandler(t *testing.T, source HoldingsSource) *Handler {
	t.Helper()
	renderer, err := NewRenderer()
	require.NoError(t, err)
	return NewHandler(renderer, source, "demo@example.com", false)
}

func TestLoginPage(t *testing.T) {
	h := newTestHandler(t, stubHoldings{})
	rec := httptest.NewRecorder()

	h.LoginPage(rec, httptest.NewRequest(http.MethodGet, LoginPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, `id="login-form"`)
	assert.Contains(t, body, `value="demo@example.com"`)
	assert.Contains(t, body, `data-redirect="/holdings"`)
	assert.Contains(t, body, `/static/login.js`)
}

func TestHoldingsPage(t *testing.T) {
	h := newTestHandler(t, stubHoldings{holdings: demoHoldings()})
	req := httptest.NewRequest(http.MethodGet, HoldingsPath, nil)
	req = req.WithContext(auth.WithClaims(req.Context(), &auth.TokenClaims{UserID: 7, Email: "viewer@example.com"}))
	rec := httptest.NewRecorder()

	h.HoldingsPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "viewer@example.com")
	assert.Contains(t, body, "demo@example.com")
	assert.Contains(t, body, "$4,610.00")
	assert.Contains(t, body, "$4,100.00")
	assert.Contains(t, body, "$510.00 (12.44%)")
	assert.Contains(t, body, "$1,800.00")
	assert.Contains(t, body, "$300.00")
	assert.Contains(t, body, "20.00%")
	assert.Contains(t, body, "39.05%")
	assert.Contains(t, body, "46.64%")
	assert.Contains(t, body, "14.32%")
	assert.Contains(t, body, "ETRADE · E*TRADE Individual")
	assert.Contains(t, body, "Vanguard S&amp;P 500 ETF")
}

func TestHoldingsPage_NotSeeded(t *testing.T) {
	h := newTestHandler(t, stubHoldings{err: portfolio.ErrDemoUserNotFound})
	rec := httptest.NewRecorder()

	h.HoldingsPage(rec, httptest.NewRequest(http.MethodGet, HoldingsPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Did you run the seed?")
}

func TestHoldingsPage_Failure(t *testing.T) {
	h := newTestHandler(t, stubHoldings{err: errors.New("connection reset by peer")})
	rec := httptest.NewRecorder()

	h.HoldingsPage(rec, httptest.NewRequest(http.MethodGet, HoldingsPath, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load holdings")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestLogout(t *testing.T) {
	h := newTestHandler(t, stubHoldings{})
	rec := httptest.NewRecorder()

	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.AuthCookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestStaticHandler(t *testing.T) {
	rec := httptest.NewRecorder()

	StaticHandler("/static/").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/login.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/auth/login")
}
