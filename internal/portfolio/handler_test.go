package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(store *memoryStore) *chi.Mux {
	handler := NewHandler(newTestService(store))

	r := chi.NewRouter()
	r.Get("/dev/holdings", handler.Holdings)
	r.Post("/dev/seed", handler.Seed)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func TestHoldingsHandler_BeforeSeed(t *testing.T) {
	router := newTestRouter(&memoryStore{})

	rec, body := doJSON(t, router, http.MethodGet, "/dev/holdings")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Demo user not found. Run POST /dev/seed first.", body["error"])
}

func TestSeedThenHoldings(t *testing.T) {
	router := newTestRouter(&memoryStore{})

	rec, seed := doJSON(t, router, http.MethodPost, "/dev/seed")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, seed["ok"])
	assert.EqualValues(t, 3, seed["positionsCount"])
	assert.Equal(t, "demo@example.com", seed["user"].(map[string]any)["email"])
	assert.Equal(t, "demo-account-123", seed["account"].(map[string]any)["externalAccountId"])
	assert.EqualValues(t, 4610, seed["snapshot"].(map[string]any)["totalValue"])
	assert.NotContains(t, rec.Body.String(), "hashed:")

	rec, holdings := doJSON(t, router, http.MethodGet, "/dev/holdings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, holdings["ok"])
	assert.EqualValues(t, 4610, holdings["totalValue"])

	positions := holdings["positions"].([]any)
	require.Len(t, positions, 3)
	first := positions[0].(map[string]any)
	assert.Equal(t, "AAPL", first["symbol"])
	assert.Equal(t, "Apple Inc", first["name"])
	assert.Equal(t, "STOCK", first["assetType"])
	assert.EqualValues(t, 10, first["quantity"])
	assert.EqualValues(t, 150, first["averageCost"])
	assert.EqualValues(t, 180, first["marketPrice"])
	assert.EqualValues(t, 1800, first["marketValue"])

	account := first["account"].(map[string]any)
	assert.Equal(t, "E*TRADE Individual", account["name"])
	assert.Equal(t, "ETRADE", account["broker"])
	assert.Equal(t, "TAXABLE", account["type"])
	assert.Contains(t, account, "id")
	assert.NotContains(t, account, "currency")
}

func TestHoldingsHandler_EmptyPositionsIsArray(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(store)
	_, _ = doJSON(t, router, http.MethodPost, "/dev/seed")
	store.positions = nil

	rec, body := doJSON(t, router, http.MethodGet, "/dev/holdings")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, body["positions"])
	assert.EqualValues(t, 0, body["totalValue"])
}

func TestHoldingsHandler_StoreFailure(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(store)
	_, _ = doJSON(t, router, http.MethodPost, "/dev/seed")
	store.listErr = errors.New("pq: relation \"positions\" does not exist")

	rec, body := doJSON(t, router, http.MethodGet, "/dev/holdings")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to load holdings", body["error"])
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestSeedHandler_Failure(t *testing.T) {
	router := newTestRouter(&memoryStore{resetErr: errors.New("deadlock detected")})

	rec, body := doJSON(t, router, http.MethodPost, "/dev/seed")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Seed failed", body["error"])
	assert.NotContains(t, rec.Body.String(), "deadlock")
}
