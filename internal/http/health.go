package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/redmonkez12/holdings-api/internal/httputil"
	"github.com/redmonkez12/holdings-api/internal/logging"
)

const readinessTimeout = 2 * time.Second

// ReadinessCheck reports whether a dependency can serve requests.
type ReadinessCheck func(ctx context.Context) error

// HealthResponse is the liveness body
type HealthResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// ReadyResponse lists the result of each dependency check
type ReadyResponse struct {
	OK     bool              `json:"ok"`
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, HealthResponse{OK: true, Status: "api is running"}, http.StatusOK)
}

// readyHandler runs every check and answers 503 if any fails.
// @Summary      Readiness check
// @Description  Ping the database and, when configured, Redis
// @Tags         health
// @Produce      json
// @Success      200 {object} ReadyResponse
// @Failure      503 {object} ReadyResponse
// @Router       /ready [get]
func readyHandler(checks map[string]ReadinessCheck) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		logger := logging.GetLoggerFromContext(r.Context())

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		resp := ReadyResponse{OK: true, Status: "ready", Checks: make(map[string]string, len(names))}
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				logger.Warn("readiness check failed", "check", name, "error", err.Error())
				resp.Checks[name] = "unavailable"
				resp.OK = false
				continue
			}
			resp.Checks[name] = "ok"
		}

		status := http.StatusOK
		if !resp.OK {
			resp.Status = "not ready"
			status = http.StatusServiceUnavailable
		}
		httputil.RespondJSON(w, resp, status)
	}
}
