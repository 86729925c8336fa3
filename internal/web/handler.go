package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/redmonkez12/holdings-api/internal/auth"
	"github.com/redmonkez12/holdings-api/internal/logging"
	"github.com/redmonkez12/holdings-api/internal/portfolio"
)

const (
	LoginPath    = "/login"
	HoldingsPath = "/holdings"
)

// HoldingsSource loads the portfolio shown on the holdings page.
type HoldingsSource interface {
	DemoHoldings(ctx context.Context) (*portfolio.Holdings, error)
}

// Handler serves the browser pages
type Handler struct {
	renderer      *Renderer
	holdings      HoldingsSource
	demoEmail     string
	secureCookies bool
}

func NewHandler(renderer *Renderer, holdings HoldingsSource, demoEmail string, secureCookies bool) *Handler {
	return &Handler{
		renderer:      renderer,
		holdings:      holdings,
		demoEmail:     demoEmail,
		secureCookies: secureCookies,
	}
}

type loginView struct {
	Title    string
	Email    string
	Redirect string
}

// LoginPage renders the login form. The form posts to /auth/login from the
// browser and follows up with a redirect to the holdings page.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", loginView{
		Title:    "Log in",
		Email:    h.demoEmail,
		Redirect: HoldingsPath,
	}, http.StatusOK)
}

// HoldingsPage renders the demo portfolio with P/L and allocation. It must be
// mounted behind auth.Middleware.RedirectUnauthenticated.
func (h *Handler) HoldingsPage(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	view := holdingsView{Title: "Holdings"}
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		view.Viewer = claims.Email
	}

	status := http.StatusOK
	holdings, err := h.holdings.DemoHoldings(r.Context())
	switch {
	case errors.Is(err, portfolio.ErrDemoUserNotFound):
		view.NotSeeded = true
	case err != nil:
		logger.Error("failed to load holdings page", "error", err.Error())
		view.Error = "Failed to load holdings"
		status = http.StatusInternalServerError
	default:
		view.fill(holdings)
	}

	h.render(w, r, "holdings.html", view, status)
}

// Logout clears the auth cookie and returns the browser to the login page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearAuthCookie(w, h.secureCookies)
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any, status int) {
	if err := h.renderer.Render(w, name, data, status); err != nil {
		logging.GetLoggerFromContext(r.Context()).Error("failed to render page", "template", name, "error", err.Error())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
