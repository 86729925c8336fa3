package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/redmonkez12/holdings-api/internal/httputil"
	"github.com/redmonkez12/holdings-api/internal/logging"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const ClaimsContextKey ContextKey = "auth_claims"

// unauthorizedResponse is the 401 body for cookie-authenticated routes.
type unauthorizedResponse struct {
	OK    bool    `json:"ok"`
	User  *string `json:"user"` // always null
	Error string  `json:"error"`
	Code  string  `json:"code"`
}

// Middleware handles authentication for protected routes
type Middleware struct {
	tokenService TokenService
}

func NewMiddleware(tokenService TokenService) *Middleware {
	return &Middleware{tokenService: tokenService}
}

// Authenticate reads the auth cookie and verifies its token.
func (m *Middleware) Authenticate(r *http.Request) (*TokenClaims, error) {
	token, err := TokenFromCookie(r)
	if err != nil {
		return nil, err
	}
	return m.tokenService.VerifyToken(token)
}

// RequireAuth rejects requests without a valid auth cookie. A missing cookie
// and a bad token get different messages.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.GetLoggerFromContext(r.Context())

		claims, err := m.Authenticate(r)
		if err != nil {
			if errors.Is(err, ErrNoCookie) {
				httputil.RespondJSON(w, unauthorizedResponse{
					Error: "Not authenticated (no cookie)",
					Code:  httputil.CodeMissingAuth,
				}, http.StatusUnauthorized)
				return
			}
			logger.Warn("token verification failed", "error", err.Error())
			httputil.RespondJSON(w, unauthorizedResponse{
				Error: "Invalid or expired token",
				Code:  httputil.CodeInvalidToken,
			}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RedirectUnauthenticated sends browsers without a valid token to loginPath.
func (m *Middleware) RedirectUnauthenticated(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := m.Authenticate(r)
			if err != nil {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, claims *TokenClaims) context.Context {
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

// ClaimsFromContext returns the claims stored by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*TokenClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*TokenClaims)
	return claims, ok && claims != nil
}
