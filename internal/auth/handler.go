package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/redmonkez12/holdings-api/internal/httputil"
	"github.com/redmonkez12/holdings-api/internal/logging"
	"github.com/redmonkez12/holdings-api/internal/user"
)

// RateLimiter throttles requests per client IP and purpose.
type RateLimiter interface {
	CheckIPRateLimitWithPurpose(ctx context.Context, ip, purpose string) (bool, error)
	RecordIPRequestWithPurpose(ctx context.Context, ip, purpose string) error
}

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service      *Service
	rateLimiter  RateLimiter
	isProduction bool
}

func NewHandler(service *Service, rateLimiter RateLimiter, isProduction bool) *Handler {
	return &Handler{
		service:      service,
		rateLimiter:  rateLimiter,
		isProduction: isProduction,
	}
}

// CredentialsRequest is the register and login request body
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	OK   bool         `json:"ok"`
	User UserResponse `json:"user"`
}

// MeResponse carries the identity embedded in the token
type MeResponse struct {
	OK   bool        `json:"ok"`
	User TokenClaims `json:"user"`
}

// OKResponse is a bare success envelope
type OKResponse struct {
	OK bool `json:"ok"`
}

// Register handles user registration
// @Summary      Register a new user
// @Description  Create a new user account with email and password (6-100 characters).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "Registration credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} httputil.ErrorResponse "Invalid input"
// @Failure      409 {object} httputil.ErrorResponse "User already exists"
// @Failure      429 {object} httputil.ErrorResponse "Too many requests"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	if h.rateLimited(w, r, "register") {
		return
	}

	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	newUser, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			logger.Warn("registration failed: validation error", "error", err.Error())
			httputil.RespondValidationError(w, verr.Issues)
			return
		}
		if errors.Is(err, user.ErrDuplicateEmail) {
			logger.Warn("registration failed: email already exists")
			httputil.RespondErrorWithCode(w, "User already exists", httputil.CodeUserAlreadyExists, http.StatusConflict)
			return
		}
		logger.Error("registration failed: internal error", "error", err.Error())
		httputil.RespondInternalError(w, "Internal server error")
		return
	}

	logger.Info("user registered successfully", "user_id", newUser.ID)

	httputil.RespondJSON(w, AuthResponse{
		OK:   true,
		User: UserResponse{ID: newUser.ID, Email: newUser.Email},
	}, http.StatusOK)
}

// Login handles user login
// @Summary      User login
// @Description  Authenticate and receive the auth_token HttpOnly cookie (valid 7 days)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "Login credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} httputil.ErrorResponse "Invalid input"
// @Failure      401 {object} httputil.ErrorResponse "Invalid email or password"
// @Failure      429 {object} httputil.ErrorResponse "Too many requests"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	if h.rateLimited(w, r, "login") {
		return
	}

	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			logger.Warn("login failed: validation error", "error", err.Error())
			httputil.RespondValidationError(w, verr.Issues)
			return
		}
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn("login failed: invalid credentials")
			httputil.RespondErrorWithCode(w, "Invalid email or password", httputil.CodeInvalidCredentials, http.StatusUnauthorized)
			return
		}
		logger.Error("login failed: internal error", "error", err.Error())
		httputil.RespondInternalError(w, "Internal server error")
		return
	}

	logger.Info("user logged in successfully", "user_id", result.User.ID)

	SetAuthCookie(w, result.Token, h.isProduction)
	httputil.RespondJSON(w, AuthResponse{
		OK:   true,
		User: UserResponse{ID: result.User.ID, Email: result.User.Email},
	}, http.StatusOK)
}

// Me returns the identity stored in the caller's token. It is the payload
// from login time, not a fresh database read.
// @Summary      Current user
// @Description  Return {userId, email} from the auth_token cookie
// @Tags         auth
// @Produce      json
// @Success      200 {object} MeResponse
// @Failure      401 {object} httputil.ErrorResponse "No cookie, or invalid or expired token"
// @Router       /auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		logging.GetLoggerFromContext(r.Context()).Error("me called without auth middleware")
		httputil.RespondInternalError(w, "Internal server error")
		return
	}

	httputil.RespondJSON(w, MeResponse{OK: true, User: *claims}, http.StatusOK)
}

// Logout clears the auth cookie. The token itself remains valid until it
// expires.
// @Summary      User logout
// @Description  Clear the auth_token cookie
// @Tags         auth
// @Produce      json
// @Success      200 {object} OKResponse
// @Router       /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ClearAuthCookie(w, h.isProduction)

	logging.GetLoggerFromContext(r.Context()).Info("auth cookie cleared")

	httputil.RespondJSON(w, OKResponse{OK: true}, http.StatusOK)
}

// rateLimited records the request and writes a 429 when the client IP is over
// its budget. Limiter failures are logged and let the request through.
func (h *Handler) rateLimited(w http.ResponseWriter, r *http.Request, purpose string) bool {
	if h.rateLimiter == nil {
		return false
	}

	logger := logging.GetLoggerFromContext(r.Context())
	ip := getClientIP(r)

	exceeded, err := h.rateLimiter.CheckIPRateLimitWithPurpose(r.Context(), ip, purpose)
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
	} else if exceeded {
		logger.Warn("IP rate limit exceeded", "ip", ip, "purpose", purpose)
		httputil.RespondErrorWithCode(w, "Too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return true
	}

	if err := h.rateLimiter.RecordIPRequestWithPurpose(r.Context(), ip, purpose); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}
	return false
}

// decodeCredentials parses the JSON body. A body that is not a JSON object is
// reported like any other invalid input.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (CredentialsRequest, bool) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logging.GetLoggerFromContext(r.Context()).Warn("invalid request body", "error", err.Error())
		httputil.RespondValidationError(w, []httputil.FieldIssue{{Field: "body", Message: "must be a JSON object"}})
		return req, false
	}
	return req, true
}

// getClientIP extracts the client IP address from the request.
// chi's RealIP middleware has already applied X-Forwarded-For / X-Real-IP.
func getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
