package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/redmonkez12/holdings-api/internal/auth"
	"github.com/redmonkez12/holdings-api/internal/config"
	"github.com/redmonkez12/holdings-api/internal/logging"
	"github.com/redmonkez12/holdings-api/internal/portfolio"
	"github.com/redmonkez12/holdings-api/internal/web"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth           *auth.Handler
	AuthMiddleware *auth.Middleware
	Portfolio      *portfolio.Handler
	Web            *web.Handler
	Readiness      map[string]ReadinessCheck
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, h Handlers, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	r.Use(SecurityHeaders)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Compress(5))

	r.Get("/health", handleHealth)
	r.Get("/ready", readyHandler(h.Readiness))

	// Production builds will not have this route at all
	if cfg.Server.IsDevelopment() {
		logger.Info("swagger UI enabled", "path", "/swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.With(h.AuthMiddleware.RequireAuth).Get("/me", h.Auth.Me)
	})

	// Unauthenticated and destructive: never mount outside development
	if cfg.Server.DevRoutesEnabled {
		logger.Warn("dev routes enabled", "paths", []string{"/dev/holdings", "/dev/seed"})
		r.Route("/dev", func(r chi.Router) {
			r.Get("/holdings", h.Portfolio.Holdings)
			r.Post("/seed", h.Portfolio.Seed)
		})
	}

	r.Handle("/static/*", web.StaticHandler("/static/"))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, web.HoldingsPath, http.StatusFound)
	})
	r.Get(web.LoginPath, h.Web.LoginPage)
	r.Post("/logout", h.Web.Logout)
	r.With(h.AuthMiddleware.RedirectUnauthenticated(web.LoginPath)).Get(web.HoldingsPath, h.Web.HoldingsPage)

	return r
}
