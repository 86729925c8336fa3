package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	_ "github.com/redmonkez12/holdings-api/docs" // Swagger docs
	"github.com/redmonkez12/holdings-api/internal/auth"
	"github.com/redmonkez12/holdings-api/internal/config"
	"github.com/redmonkez12/holdings-api/internal/database"
	httpServer "github.com/redmonkez12/holdings-api/internal/http"
	"github.com/redmonkez12/holdings-api/internal/logging"
	"github.com/redmonkez12/holdings-api/internal/portfolio"
	"github.com/redmonkez12/holdings-api/internal/ratelimit"
	"github.com/redmonkez12/holdings-api/internal/user"
	"github.com/redmonkez12/holdings-api/internal/web"
)

// @title           Holdings API
// @version         1.0
// @description     Personal-finance demo: cookie-authenticated users and a seeded brokerage portfolio.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth_token

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"token_format", cfg.Auth.TokenFormat,
		"password_hasher", cfg.Auth.PasswordHasher,
	)

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db.DB); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	readiness := map[string]httpServer.ReadinessCheck{
		"database": db.PingContext,
	}

	// Rate limiting is optional; without Redis the auth handlers skip it
	var rateLimiter auth.RateLimiter
	if cfg.Redis.Enabled() {
		redisClient, err := initRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis: %w", err)
		}
		defer redisClient.Close()

		limiter := ratelimit.NewLimiter(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
		rateLimiter = limiter
		readiness["redis"] = limiter.Ping
	} else {
		logger.Warn("REDIS_HOST not set, rate limiting disabled")
	}

	hasher, err := auth.NewHasher(cfg.Auth.PasswordHasher, cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	tokenService, err := auth.NewTokenService(cfg.Auth.TokenFormat, cfg.Auth.Secret)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	authService, err := auth.NewService(user.NewRepository(db), hasher, tokenService)
	if err != nil {
		return fmt.Errorf("failed to initialize auth service: %w", err)
	}

	portfolioService := portfolio.NewService(
		portfolio.NewRepository(db),
		hasher,
		cfg.Demo.Email,
		cfg.Demo.Password,
	)

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to initialize templates: %w", err)
	}

	isProduction := !cfg.Server.IsDevelopment()
	router := httpServer.NewRouter(cfg, httpServer.Handlers{
		Auth:           auth.NewHandler(authService, rateLimiter, isProduction),
		AuthMiddleware: auth.NewMiddleware(tokenService),
		Portfolio:      portfolio.NewHandler(portfolioService),
		Web:            web.NewHandler(renderer, portfolioService, cfg.Demo.Email, isProduction),
		Readiness:      readiness,
	}, logger)

	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received signal", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initRedis connects to Redis and verifies the connection
func initRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
