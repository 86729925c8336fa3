package portfolio

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/redmonkez12/holdings-api/internal/user"
)

var ErrDemoUserNotFound = errors.New("demo user not found")

// Store is the persistence the portfolio service needs.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*user.User, error)
	ListPositions(ctx context.Context, userID int64) ([]Position, error)
	Reset(ctx context.Context, set SeedSet) (*SeedResult, error)
}

// PasswordHasher hashes the demo user's password at seed time.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Service serves the demo user's holdings and resets demo data.
type Service struct {
	store        Store
	hasher       PasswordHasher
	demoEmail    string
	demoPassword string
}

func NewService(store Store, hasher PasswordHasher, demoEmail, demoPassword string) *Service {
	return &Service{
		store:        store,
		hasher:       hasher,
		demoEmail:    demoEmail,
		demoPassword: demoPassword,
	}
}

// Holdings is the demo user's positions and their total stored market value.
type Holdings struct {
	User       *user.User
	Positions  []Position
	TotalValue float64
}

// DemoHoldings loads the demo user's positions sorted by symbol.
func (s *Service) DemoHoldings(ctx context.Context) (*Holdings, error) {
	owner, err := s.store.FindUserByEmail(ctx, s.demoEmail)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrDemoUserNotFound
		}
		return nil, fmt.Errorf("failed to find demo user: %w", err)
	}

	positions, err := s.store.ListPositions(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load positions: %w", err)
	}

	slices.SortStableFunc(positions, func(a, b Position) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})

	return &Holdings{
		User:       owner,
		Positions:  positions,
		TotalValue: TotalMarketValue(positions),
	}, nil
}

// Seed destroys all users and portfolio data and writes the demo set.
func (s *Service) Seed(ctx context.Context) (*SeedResult, error) {
	passwordHash, err := s.hasher.Hash(s.demoPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	result, err := s.store.Reset(ctx, demoSeed(s.demoEmail, passwordHash))
	if err != nil {
		return nil, fmt.Errorf("failed to reset demo data: %w", err)
	}
	return result, nil
}
