package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/redmonkez12/holdings-api/internal/user"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// timingPassword is hashed once at startup; Login verifies against it when
// the email is unknown so both failure paths cost one hash verification.
const timingPassword = "timing-parity-placeholder"

// UserStore is the slice of user persistence the auth flow needs.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// Service handles authentication business logic
type Service struct {
	users     UserStore
	hasher    Hasher
	tokens    TokenService
	dummyHash string
}

func NewService(users UserStore, hasher Hasher, tokens TokenService) (*Service, error) {
	dummyHash, err := hasher.Hash(timingPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &Service{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummyHash,
	}, nil
}

// LoginResult is a successful login: the user and a freshly issued token.
type LoginResult struct {
	User  *user.User
	Token string
}

// Register validates the credentials and creates a new user.
// Returns *ValidationError or user.ErrDuplicateEmail for caller mistakes.
func (s *Service) Register(ctx context.Context, email, password string) (*user.User, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, user.ErrDuplicateEmail
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The unique index still guards against a concurrent registration.
	newUser, err := s.users.Create(ctx, email, passwordHash)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, user.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// Login authenticates a user and issues a token. Unknown email and wrong
// password both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	existingUser, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			_, _ = s.hasher.Verify(password, s.dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	ok, err := s.hasher.Verify(password, existingUser.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(existingUser.ID, existingUser.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{User: existingUser, Token: token}, nil
}
