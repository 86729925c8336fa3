package portfolio

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/redmonkez12/holdings-api/internal/database"
	"github.com/redmonkez12/holdings-api/internal/user"
)

// SeedResult is what a reset wrote, with database-assigned IDs.
type SeedResult struct {
	User      *user.User
	Account   Account
	Positions []Position
	Snapshot  Snapshot
}

// Repository handles portfolio data persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// FindUserByEmail returns user.ErrNotFound when no such user exists.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return user.NewRepository(r.db).GetByEmail(ctx, email)
}

// ListPositions returns the user's positions with their accounts, ordered by
// symbol.
func (r *Repository) ListPositions(ctx context.Context, userID int64) ([]Position, error) {
	var rows []database.Position
	err := r.db.NewSelect().
		Model(&rows).
		Relation("Account").
		Where("p.user_id = ?", userID).
		OrderExpr("p.symbol ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	positions := make([]Position, 0, len(rows))
	for i := range rows {
		positions = append(positions, mapDBPositionToModel(&rows[i]))
	}
	return positions, nil
}

// Reset wipes all portfolio and user data and writes set in its place. Both
// happen in one transaction, so a failure leaves the previous data intact.
func (r *Repository) Reset(ctx context.Context, set SeedSet) (*SeedResult, error) {
	var result *SeedResult

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, model := range []any{
			(*database.Position)(nil),
			(*database.Account)(nil),
			(*database.PortfolioSnapshot)(nil),
		} {
			if _, err := tx.NewDelete().Model(model).Where("TRUE").Exec(ctx); err != nil {
				return fmt.Errorf("failed to clear %T: %w", model, err)
			}
		}

		users := user.NewRepository(tx)
		if err := users.DeleteAll(ctx); err != nil {
			return err
		}

		owner, err := users.Create(ctx, set.User.Email, set.User.PasswordHash)
		if err != nil {
			return fmt.Errorf("failed to create demo user: %w", err)
		}

		account := &database.Account{
			UserID:            owner.ID,
			Name:              set.Account.Name,
			Broker:            set.Account.Broker,
			ExternalAccountID: set.Account.ExternalAccountID,
			Type:              set.Account.Type,
			Currency:          set.Account.Currency,
		}
		if _, err := tx.NewInsert().Model(account).Returning("*").Exec(ctx); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		rows := make([]database.Position, 0, len(set.Positions))
		for _, p := range set.Positions {
			rows = append(rows, database.Position{
				UserID:      owner.ID,
				AccountID:   account.ID,
				Symbol:      p.Symbol,
				Name:        p.Name,
				AssetType:   p.AssetType,
				Quantity:    p.Quantity,
				AverageCost: p.AverageCost,
				MarketPrice: p.MarketPrice,
				MarketValue: p.MarketValue,
			})
		}
		if len(rows) > 0 {
			if _, err := tx.NewInsert().Model(&rows).Returning("*").Exec(ctx); err != nil {
				return fmt.Errorf("failed to create positions: %w", err)
			}
		}

		snapshot := &database.PortfolioSnapshot{
			UserID:     owner.ID,
			TotalValue: set.Snapshot.TotalValue,
		}
		if _, err := tx.NewInsert().Model(snapshot).Returning("*").Exec(ctx); err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}

		result = &SeedResult{
			User:     owner,
			Account:  *mapDBAccountToModel(account),
			Snapshot: mapDBSnapshotToModel(snapshot),
		}
		for i := range rows {
			result.Positions = append(result.Positions, mapDBPositionToModel(&rows[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func mapDBAccountToModel(a *database.Account) *Account {
	return &Account{
		ID:                a.ID,
		UserID:            a.UserID,
		Name:              a.Name,
		Broker:            a.Broker,
		ExternalAccountID: a.ExternalAccountID,
		Type:              a.Type,
		Currency:          a.Currency,
		CreatedAt:         a.CreatedAt,
	}
}

func mapDBPositionToModel(p *database.Position) Position {
	position := Position{
		ID:          p.ID,
		UserID:      p.UserID,
		AccountID:   p.AccountID,
		Symbol:      p.Symbol,
		Name:        p.Name,
		AssetType:   p.AssetType,
		Quantity:    p.Quantity,
		AverageCost: p.AverageCost,
		MarketPrice: p.MarketPrice,
		MarketValue: p.MarketValue,
		CreatedAt:   p.CreatedAt,
	}
	if p.Account != nil {
		position.Account = mapDBAccountToModel(p.Account)
	}
	return position
}

func mapDBSnapshotToModel(s *database.PortfolioSnapshot) Snapshot {
	return Snapshot{
		ID:         s.ID,
		UserID:     s.UserID,
		TotalValue: s.TotalValue,
		CreatedAt:  s.CreatedAt,
	}
}
