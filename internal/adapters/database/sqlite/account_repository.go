package sqlite

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mcbank/mc_bank_app/internal/core/domain"
	portsrepo "github.com/mcbank/mc_bank_app/internal/core/ports/repositories"
	"github.com/mcbank/mc_bank_app/internal/middleware"
	"github.com/mcbank/mc_bank_app/internal/models"
	"github.com/mcbank/mc_bank_app/internal/utils/mapping"
)

// SQLiteAccountRepository persists the accounts collection as one JSON
// snapshot blob.
type SQLiteAccountRepository struct {
	store *Store
}

// NewSQLiteAccountRepository creates a new repository for account snapshots.
func NewSQLiteAccountRepository(store *Store) portsrepo.AccountRepository {
	return &SQLiteAccountRepository{store: store}
}

// Ensure SQLiteAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*SQLiteAccountRepository)(nil)

// LoadAccounts returns the persisted accounts collection. Missing or corrupt
// snapshots are equivalent to an empty collection; the failure is logged and
// absorbed here, never surfaced to callers.
func (r *SQLiteAccountRepository) LoadAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	data, err := r.store.getBlob(ctx, accountsKey)
	if err != nil {
		logger.Warn("Failed to read accounts snapshot, treating as empty", slog.String("error", err.Error()))
		return []domain.Account{}, nil
	}
	if len(data) == 0 {
		return []domain.Account{}, nil
	}

	var rows []models.Account
	if err := json.Unmarshal(data, &rows); err != nil {
		logger.Warn("Corrupt accounts snapshot, treating as empty", slog.String("error", err.Error()))
		return []domain.Account{}, nil
	}
	return mapping.ToDomainAccounts(rows), nil
}

// ReplaceAccounts overwrites the persisted accounts collection.
func (r *SQLiteAccountRepository) ReplaceAccounts(ctx context.Context, accounts []domain.Account) error {
	data, err := json.Marshal(mapping.ToModelAccounts(accounts))
	if err != nil {
		return err
	}
	return r.store.putBlob(ctx, accountsKey, data)
}
