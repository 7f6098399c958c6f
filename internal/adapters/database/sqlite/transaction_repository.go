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

// SQLiteTransactionRepository persists the transactions collection as one
// JSON snapshot blob.
type SQLiteTransactionRepository struct {
	store *Store
}

// NewSQLiteTransactionRepository creates a new repository for transaction snapshots.
func NewSQLiteTransactionRepository(store *Store) portsrepo.TransactionRepository {
	return &SQLiteTransactionRepository{store: store}
}

// Ensure SQLiteTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*SQLiteTransactionRepository)(nil)

// LoadTransactions returns the persisted transactions collection. Missing or
// corrupt snapshots are equivalent to an empty collection.
func (r *SQLiteTransactionRepository) LoadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	data, err := r.store.getBlob(ctx, transactionsKey)
	if err != nil {
		logger.Warn("Failed to read transactions snapshot, treating as empty", slog.String("error", err.Error()))
		return []domain.Transaction{}, nil
	}
	if len(data) == 0 {
		return []domain.Transaction{}, nil
	}

	var rows []models.Transaction
	if err := json.Unmarshal(data, &rows); err != nil {
		logger.Warn("Corrupt transactions snapshot, treating as empty", slog.String("error", err.Error()))
		return []domain.Transaction{}, nil
	}
	return mapping.ToDomainTransactions(rows), nil
}

// ReplaceTransactions overwrites the persisted transactions collection.
func (r *SQLiteTransactionRepository) ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error {
	data, err := json.Marshal(mapping.ToModelTransactions(transactions))
	if err != nil {
		return err
	}
	return r.store.putBlob(ctx, transactionsKey, data)
}
