package repositories

import (
	"context"

	"github.com/mcbank/mc_bank_app/internal/core/domain"
)

// TransactionReader defines read operations for the persisted transactions snapshot
type TransactionReader interface {
	// LoadTransactions retrieves the full transactions collection in insertion
	// order. Missing or unparseable stored data yields an empty collection.
	LoadTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the persisted transactions snapshot
type TransactionWriter interface {
	// ReplaceTransactions overwrites the persisted transactions collection
	// with the given one.
	ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error
}

// TransactionRepository combines all transaction snapshot operations.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
