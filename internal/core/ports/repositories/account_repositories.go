package repositories

import (
	"context"

	"github.com/mcbank/mc_bank_app/internal/core/domain"
)

// AccountReader defines read operations for the persisted accounts snapshot
type AccountReader interface {
	// LoadAccounts retrieves the full accounts collection in insertion order.
	// Missing or unparseable stored data yields an empty collection, never an
	// error: corruption is absorbed at this boundary.
	LoadAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for the persisted accounts snapshot
type AccountWriter interface {
	// ReplaceAccounts overwrites the persisted accounts collection with the
	// given one. There is no partial or merge write.
	ReplaceAccounts(ctx context.Context, accounts []domain.Account) error
}

// AccountRepository combines all account snapshot operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
