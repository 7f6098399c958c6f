package services

import (
	"context"

	"github.com/mcbank/mc_bank_app/internal/core/domain"
	"github.com/mcbank/mc_bank_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	// Returns apperrors.ErrNotFound when no account matches.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the full accounts collection in insertion order.
	ListAccounts(ctx context.Context) []domain.Account
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount appends a new account with a freshly generated id and
	// persists the collection. Fails with apperrors.ErrValidation when the
	// name is blank after trimming.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount replaces the stored account whose id matches the given
	// one. Silent no-op when no account matches.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes the account with the given id. Silent no-op when
	// no account matches; it never touches transactions (see LedgerSvc for
	// the cascade).
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces along with
// mutation notifications.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	StoreObserverSvc
}
