package services

import (
	"context"

	"github.com/mcbank/mc_bank_app/internal/core/domain"
	"github.com/mcbank/mc_bank_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// ListTransactions retrieves the full transactions collection in
	// insertion order.
	ListTransactions(ctx context.Context) []domain.Transaction

	// ListTransactionsByAccount retrieves the transactions referencing the
	// given account id, in insertion order. Unknown ids yield an empty slice.
	ListTransactionsByAccount(ctx context.Context, accountID string) []domain.Transaction
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction appends a new transaction with a freshly generated id
	// and persists the collection. Fails with apperrors.ErrValidation when
	// the amount is zero or the type is unknown. The referenced account id is
	// not checked against the accounts collection.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes the transaction with the given id. Silent
	// no-op when no transaction matches.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// DeleteTransactionsByAccount removes every transaction referencing the
	// given account id, persisting once afterwards. This is the cascade
	// primitive used by account deletion.
	DeleteTransactionsByAccount(ctx context.Context, accountID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
// along with mutation notifications.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	StoreObserverSvc
}
