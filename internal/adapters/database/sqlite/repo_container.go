package sqlite

import (
	portsrepo "github.com/mcbank/mc_bank_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the sqlite-backed repositories over one store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     NewSQLiteAccountRepository(store),
		TransactionRepo: NewSQLiteTransactionRepository(store),
	}
}
