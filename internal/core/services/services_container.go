package services

import (
	"context"

	portsrepo "github.com/mcbank/mc_bank_app/internal/core/ports/repositories"
	portssvc "github.com/mcbank/mc_bank_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The two stores load their collections here, once,
// for the remainder of the process lifetime.
func NewServiceContainer(ctx context.Context, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	accountSvc, err := NewAccountService(ctx, repos.AccountRepo)
	if err != nil {
		return nil, err
	}
	transactionSvc, err := NewTransactionService(ctx, repos.TransactionRepo)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Account:     accountSvc,
		Transaction: transactionSvc,
		Ledger:      NewLedgerService(accountSvc, transactionSvc),
		Reporting:   NewReportingService(accountSvc, transactionSvc),
		Export:      NewExportService(accountSvc, transactionSvc),
	}, nil
}
