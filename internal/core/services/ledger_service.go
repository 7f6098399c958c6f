package services

import (
	"context"
	"log/slog"

	portssvc "github.com/mcbank/mc_bank_app/internal/core/ports/services"
)

// LedgerService coordinates operations that span both stores. Account
// deletion cascades to transactions through this one code path, so "no
// orphaned transactions" does not depend on caller discipline.
type LedgerService struct {
	BaseService
	accounts     portssvc.AccountWriterSvc
	transactions portssvc.TransactionWriterSvc
}

// NewLedgerService creates the cross-store orchestrator.
func NewLedgerService(accounts portssvc.AccountWriterSvc, transactions portssvc.TransactionWriterSvc) *LedgerService {
	return &LedgerService{
		accounts:     accounts,
		transactions: transactions,
	}
}

// Ensure LedgerService implements the service interface
var _ portssvc.LedgerSvc = (*LedgerService)(nil)

// DeleteAccountCascade removes the account and every transaction referencing
// it as one logical operation. Both halves are idempotent, so re-running the
// cascade for an already deleted account changes nothing.
func (s *LedgerService) DeleteAccountCascade(ctx context.Context, accountID string) error {
	if err := s.accounts.DeleteAccount(ctx, accountID); err != nil {
		return err
	}
	if err := s.transactions.DeleteTransactionsByAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Account removed but transaction cascade failed", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted with cascade", slog.String("account_id", accountID))
	return nil
}
