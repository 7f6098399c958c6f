package services

import "context"

// LedgerSvc coordinates operations spanning both stores. It owns the
// "no orphaned transactions" invariant: account deletion and the transaction
// cascade happen through this single code path.
type LedgerSvc interface {
	// DeleteAccountCascade removes the account with the given id and every
	// transaction referencing it, as one logical operation. It is idempotent:
	// an unknown id is a silent no-op.
	DeleteAccountCascade(ctx context.Context, accountID string) error
}
