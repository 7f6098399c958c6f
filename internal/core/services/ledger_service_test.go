package services_test

import (
	"context"
	"slices"
	"testing"

	"github.com/mcbank/mc_bank_app/internal/core/domain"
	"github.com/mcbank/mc_bank_app/internal/core/services"
	"github.com/mcbank/mc_bank_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// In-memory repositories: enough persistence to drive both real stores
// through the cascade without a database.

type memAccountRepo struct {
	saved []domain.Account
}

func (r *memAccountRepo) LoadAccounts(ctx context.Context) ([]domain.Account, error) {
	return slices.Clone(r.saved), nil
}

func (r *memAccountRepo) ReplaceAccounts(ctx context.Context, accounts []domain.Account) error {
	r.saved = slices.Clone(accounts)
	return nil
}

type memTransactionRepo struct {
	saved []domain.Transaction
}

func (r *memTransactionRepo) LoadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return slices.Clone(r.saved), nil
}

func (r *memTransactionRepo) ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error {
	r.saved = slices.Clone(transactions)
	return nil
}

func newLedgerFixture(t *testing.T) (*services.AccountService, *services.TransactionService, *services.LedgerService) {
	t.Helper()
	ctx := context.Background()

	accounts, err := services.NewAccountService(ctx, &memAccountRepo{},
		services.WithAccountIDGenerator(seqIDGen("acc")))
	require.NoError(t, err)

	transactions, err := services.NewTransactionService(ctx, &memTransactionRepo{},
		services.WithTransactionIDGenerator(seqIDGen("txn")))
	require.NoError(t, err)

	return accounts, transactions, services.NewLedgerService(accounts, transactions)
}

func TestDeleteAccountCascade_RemovesAccountAndTransactions(t *testing.T) {
	ctx := context.Background()
	accounts, transactions, ledger := newLedgerFixture(t)

	alice, err := accounts.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Alice", Balance: decimal.NewFromInt(100)})
	require.NoError(t, err)
	bob, err := accounts.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Bob"})
	require.NoError(t, err)

	for _, req := range []dto.CreateTransactionRequest{
		{AccountID: alice.AccountID, Type: "deposit", Amount: decimal.NewFromInt(50)},
		{AccountID: alice.AccountID, Type: "withdraw", Amount: decimal.NewFromInt(-20)},
		{AccountID: bob.AccountID, Type: "deposit", Amount: decimal.NewFromInt(7)},
	} {
		_, err := transactions.CreateTransaction(ctx, req)
		require.NoError(t, err)
	}

	require.NoError(t, ledger.DeleteAccountCascade(ctx, alice.AccountID))

	// No orphaned transactions remain for the deleted account
	require.Empty(t, transactions.ListTransactionsByAccount(ctx, alice.AccountID))

	// Bob is untouched
	accs := accounts.ListAccounts(ctx)
	require.Len(t, accs, 1)
	require.Equal(t, bob.AccountID, accs[0].AccountID)
	require.Len(t, transactions.ListTransactions(ctx), 1)
}

func TestDeleteAccountCascade_Idempotent(t *testing.T) {
	ctx := context.Background()
	accounts, transactions, ledger := newLedgerFixture(t)

	acc, err := accounts.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Vault"})
	require.NoError(t, err)
	_, err = transactions.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID: acc.AccountID, Type: "deposit", Amount: decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	require.NoError(t, ledger.DeleteAccountCascade(ctx, acc.AccountID))
	require.NoError(t, ledger.DeleteAccountCascade(ctx, acc.AccountID))

	require.Empty(t, accounts.ListAccounts(ctx))
	require.Empty(t, transactions.ListTransactions(ctx))
}

func TestDeleteAccountCascade_UnknownAccountIsNoOp(t *testing.T) {
	ctx := context.Background()
	accounts, transactions, ledger := newLedgerFixture(t)

	acc, err := accounts.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Vault"})
	require.NoError(t, err)

	require.NoError(t, ledger.DeleteAccountCascade(ctx, "ghost"))
	require.Len(t, accounts.ListAccounts(ctx), 1)
	require.Equal(t, acc.AccountID, accounts.ListAccounts(ctx)[0].AccountID)
	require.Empty(t, transactions.ListTransactions(ctx))
}
