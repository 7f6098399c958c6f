package services

import (
	"context"
	"log/slog"

	"github.com/mcbank/mc_bank_app/internal/core/domain"
	portssvc "github.com/mcbank/mc_bank_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService derives aggregates from the current snapshots. It holds no
// state: every call reads fresh snapshots from the stores and runs the pure
// computations below.
type reportingService struct {
	BaseService
	accounts     portssvc.AccountReaderSvc
	transactions portssvc.TransactionReaderSvc
}

// NewReportingService creates a new reporting service over the two stores.
func NewReportingService(accounts portssvc.AccountReaderSvc, transactions portssvc.TransactionReaderSvc) portssvc.ReportingSvc {
	return &reportingService{
		accounts:     accounts,
		transactions: transactions,
	}
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// Summary computes the bank-wide aggregates over the current snapshots.
func (s *reportingService) Summary(ctx context.Context) domain.Summary {
	summary := Summarize(s.accounts.ListAccounts(ctx), s.transactions.ListTransactions(ctx))
	s.LogDebug(ctx, "Summary computed",
		slog.Int("accounts", summary.AccountCount),
		slog.Int("transactions", summary.TransactionCount))
	return summary
}

// AccountActivity computes per-account balance and transaction-count rows.
func (s *reportingService) AccountActivity(ctx context.Context) []domain.AccountActivityRow {
	return AccountActivity(s.accounts.ListAccounts(ctx), s.transactions.ListTransactions(ctx))
}

// Summarize is the pure aggregate computation over a snapshot pair. It is
// order-invariant: permuting either input changes nothing in the result.
//
// TotalBalance sums the stored account balances only; transaction history
// never feeds into it. Transfer transactions count toward TransactionCount
// but toward neither deposit nor withdrawal totals.
func Summarize(accounts []domain.Account, transactions []domain.Transaction) domain.Summary {
	totalBalance := decimal.Zero
	for _, acc := range accounts {
		totalBalance = totalBalance.Add(acc.Balance)
	}

	totalDeposits := decimal.Zero
	totalWithdrawals := decimal.Zero
	for _, txn := range transactions {
		switch txn.Type {
		case domain.Deposit:
			totalDeposits = totalDeposits.Add(txn.Amount)
		case domain.Withdraw:
			totalWithdrawals = totalWithdrawals.Add(txn.Amount)
		}
	}

	return domain.Summary{
		TotalBalance:     totalBalance,
		TotalDeposits:    totalDeposits,
		TotalWithdrawals: totalWithdrawals,
		AccountCount:     len(accounts),
		TransactionCount: len(transactions),
	}
}

// AccountActivity computes one row per account in account insertion order.
// Counting is a per-account scan of the transactions snapshot; fine at this
// scale, the collections are small.
func AccountActivity(accounts []domain.Account, transactions []domain.Transaction) []domain.AccountActivityRow {
	rows := make([]domain.AccountActivityRow, len(accounts))
	for i, acc := range accounts {
		count := 0
		for _, txn := range transactions {
			if txn.AccountID == acc.AccountID {
				count++
			}
		}
		rows[i] = domain.AccountActivityRow{
			AccountID:        acc.AccountID,
			Name:             acc.Name,
			Balance:          acc.Balance,
			TransactionCount: count,
		}
	}
	return rows
}
