package domain

import "github.com/shopspring/decimal"

// Summary holds the aggregates derived from the current account and
// transaction snapshots. It is computed on demand and never persisted.
type Summary struct {
	TotalBalance     decimal.Decimal `json:"totalBalance"`     // Sum of stored balances, independent of transaction history
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`    // Sum of amounts over deposit transactions
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"` // Sum of amounts over withdraw transactions
	AccountCount     int             `json:"accountCount"`
	TransactionCount int             `json:"transactionCount"`
}

// AccountActivityRow is one per-account line of the summary report:
// the account's stored balance next to how many transactions reference it.
type AccountActivityRow struct {
	AccountID        string          `json:"accountID"`
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}
