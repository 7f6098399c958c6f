package domain

import "github.com/shopspring/decimal"

// TransactionType classifies a transaction.
type TransactionType string

const (
	Deposit  TransactionType = "deposit"
	Withdraw TransactionType = "withdraw"
	Transfer TransactionType = "transfer"
)

// IsValid reports whether the type is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case Deposit, Withdraw, Transfer:
		return true
	}
	return false
}

// Transaction is an immutable record of money movement against one account.
// The sign of Amount encodes the caller's convention (deposits positive,
// withdrawals negative); the store does not impose a sign rule.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (e.g., UUID)
	AccountID     string          `json:"accountID"`     // Reference to Account.AccountID; not enforced at write time
	Type          TransactionType `json:"type"`          // deposit, withdraw or transfer
	Amount        decimal.Decimal `json:"amount"`        // Signed; precise decimal type
	Description   string          `json:"description"`   // Free text, may be empty
	Date          string          `json:"date"`          // Timestamp string (RFC 3339)
}
