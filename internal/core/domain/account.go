package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a bank account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID string          `json:"accountID"` // Primary Key (e.g., UUID), immutable after creation
	Name      string          `json:"name"`      // User-defined display name
	Balance   decimal.Decimal `json:"balance"`   // Manually maintained balance; NOT derived from transactions
}
