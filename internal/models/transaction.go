package models

import "github.com/shopspring/decimal"

// Transaction is the serialized form of a transaction inside the persisted
// transactions snapshot. Field names are the on-disk contract and must not change.
type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}
