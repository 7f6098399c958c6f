package models

import (
	"github.com/shopspring/decimal"
)

// Account is the serialized form of an account inside the persisted
// accounts snapshot. Field names are the on-disk contract and must not change.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}
