package dto

import (
	"github.com/mcbank/mc_bank_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a new transaction.
// Amount is signed; the sign convention (deposits positive, withdrawals
// negative) is the caller's responsibility.
type CreateTransactionRequest struct {
	AccountID   string          `json:"accountId" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=deposit withdraw transfer"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date"` // RFC 3339; defaults to now when empty
}

// QuickTransactionRequest is the payload of the deposit/withdraw quick actions.
// The amount is always entered positive; the handler applies the sign.
type QuickTransactionRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction.
// Mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountId"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Description:   txn.Description,
		Date:          txn.Date,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to a slice of TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
