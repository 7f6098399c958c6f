package dto

import (
	"github.com/mcbank/mc_bank_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountActivityResponse is one per-account row of the summary report.
type AccountActivityResponse struct {
	AccountID        string          `json:"accountID"`
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}

// SummaryResponse carries the bank-wide aggregates plus per-account activity,
// mirroring the original summary view.
type SummaryResponse struct {
	TotalBalance     decimal.Decimal           `json:"totalBalance"`
	TotalDeposits    decimal.Decimal           `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal           `json:"totalWithdrawals"`
	AccountCount     int                       `json:"accountCount"`
	TransactionCount int                       `json:"transactionCount"`
	Accounts         []AccountActivityResponse `json:"accounts"`
}

// ToSummaryResponse assembles the response DTO from the computed aggregates.
func ToSummaryResponse(s domain.Summary, rows []domain.AccountActivityRow) SummaryResponse {
	accounts := make([]AccountActivityResponse, len(rows))
	for i, r := range rows {
		accounts[i] = AccountActivityResponse{
			AccountID:        r.AccountID,
			Name:             r.Name,
			Balance:          r.Balance,
			TransactionCount: r.TransactionCount,
		}
	}
	return SummaryResponse{
		TotalBalance:     s.TotalBalance,
		TotalDeposits:    s.TotalDeposits,
		TotalWithdrawals: s.TotalWithdrawals,
		AccountCount:     s.AccountCount,
		TransactionCount: s.TransactionCount,
		Accounts:         accounts,
	}
}
