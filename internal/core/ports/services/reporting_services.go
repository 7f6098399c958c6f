package services

import (
	"context"

	"github.com/mcbank/mc_bank_app/internal/core/domain"
)

// ReportingSvc derives aggregates from the current account and transaction
// snapshots. It holds no state of its own and never mutates the stores.
type ReportingSvc interface {
	// Summary computes the bank-wide aggregates over the current snapshots.
	Summary(ctx context.Context) domain.Summary

	// AccountActivity computes one row per account with its stored balance
	// and the count of transactions referencing it, in account insertion order.
	AccountActivity(ctx context.Context) []domain.AccountActivityRow
}

// ExportSvc renders the current snapshots as a downloadable document.
type ExportSvc interface {
	// ExportCSV produces the two-section CSV document over the current
	// snapshots. Identical snapshots produce byte-identical output.
	ExportCSV(ctx context.Context) string
}
