package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mcbank/mc_bank_app/internal/core/domain"
	portssvc "github.com/mcbank/mc_bank_app/internal/core/ports/services"
)

// ExportFilename is the fixed name of the downloadable export artifact.
const ExportFilename = "bank-summary.csv"

// exportService renders the current snapshots as the two-section CSV document.
type exportService struct {
	BaseService
	accounts     portssvc.AccountReaderSvc
	transactions portssvc.TransactionReaderSvc
}

// NewExportService creates a new export service over the two stores.
func NewExportService(accounts portssvc.AccountReaderSvc, transactions portssvc.TransactionReaderSvc) portssvc.ExportSvc {
	return &exportService{
		accounts:     accounts,
		transactions: transactions,
	}
}

// Ensure exportService implements the ExportSvc interface
var _ portssvc.ExportSvc = (*exportService)(nil)

// ExportCSV produces the export document over the current snapshots.
func (s *exportService) ExportCSV(ctx context.Context) string {
	doc := EncodeCSV(s.accounts.ListAccounts(ctx), s.transactions.ListTransactions(ctx))
	s.LogInfo(ctx, "Export document built", slog.Int("bytes", len(doc)))
	return doc
}

// EncodeCSV is the pure export encoding over a snapshot pair. The document
// has two sections separated by one blank line: accounts with their balances
// and transaction counts, then all transactions with the owning account's
// name resolved against the accounts snapshot ("Unknown" when unresolvable).
//
// Every field is quoted with embedded quotes doubled and rows end with CRLF,
// so identical snapshots always encode to byte-identical output.
func EncodeCSV(accounts []domain.Account, transactions []domain.Transaction) string {
	accountRows := [][]string{{"Account Name", "Balance", "Transaction Count"}}
	for _, acc := range accounts {
		count := 0
		for _, txn := range transactions {
			if txn.AccountID == acc.AccountID {
				count++
			}
		}
		accountRows = append(accountRows, []string{
			acc.Name,
			acc.Balance.String(),
			strconv.Itoa(count),
		})
	}

	nameByID := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		nameByID[acc.AccountID] = acc.Name
	}

	txnRows := [][]string{{"Account", "Type", "Amount", "Description", "Date"}}
	for _, txn := range transactions {
		name, ok := nameByID[txn.AccountID]
		if !ok {
			name = "Unknown"
		}
		txnRows = append(txnRows, []string{
			name,
			string(txn.Type),
			txn.Amount.String(),
			txn.Description,
			txn.Date,
		})
	}

	return encodeRows(accountRows) + "\r\n\r\n" + encodeRows(txnRows)
}

// encodeRows joins rows with CRLF, quoting every field and doubling embedded
// quotes. encoding/csv is no use here: it quotes only when forced to, and the
// document format requires every field quoted.
func encodeRows(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\r\n")
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}
