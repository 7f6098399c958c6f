package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/mcbank/mc_bank_app/internal/apperrors"
	"github.com/mcbank/mc_bank_app/internal/core/domain"
	portsrepo "github.com/mcbank/mc_bank_app/internal/core/ports/repositories"
	portssvc "github.com/mcbank/mc_bank_app/internal/core/ports/services"
	"github.com/mcbank/mc_bank_app/internal/dto"
	"github.com/google/uuid"
)

// TransactionService owns the in-memory transactions collection. Transactions
// are immutable once created: the store supports create, delete and the
// per-account cascade, never update.
type TransactionService struct {
	BaseService
	repo  portsrepo.TransactionRepository
	newID func() string
	now   func() time.Time

	mu           sync.Mutex
	transactions []domain.Transaction
	subscribers  []func()
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*TransactionService)

// WithTransactionIDGenerator overrides the id generator used for new transactions.
func WithTransactionIDGenerator(gen func() string) TransactionServiceOption {
	return func(s *TransactionService) {
		s.newID = gen
	}
}

// WithClock overrides the clock used to default transaction dates.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *TransactionService) {
		s.now = now
	}
}

// NewTransactionService creates the transaction store, loading the persisted
// collection through the repository.
func NewTransactionService(ctx context.Context, repo portsrepo.TransactionRepository, options ...TransactionServiceOption) (*TransactionService, error) {
	svc := &TransactionService{
		repo:  repo,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, option := range options {
		option(svc)
	}

	transactions, err := repo.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	svc.transactions = transactions
	return svc, nil
}

// Ensure TransactionService implements the service facade
var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// Subscribe registers a callback fired synchronously after each successful
// mutation, once persistence completed.
func (s *TransactionService) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// ListTransactions returns the transactions in insertion order.
func (s *TransactionService) ListTransactions(ctx context.Context) []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(s.transactions)))
	return slices.Clone(s.transactions)
}

// ListTransactionsByAccount returns the transactions referencing the given
// account id, in insertion order. An id matching nothing, including ids of
// since-deleted accounts, yields an empty slice.
func (s *TransactionService) ListTransactionsByAccount(ctx context.Context, accountID string) []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]domain.Transaction, 0)
	for _, txn := range s.transactions {
		if txn.AccountID == accountID {
			matched = append(matched, txn)
		}
	}
	return matched
}

// CreateTransaction appends a new transaction with a freshly generated id and
// persists the collection. The amount keeps whatever sign the caller chose;
// only zero amounts and unknown types are rejected. The account reference is
// deliberately not checked against the accounts collection.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be non-zero", apperrors.ErrValidation)
	}
	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}

	date := req.Date
	if date == "" {
		date = s.now().UTC().Format(time.RFC3339)
	}

	txn := domain.Transaction{
		TransactionID: s.newID(),
		AccountID:     req.AccountID,
		Type:          txnType,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          date,
	}

	s.mu.Lock()
	next := append(slices.Clone(s.transactions), txn)
	if err := s.repo.ReplaceTransactions(ctx, next); err != nil {
		s.mu.Unlock()
		s.LogError(ctx, err, "Failed to persist transactions after create", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}
	s.transactions = next
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	s.notify(subs)
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// DeleteTransaction removes the transaction with the given id. Idempotent:
// deleting an absent id is a no-op, not an error.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	s.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(s.transactions), func(txn domain.Transaction) bool {
		return txn.TransactionID == transactionID
	})
	if err := s.repo.ReplaceTransactions(ctx, next); err != nil {
		s.mu.Unlock()
		s.LogError(ctx, err, "Failed to persist transactions after delete", slog.String("transaction_id", transactionID))
		return err
	}
	s.transactions = next
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	s.notify(subs)
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// DeleteTransactionsByAccount removes every transaction referencing the given
// account id as one batch: the collection is persisted once afterwards, not
// once per removed row.
func (s *TransactionService) DeleteTransactionsByAccount(ctx context.Context, accountID string) error {
	s.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(s.transactions), func(txn domain.Transaction) bool {
		return txn.AccountID == accountID
	})
	removed := len(s.transactions) - len(next)
	if err := s.repo.ReplaceTransactions(ctx, next); err != nil {
		s.mu.Unlock()
		s.LogError(ctx, err, "Failed to persist transactions after cascade", slog.String("account_id", accountID))
		return err
	}
	s.transactions = next
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	s.notify(subs)
	s.LogInfo(ctx, "Transactions removed for account",
		slog.String("account_id", accountID),
		slog.Int("removed", removed))
	return nil
}

func (s *TransactionService) notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
