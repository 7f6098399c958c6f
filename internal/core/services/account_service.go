package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/mcbank/mc_bank_app/internal/apperrors"
	"github.com/mcbank/mc_bank_app/internal/core/domain"
	portsrepo "github.com/mcbank/mc_bank_app/internal/core/ports/repositories"
	portssvc "github.com/mcbank/mc_bank_app/internal/core/ports/services"
	"github.com/mcbank/mc_bank_app/internal/dto"
	"github.com/google/uuid"
)

// AccountService owns the in-memory accounts collection. The collection is
// loaded once at construction and written back through the repository after
// every mutation, so the persisted snapshot always reflects the latest state.
type AccountService struct {
	BaseService
	repo  portsrepo.AccountRepository
	newID func() string

	mu          sync.Mutex
	accounts    []domain.Account
	subscribers []func()
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*AccountService)

// WithAccountIDGenerator overrides the id generator used for new accounts.
// Production uses uuid.NewString; tests inject deterministic generators.
func WithAccountIDGenerator(gen func() string) AccountServiceOption {
	return func(s *AccountService) {
		s.newID = gen
	}
}

// NewAccountService creates the account store, loading the persisted
// collection through the repository.
func NewAccountService(ctx context.Context, repo portsrepo.AccountRepository, options ...AccountServiceOption) (*AccountService, error) {
	svc := &AccountService{
		repo:  repo,
		newID: uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}

	accounts, err := repo.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	svc.accounts = accounts
	return svc, nil
}

// Ensure AccountService implements the service facade
var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// Subscribe registers a callback fired synchronously after each successful
// mutation, once persistence completed.
func (s *AccountService) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// ListAccounts returns the accounts in insertion order. The returned slice is
// a copy; callers cannot mutate the collection through it.
func (s *AccountService) ListAccounts(ctx context.Context) []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(s.accounts)))
	return slices.Clone(s.accounts)
}

// GetAccountByID retrieves a single account by id.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.AccountID == accountID {
			return &acc, nil
		}
	}
	return nil, fmt.Errorf("%w: account %q", apperrors.ErrNotFound, accountID)
}

// CreateAccount appends a new account with a freshly generated id and
// persists the collection.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}

	account := domain.Account{
		AccountID: s.newID(),
		Name:      req.Name,
		Balance:   req.Balance,
	}

	s.mu.Lock()
	next := append(slices.Clone(s.accounts), account)
	if err := s.repo.ReplaceAccounts(ctx, next); err != nil {
		s.mu.Unlock()
		s.LogError(ctx, err, "Failed to persist accounts after create", slog.String("account_id", account.AccountID))
		return nil, err
	}
	s.accounts = next
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	s.notify(subs)
	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("name", account.Name))
	return &account, nil
}

// UpdateAccount replaces the stored account whose id matches the given one.
// An unknown id leaves the collection unchanged; the snapshot is persisted
// either way, matching the write-after-every-mutation contract.
func (s *AccountService) UpdateAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	next := slices.Clone(s.accounts)
	matched := false
	for i := range next {
		if next[i].AccountID == account.AccountID {
			next[i] = account
			matched = true
		}
	}
	if err := s.repo.ReplaceAccounts(ctx, next); err != nil {
		s.mu.Unlock()
		s.LogError(ctx, err, "Failed to persist accounts after update", slog.String("account_id", account.AccountID))
		return err
	}
	s.accounts = next
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	s.notify(subs)
	if !matched {
		s.LogDebug(ctx, "Update matched no account", slog.String("account_id", account.AccountID))
		return nil
	}
	s.LogInfo(ctx, "Account updated", slog.String("account_id", account.AccountID))
	return nil
}

// DeleteAccount removes the account with the given id. Idempotent: deleting
// an absent id is a no-op, not an error. Transactions referencing the account
// are untouched here; LedgerService owns the cascade.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) error {
	s.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(s.accounts), func(acc domain.Account) bool {
		return acc.AccountID == accountID
	})
	if err := s.repo.ReplaceAccounts(ctx, next); err != nil {
		s.mu.Unlock()
		s.LogError(ctx, err, "Failed to persist accounts after delete", slog.String("account_id", accountID))
		return err
	}
	s.accounts = next
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	s.notify(subs)
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

func (s *AccountService) notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
