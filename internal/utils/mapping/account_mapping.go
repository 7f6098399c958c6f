package mapping

import (
	"github.com/mcbank/mc_bank_app/internal/core/domain"
	"github.com/mcbank/mc_bank_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:      d.AccountID,
		Name:    d.Name,
		Balance: d.Balance,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.ID,
		Name:      m.Name,
		Balance:   m.Balance,
	}
}

// ToModelAccounts converts a slice of domain Accounts preserving order.
func ToModelAccounts(ds []domain.Account) []models.Account {
	ms := make([]models.Account, len(ds))
	for i, d := range ds {
		ms[i] = ToModelAccount(d)
	}
	return ms
}

// ToDomainAccounts converts a slice of model Accounts preserving order.
func ToDomainAccounts(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
