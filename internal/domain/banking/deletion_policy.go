package banking

import "github.com/bankcore/backend/internal/domain/shared"

// Deletable reports whether the account may be deleted. Credit card
// accounts are deletable at any balance; every other type must carry an
// exactly zero balance first.
func (a *Account) Deletable() bool {
	if a.AccountType == AccountTypeCreditCard {
		return true
	}
	return a.AvailableBalance.IsZero()
}

// CheckDeletable returns nil when the account may be deleted, or a conflict
// error naming the offending balance otherwise.
func (a *Account) CheckDeletable() error {
	if a.Deletable() {
		return nil
	}
	return NewDeletionBlockedError()
}

// NewDeletionBlockedError describes why a non-credit-card account with a
// non-zero balance cannot be deleted.
func NewDeletionBlockedError() error {
	return shared.NewConflictError("Account cannot be deleted", map[string][]string{
		"AvailableBalance": {"balance must be zero before a non credit card account can be deleted"},
	})
}
