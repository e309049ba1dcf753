package banking

import (
	"time"

	"github.com/bankcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the product type of an account
type AccountType string

const (
	AccountTypeChecking    AccountType = "Checking"
	AccountTypeSavings     AccountType = "Savings"
	AccountTypeMoneyMarket AccountType = "MoneyMarket"
	AccountTypeCD          AccountType = "CD"
	AccountTypeCreditCard  AccountType = "CreditCard"
	AccountTypeHELOC       AccountType = "HELOC"
	AccountTypePLOC        AccountType = "PLOC"
)

// AccountTypes lists every supported account type
var AccountTypes = []AccountType{
	AccountTypeChecking,
	AccountTypeSavings,
	AccountTypeMoneyMarket,
	AccountTypeCD,
	AccountTypeCreditCard,
	AccountTypeHELOC,
	AccountTypePLOC,
}

// ParseAccountType parses a string into an AccountType. Unknown values are a
// validation error; the set is closed.
func ParseAccountType(s string) (AccountType, error) {
	for _, t := range AccountTypes {
		if s == string(t) {
			return t, nil
		}
	}
	return "", shared.NewValidationError("Unknown account type", map[string][]string{
		"AccountType": {"must be one of Checking, Savings, MoneyMarket, CD, CreditCard, HELOC, PLOC"},
	})
}

// IsDeposit returns true for deposit products (customer's money held by the bank)
func (t AccountType) IsDeposit() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeMoneyMarket, AccountTypeCD:
		return true
	}
	return false
}

// IsCredit returns true for credit products (revolving or line-of-credit)
func (t AccountType) IsCredit() bool {
	switch t {
	case AccountTypeCreditCard, AccountTypeHELOC, AccountTypePLOC:
		return true
	}
	return false
}

// Account represents a deposit or credit account owned by a single customer
// It is the aggregate root for account-related operations
type Account struct {
	shared.BaseAggregateRoot
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountNumber    string          `gorm:"type:varchar(10);not null;uniqueIndex"`
	AccountType      AccountType     `gorm:"type:varchar(20);not null"`
	DateOpened       time.Time       `gorm:"type:date;not null"`
	AvailableBalance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount opens a new account for a customer. The account number comes
// from the generator, DateOpened from the clock, and the balance always
// starts at zero regardless of type.
func NewAccount(customerID uuid.UUID, accountNumber string, accountType AccountType) (*Account, error) {
	if err := validateAccountNumber(accountNumber); err != nil {
		return nil, err
	}
	if _, err := ParseAccountType(string(accountType)); err != nil {
		return nil, err
	}

	return &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		AccountNumber:     accountNumber,
		AccountType:       accountType,
		DateOpened:        DateOf(TimeNow()),
		AvailableBalance:  decimal.Zero,
	}, nil
}

// UpdateEditable replaces the two editable fields together. CustomerID,
// AccountNumber, and DateOpened are immutable after creation.
func (a *Account) UpdateEditable(accountType AccountType, availableBalance decimal.Decimal) error {
	if _, err := ParseAccountType(string(accountType)); err != nil {
		return err
	}

	a.AccountType = accountType
	a.AvailableBalance = availableBalance
	a.Touch()
	return nil
}

// BelongsTo reports whether the account is owned by the given customer
func (a *Account) BelongsTo(customerID uuid.UUID) bool {
	return a.CustomerID == customerID
}

func validateAccountNumber(number string) error {
	if len(number) != AccountNumberLength {
		return shared.NewValidationError("Invalid account number", map[string][]string{
			"AccountNumber": {"must be exactly 10 digits"},
		})
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return shared.NewValidationError("Invalid account number", map[string][]string{
				"AccountNumber": {"must contain only digits"},
			})
		}
	}
	return nil
}
