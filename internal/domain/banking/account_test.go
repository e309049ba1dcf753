package banking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	t.Run("accepts every supported type", func(t *testing.T) {
		for _, name := range []string{"Checking", "Savings", "MoneyMarket", "CD", "CreditCard", "HELOC", "PLOC"} {
			parsed, err := ParseAccountType(name)
			require.NoError(t, err, name)
			assert.Equal(t, AccountType(name), parsed)
		}
	})

	t.Run("rejects unknown and miscased values", func(t *testing.T) {
		for _, name := range []string{"", "checking", "CREDITCARD", "Bitcoin"} {
			_, err := ParseAccountType(name)
			assert.Error(t, err, name)
		}
	})
}

func TestAccountTypeGroups(t *testing.T) {
	deposit := []AccountType{AccountTypeChecking, AccountTypeSavings, AccountTypeMoneyMarket, AccountTypeCD}
	credit := []AccountType{AccountTypeCreditCard, AccountTypeHELOC, AccountTypePLOC}

	for _, at := range deposit {
		assert.True(t, at.IsDeposit(), at)
		assert.False(t, at.IsCredit(), at)
	}
	for _, at := range credit {
		assert.True(t, at.IsCredit(), at)
		assert.False(t, at.IsDeposit(), at)
	}
}

func TestNewAccount(t *testing.T) {
	customerID := uuid.New()

	t.Run("opens with zero balance and today's date", func(t *testing.T) {
		account, err := NewAccount(customerID, "0012345678", AccountTypeSavings)

		require.NoError(t, err)
		assert.Equal(t, customerID, account.CustomerID)
		assert.Equal(t, "0012345678", account.AccountNumber)
		assert.Equal(t, AccountTypeSavings, account.AccountType)
		assert.True(t, account.AvailableBalance.IsZero())
		assert.Equal(t, DateOf(time.Now()), account.DateOpened)
	})

	t.Run("stamps date opened from the clock", func(t *testing.T) {
		restore := TimeNow
		TimeNow = func() time.Time {
			return time.Date(2024, time.July, 1, 23, 59, 59, 0, time.UTC)
		}
		defer func() { TimeNow = restore }()

		account, err := NewAccount(customerID, "0012345678", AccountTypeCD)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), account.DateOpened)
	})

	t.Run("credit accounts also open at zero", func(t *testing.T) {
		account, err := NewAccount(customerID, "9998887776", AccountTypeCreditCard)

		require.NoError(t, err)
		assert.True(t, account.AvailableBalance.IsZero())
	})

	t.Run("rejects non 10-digit numbers", func(t *testing.T) {
		for _, number := range []string{"", "123", "12345678901", "12345abcde"} {
			account, err := NewAccount(customerID, number, AccountTypeChecking)
			assert.Error(t, err, number)
			assert.Nil(t, account)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		account, err := NewAccount(customerID, "0012345678", AccountType("Bitcoin"))

		assert.Error(t, err)
		assert.Nil(t, account)
	})
}

func TestAccountUpdateEditable(t *testing.T) {
	customerID := uuid.New()

	t.Run("replaces type and balance together", func(t *testing.T) {
		account, err := NewAccount(customerID, "0012345678", AccountTypeChecking)
		require.NoError(t, err)

		err = account.UpdateEditable(AccountTypeSavings, decimal.RequireFromString("250.75"))

		require.NoError(t, err)
		assert.Equal(t, AccountTypeSavings, account.AccountType)
		assert.True(t, account.AvailableBalance.Equal(decimal.RequireFromString("250.75")))
	})

	t.Run("permits negative balances", func(t *testing.T) {
		account, err := NewAccount(customerID, "0012345678", AccountTypeCreditCard)
		require.NoError(t, err)

		err = account.UpdateEditable(AccountTypeCreditCard, decimal.RequireFromString("-5000"))

		require.NoError(t, err)
		assert.True(t, account.AvailableBalance.IsNegative())
	})

	t.Run("rejects unknown type and keeps old values", func(t *testing.T) {
		account, err := NewAccount(customerID, "0012345678", AccountTypeChecking)
		require.NoError(t, err)

		err = account.UpdateEditable(AccountType("Bitcoin"), decimal.NewFromInt(10))

		assert.Error(t, err)
		assert.Equal(t, AccountTypeChecking, account.AccountType)
		assert.True(t, account.AvailableBalance.IsZero())
	})

	t.Run("leaves immutable fields alone", func(t *testing.T) {
		account, err := NewAccount(customerID, "0012345678", AccountTypeChecking)
		require.NoError(t, err)
		opened := account.DateOpened

		err = account.UpdateEditable(AccountTypeCD, decimal.NewFromInt(100))

		require.NoError(t, err)
		assert.Equal(t, customerID, account.CustomerID)
		assert.Equal(t, "0012345678", account.AccountNumber)
		assert.Equal(t, opened, account.DateOpened)
	})
}

func TestAccountDeletable(t *testing.T) {
	customerID := uuid.New()

	cases := []struct {
		name      string
		typ       AccountType
		balance   string
		deletable bool
	}{
		{"checking at zero", AccountTypeChecking, "0.00", true},
		{"checking with credit balance", AccountTypeChecking, "0.01", false},
		{"checking overdrawn", AccountTypeChecking, "-0.01", false},
		{"savings at zero", AccountTypeSavings, "0", true},
		{"savings with balance", AccountTypeSavings, "100.00", false},
		{"money market at zero", AccountTypeMoneyMarket, "0", true},
		{"money market with balance", AccountTypeMoneyMarket, "0.01", false},
		{"cd at zero", AccountTypeCD, "0", true},
		{"cd with balance", AccountTypeCD, "-0.01", false},
		{"heloc at zero", AccountTypeHELOC, "0", true},
		{"heloc drawn", AccountTypeHELOC, "-2500.00", false},
		{"ploc at zero", AccountTypePLOC, "0", true},
		{"ploc drawn", AccountTypePLOC, "0.01", false},
		{"credit card at zero", AccountTypeCreditCard, "0", true},
		{"credit card with balance", AccountTypeCreditCard, "5000.00", true},
		{"credit card overdrawn", AccountTypeCreditCard, "-5000.00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			account, err := NewAccount(customerID, "0012345678", tc.typ)
			require.NoError(t, err)
			require.NoError(t, account.UpdateEditable(tc.typ, decimal.RequireFromString(tc.balance)))

			assert.Equal(t, tc.deletable, account.Deletable())

			err = account.CheckDeletable()
			if tc.deletable {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "cannot be deleted")
			}
		})
	}
}

func TestAccountBelongsTo(t *testing.T) {
	owner := uuid.New()
	account, err := NewAccount(owner, "0012345678", AccountTypeChecking)
	require.NoError(t, err)

	assert.True(t, account.BelongsTo(owner))
	assert.False(t, account.BelongsTo(uuid.New()))
}
