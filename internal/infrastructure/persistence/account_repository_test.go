package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcore/backend/internal/domain/banking"
	"github.com/bankcore/backend/internal/domain/shared"
)

func newTestAccount(t *testing.T, customerID uuid.UUID, number string, accountType banking.AccountType) *banking.Account {
	t.Helper()

	account, err := banking.NewAccount(customerID, number, accountType)
	require.NoError(t, err)
	return account
}

func TestGormAccountRepository_SaveAndFindByIDForCustomer(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	account := newTestAccount(t, customerID, "0012345678", banking.AccountTypeChecking)
	require.NoError(t, repo.Save(ctx, account))

	found, err := repo.FindByIDForCustomer(ctx, customerID, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, "0012345678", found.AccountNumber)
	assert.Equal(t, banking.AccountTypeChecking, found.AccountType)
	assert.True(t, found.AvailableBalance.IsZero())
}

func TestGormAccountRepository_FindByIDForCustomer_WrongCustomer(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	account := newTestAccount(t, ownerID, "0012345678", banking.AccountTypeSavings)
	require.NoError(t, repo.Save(ctx, account))

	// The account exists but belongs to someone else
	_, err := repo.FindByIDForCustomer(ctx, uuid.New(), account.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormAccountRepository_FindByCustomer_OrdersByNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	otherID := uuid.New()

	require.NoError(t, repo.Save(ctx, newTestAccount(t, customerID, "9000000002", banking.AccountTypeSavings)))
	require.NoError(t, repo.Save(ctx, newTestAccount(t, customerID, "0000000001", banking.AccountTypeChecking)))
	require.NoError(t, repo.Save(ctx, newTestAccount(t, otherID, "5000000003", banking.AccountTypeCreditCard)))

	accounts, err := repo.FindByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "0000000001", accounts[0].AccountNumber)
	assert.Equal(t, "9000000002", accounts[1].AccountNumber)
}

func TestGormAccountRepository_CountByCustomer(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	require.NoError(t, repo.Save(ctx, newTestAccount(t, customerID, "0000000001", banking.AccountTypeChecking)))
	require.NoError(t, repo.Save(ctx, newTestAccount(t, customerID, "0000000002", banking.AccountTypeCD)))

	count, err := repo.CountByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByCustomer(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGormAccountRepository_ExistsByNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestAccount(t, uuid.New(), "0012345678", banking.AccountTypeHELOC)))

	exists, err := repo.ExistsByNumber(ctx, "0012345678")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByNumber(ctx, "8765432100")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormAccountRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	t.Run("deletes existing account", func(t *testing.T) {
		customerID := uuid.New()
		account := newTestAccount(t, customerID, "0012345678", banking.AccountTypeChecking)
		require.NoError(t, repo.Save(ctx, account))

		require.NoError(t, repo.Delete(ctx, account.ID))

		_, err := repo.FindByIDForCustomer(ctx, customerID, account.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("returns not found for unknown account", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormAccountRepository_Save_DuplicateNumberConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestAccount(t, uuid.New(), "0012345678", banking.AccountTypeChecking)))

	// Same account number for a different customer hits the unique index
	err := repo.Save(ctx, newTestAccount(t, uuid.New(), "0012345678", banking.AccountTypeSavings))
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestGormAccountRepository_Save_UpdatesBalance(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	account := newTestAccount(t, customerID, "0012345678", banking.AccountTypeChecking)
	require.NoError(t, repo.Save(ctx, account))

	require.NoError(t, account.UpdateEditable(banking.AccountTypeSavings, decimal.NewFromFloat(250.75)))
	require.NoError(t, repo.Save(ctx, account))

	found, err := repo.FindByIDForCustomer(ctx, customerID, account.ID)
	require.NoError(t, err)
	assert.Equal(t, banking.AccountTypeSavings, found.AccountType)
	assert.True(t, found.AvailableBalance.Equal(decimal.NewFromFloat(250.75)))
}
