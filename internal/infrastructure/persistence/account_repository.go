package persistence

import (
	"context"
	"errors"

	"github.com/bankcore/backend/internal/domain/banking"
	"github.com/bankcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAccountRepository implements banking.AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByIDForCustomer finds an account by ID scoped to its owning customer.
// An account owned by a different customer is reported as not found.
func (r *GormAccountRepository) FindByIDForCustomer(ctx context.Context, customerID, id uuid.UUID) (*banking.Account, error) {
	var account banking.Account
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND id = ?", customerID, id).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindByCustomer finds all accounts owned by a customer, ordered by account number
func (r *GormAccountRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]banking.Account, error) {
	var accounts []banking.Account
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("account_number ASC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Save creates or updates an account. A duplicate account number that slips
// past generation surfaces as a conflict via the unique index.
func (r *GormAccountRepository) Save(ctx context.Context, account *banking.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes an account
func (r *GormAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&banking.Account{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByCustomer counts the accounts owned by a customer
func (r *GormAccountRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&banking.Account{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByNumber checks if any account already uses the account number
func (r *GormAccountRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&banking.Account{}).
		Where("account_number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormAccountRepository implements AccountRepository
var _ banking.AccountRepository = (*GormAccountRepository)(nil)
