package banking

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines the interface for account persistence
type AccountRepository interface {
	// FindByIDForCustomer finds an account by ID scoped to its owning
	// customer. An existing account owned by a different customer is
	// reported as not found.
	FindByIDForCustomer(ctx context.Context, customerID, id uuid.UUID) (*Account, error)

	// FindByCustomer finds all accounts owned by a customer,
	// ordered by account number
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Account, error)

	// Save creates or updates an account
	Save(ctx context.Context, account *Account) error

	// Delete deletes an account
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCustomer counts the accounts owned by a customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// ExistsByNumber checks if any account already uses the account number
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
