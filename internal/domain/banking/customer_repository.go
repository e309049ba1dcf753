package banking

import (
	"context"

	"github.com/bankcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll finds all customers matching the filter,
	// ordered by last name then first name
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// Delete deletes a customer
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts customers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByNormalizedEmail checks if another customer already uses the
	// normalized email. excludeID is skipped so updates don't collide with
	// the customer being updated; pass uuid.Nil on create.
	ExistsByNormalizedEmail(ctx context.Context, emailNormalized string, excludeID uuid.UUID) (bool, error)

	// ExistsByNormalizedSSNTin checks if another customer already uses the
	// normalized SSN/TIN, skipping excludeID
	ExistsByNormalizedSSNTin(ctx context.Context, ssnTinNormalized string, excludeID uuid.UUID) (bool, error)
}
