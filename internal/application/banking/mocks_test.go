package banking

import (
	"context"

	"github.com/bankcore/backend/internal/domain/banking"
	"github.com/bankcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCustomerRepository is a mock implementation of banking.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*banking.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*banking.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]banking.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]banking.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *banking.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByNormalizedEmail(ctx context.Context, emailNormalized string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, emailNormalized, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByNormalizedSSNTin(ctx context.Context, ssnTinNormalized string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, ssnTinNormalized, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockAccountRepository is a mock implementation of banking.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByIDForCustomer(ctx context.Context, customerID, id uuid.UUID) (*banking.Account, error) {
	args := m.Called(ctx, customerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*banking.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]banking.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]banking.Account), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *banking.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccountRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}
