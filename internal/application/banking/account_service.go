package banking

import (
	"context"

	"github.com/bankcore/backend/internal/domain/banking"
	"github.com/bankcore/backend/internal/domain/identity"
	"github.com/bankcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// balanceFloor bounds how far negative an account balance may be set
var balanceFloor = decimal.NewFromInt(-1_000_000_000)

// AccountService handles account-related business operations
type AccountService struct {
	accountRepo  banking.AccountRepository
	customerRepo banking.CustomerRepository
	numberGen    *banking.AccountNumberGenerator
}

// NewAccountService creates a new AccountService
func NewAccountService(
	accountRepo banking.AccountRepository,
	customerRepo banking.CustomerRepository,
	numberGen *banking.AccountNumberGenerator,
) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		numberGen:    numberGen,
	}
}

// Create opens a new account for a customer. The number is generated, the
// open date stamped, and the balance starts at zero regardless of type.
func (s *AccountService) Create(ctx context.Context, customerID uuid.UUID, req CreateAccountRequest) (*AccountDetailResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	accountType, err := banking.ParseAccountType(req.AccountType)
	if err != nil {
		return nil, err
	}

	number, err := s.numberGen.Generate(ctx)
	if err != nil {
		return nil, err
	}

	account, err := banking.NewAccount(customerID, number, accountType)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	response := ToAccountDetailResponse(account)
	return &response, nil
}

// GetByID retrieves an account scoped to its owning customer
func (s *AccountService) GetByID(ctx context.Context, customerID, accountID uuid.UUID) (*AccountDetailResponse, error) {
	account, err := s.accountRepo.FindByIDForCustomer(ctx, customerID, accountID)
	if err != nil {
		return nil, err
	}

	response := ToAccountDetailResponse(account)
	return &response, nil
}

// Update replaces the account's editable fields (type and balance) together
func (s *AccountService) Update(ctx context.Context, customerID, accountID uuid.UUID, req UpdateAccountRequest) (*AccountDetailResponse, error) {
	account, err := s.accountRepo.FindByIDForCustomer(ctx, customerID, accountID)
	if err != nil {
		return nil, err
	}

	accountType, err := banking.ParseAccountType(req.AccountType)
	if err != nil {
		return nil, err
	}

	balance := *req.AvailableBalance
	if balance.LessThan(balanceFloor) {
		return nil, shared.NewValidationError("Balance out of range", map[string][]string{
			"AvailableBalance": {"balance cannot be below " + balanceFloor.String()},
		})
	}

	if err := account.UpdateEditable(accountType, balance); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	response := ToAccountDetailResponse(account)
	return &response, nil
}

// Delete deletes an account. Only managers may delete, and the deletion
// policy applies: non credit card accounts must be at exactly zero.
func (s *AccountService) Delete(ctx context.Context, actorRole identity.Role, customerID, accountID uuid.UUID) error {
	if actorRole != identity.RoleManager {
		return shared.ErrForbidden
	}

	account, err := s.accountRepo.FindByIDForCustomer(ctx, customerID, accountID)
	if err != nil {
		return err
	}

	if err := account.CheckDeletable(); err != nil {
		return err
	}

	return s.accountRepo.Delete(ctx, account.ID)
}
