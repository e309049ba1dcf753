package banking

import (
	"context"

	"github.com/bankcore/backend/internal/domain/banking"
	"github.com/bankcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo banking.CustomerRepository
	accountRepo  banking.AccountRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo banking.CustomerRepository, accountRepo banking.AccountRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CustomerProfileRequest) (*CustomerDetailResponse, error) {
	if err := s.checkUniqueness(ctx, req.Email, req.SSNTin, uuid.Nil); err != nil {
		return nil, err
	}

	customer, err := banking.NewCustomer(
		req.FirstName, req.LastName, req.Suffix, req.Title,
		req.SSNTin, req.Email, toAddress(req.Address),
	)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	// Respond from the entity just built; a fresh customer has no accounts
	// so there is nothing to re-query.
	response := ToCustomerDetailResponse(customer, nil)
	return &response, nil
}

// GetByID retrieves a customer with their accounts
func (s *CustomerService) GetByID(ctx context.Context, customerID uuid.UUID) (*CustomerDetailResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerDetailResponse(customer, accounts)
	return &response, nil
}

// List retrieves customers ordered by last name then first name
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerSummaryResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "last_name",
		OrderDir: "asc",
		Search:   filter.Search,
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCustomerSummaryResponses(customers), total, nil
}

// Update replaces a customer's full profile
func (s *CustomerService) Update(ctx context.Context, customerID uuid.UUID, req CustomerProfileRequest) (*CustomerDetailResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := s.checkUniqueness(ctx, req.Email, req.SSNTin, customerID); err != nil {
		return nil, err
	}

	if err := customer.UpdateProfile(
		req.FirstName, req.LastName, req.Suffix, req.Title,
		req.SSNTin, req.Email, toAddress(req.Address),
	); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerDetailResponse(customer, accounts)
	return &response, nil
}

// Delete deletes a customer. A customer with any accounts cannot be
// deleted; the accounts must go first.
func (s *CustomerService) Delete(ctx context.Context, customerID uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return err
	}

	count, err := s.accountRepo.CountByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewConflictError("Customer cannot be deleted", map[string][]string{
			"Accounts": {"customer still owns accounts; delete them first"},
		})
	}

	return s.customerRepo.Delete(ctx, customerID)
}

// checkUniqueness runs both normalized-identity checks and aggregates every
// violation into a single conflict error. Both checks always run so the
// caller learns about every collision at once. excludeID skips the customer
// being updated; pass uuid.Nil on create.
func (s *CustomerService) checkUniqueness(ctx context.Context, email, ssnTin string, excludeID uuid.UUID) error {
	fields := make(map[string][]string)

	emailTaken, err := s.customerRepo.ExistsByNormalizedEmail(ctx, banking.NormalizeEmail(email), excludeID)
	if err != nil {
		return err
	}
	if emailTaken {
		fields["Email"] = append(fields["Email"], "another customer already uses this email")
	}

	ssnTaken, err := s.customerRepo.ExistsByNormalizedSSNTin(ctx, banking.NormalizeSSNTin(ssnTin), excludeID)
	if err != nil {
		return err
	}
	if ssnTaken {
		fields["SsnTin"] = append(fields["SsnTin"], "another customer already uses this SSN/TIN")
	}

	if len(fields) > 0 {
		return shared.NewConflictError("Customer identity already in use", fields)
	}
	return nil
}

func toAddress(req AddressRequest) banking.Address {
	return banking.Address{
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}
}
