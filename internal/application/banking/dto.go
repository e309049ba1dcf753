package banking

import (
	"time"

	"github.com/bankcore/backend/internal/domain/banking"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for calendar dates
const dateLayout = "2006-01-02"

// =============================================================================
// Customer DTOs
// =============================================================================

// AddressRequest represents a customer's mailing address in requests
type AddressRequest struct {
	Street     string `json:"street" binding:"required,max=200"`
	City       string `json:"city" binding:"required,max=100"`
	State      string `json:"state" binding:"required,max=100"`
	PostalCode string `json:"postal_code" binding:"required,max=20"`
	Country    string `json:"country" binding:"required,max=100"`
}

// CustomerProfileRequest carries a customer's full editable profile.
// Create and update share it: updates are a full replace, never a merge.
type CustomerProfileRequest struct {
	FirstName string         `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string         `json:"last_name" binding:"required,min=1,max=100"`
	Suffix    string         `json:"suffix" binding:"max=20"`
	Title     string         `json:"title" binding:"max=20"`
	SSNTin    string         `json:"ssn_tin" binding:"required,min=1,max=50"`
	Email     string         `json:"email" binding:"required,email,max=200"`
	Address   AddressRequest `json:"address" binding:"required"`
}

// AddressResponse represents a customer's mailing address in responses
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// CustomerSummaryResponse is the list-view projection of a customer
type CustomerSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	CustomerSince string    `json:"customer_since"`
}

// CustomerDetailResponse is the full projection of a customer,
// including their accounts ordered by account number
type CustomerDetailResponse struct {
	ID            uuid.UUID                `json:"id"`
	FirstName     string                   `json:"first_name"`
	LastName      string                   `json:"last_name"`
	Suffix        string                   `json:"suffix,omitempty"`
	Title         string                   `json:"title,omitempty"`
	SSNTin        string                   `json:"ssn_tin"`
	Email         string                   `json:"email"`
	Address       AddressResponse          `json:"address"`
	CustomerSince string                   `json:"customer_since"`
	Accounts      []AccountSummaryResponse `json:"accounts"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// =============================================================================
// Account DTOs
// =============================================================================

// CreateAccountRequest represents a request to open an account.
// The account number, open date, and starting balance are system-assigned.
type CreateAccountRequest struct {
	AccountType string `json:"account_type" binding:"required,oneof=Checking Savings MoneyMarket CD CreditCard HELOC PLOC"`
}

// UpdateAccountRequest replaces both editable fields of an account together
type UpdateAccountRequest struct {
	AccountType      string           `json:"account_type" binding:"required,oneof=Checking Savings MoneyMarket CD CreditCard HELOC PLOC"`
	AvailableBalance *decimal.Decimal `json:"available_balance" binding:"required"`
}

// AccountSummaryResponse is the projection of an account embedded in
// customer detail responses
type AccountSummaryResponse struct {
	ID               uuid.UUID       `json:"id"`
	AccountNumber    string          `json:"account_number"`
	AccountType      string          `json:"account_type"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

// AccountDetailResponse is the full projection of an account
type AccountDetailResponse struct {
	ID               uuid.UUID       `json:"id"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	AccountNumber    string          `json:"account_number"`
	AccountType      string          `json:"account_type"`
	DateOpened       string          `json:"date_opened"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

// =============================================================================
// Mappers
// =============================================================================

// ToCustomerSummaryResponse maps a customer to its list projection
func ToCustomerSummaryResponse(customer *banking.Customer) CustomerSummaryResponse {
	return CustomerSummaryResponse{
		ID:            customer.ID,
		FirstName:     customer.FirstName,
		LastName:      customer.LastName,
		CustomerSince: formatDate(customer.CustomerSince),
	}
}

// ToCustomerSummaryResponses maps a slice of customers to list projections
func ToCustomerSummaryResponses(customers []banking.Customer) []CustomerSummaryResponse {
	responses := make([]CustomerSummaryResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerSummaryResponse(&customers[i])
	}
	return responses
}

// ToCustomerDetailResponse maps a customer and its accounts to the full projection
func ToCustomerDetailResponse(customer *banking.Customer, accounts []banking.Account) CustomerDetailResponse {
	accountResponses := make([]AccountSummaryResponse, len(accounts))
	for i := range accounts {
		accountResponses[i] = ToAccountSummaryResponse(&accounts[i])
	}
	return CustomerDetailResponse{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Suffix:    customer.Suffix,
		Title:     customer.Title,
		SSNTin:    customer.SSNTin,
		Email:     customer.Email,
		Address: AddressResponse{
			Street:     customer.Address.Street,
			City:       customer.Address.City,
			State:      customer.Address.State,
			PostalCode: customer.Address.PostalCode,
			Country:    customer.Address.Country,
		},
		CustomerSince: formatDate(customer.CustomerSince),
		Accounts:      accountResponses,
	}
}

// ToAccountSummaryResponse maps an account to its embedded projection
func ToAccountSummaryResponse(account *banking.Account) AccountSummaryResponse {
	return AccountSummaryResponse{
		ID:               account.ID,
		AccountNumber:    account.AccountNumber,
		AccountType:      string(account.AccountType),
		AvailableBalance: account.AvailableBalance,
	}
}

// ToAccountDetailResponse maps an account to its full projection
func ToAccountDetailResponse(account *banking.Account) AccountDetailResponse {
	return AccountDetailResponse{
		ID:               account.ID,
		CustomerID:       account.CustomerID,
		AccountNumber:    account.AccountNumber,
		AccountType:      string(account.AccountType),
		DateOpened:       formatDate(account.DateOpened),
		AvailableBalance: account.AvailableBalance,
	}
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
