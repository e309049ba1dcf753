package banking

import (
	"regexp"
	"strings"
	"time"

	"github.com/bankcore/backend/internal/domain/shared"
)

// Address holds a customer's mailing address. All fields are required.
type Address struct {
	Street     string `gorm:"type:varchar(200);not null"`
	City       string `gorm:"type:varchar(100);not null"`
	State      string `gorm:"type:varchar(100);not null"`
	PostalCode string `gorm:"type:varchar(20);not null"`
	Country    string `gorm:"type:varchar(100);not null"`
}

// Customer represents a bank customer
// It is the aggregate root for customer-related operations
type Customer struct {
	shared.BaseAggregateRoot
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         string    `gorm:"type:varchar(100);not null"`
	Suffix           string    `gorm:"type:varchar(20)"` // Jr., III, ...
	Title            string    `gorm:"type:varchar(20)"` // Mr., Dr., ...
	SSNTin           string    `gorm:"type:varchar(50);not null"`
	SSNTinNormalized string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email            string    `gorm:"type:varchar(200);not null"`
	EmailNormalized  string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Address          Address   `gorm:"embedded;embeddedPrefix:address_"`
	CustomerSince    time.Time `gorm:"type:date;not null"` // Set once at creation, never updated
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// TimeNow is the clock used to stamp CustomerSince and DateOpened.
// Tests swap it to pin creation dates.
var TimeNow = time.Now

// NewCustomer creates a new customer. CustomerSince is stamped from the
// clock and is immutable from then on.
func NewCustomer(firstName, lastName, suffix, title, ssnTin, email string, address Address) (*Customer, error) {
	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerSince:     DateOf(TimeNow()),
	}
	if err := customer.setProfile(firstName, lastName, suffix, title, ssnTin, email, address); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateProfile replaces the customer's entire editable profile. It is a
// full replace, not a merge: every field is validated and written.
// CustomerSince is deliberately untouched.
func (c *Customer) UpdateProfile(firstName, lastName, suffix, title, ssnTin, email string, address Address) error {
	if err := c.setProfile(firstName, lastName, suffix, title, ssnTin, email, address); err != nil {
		return err
	}
	c.Touch()
	return nil
}

func (c *Customer) setProfile(firstName, lastName, suffix, title, ssnTin, email string, address Address) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	suffix = strings.TrimSpace(suffix)
	title = strings.TrimSpace(title)

	fields := map[string][]string{}
	if v := validateName("first name", firstName); len(v) > 0 {
		fields["FirstName"] = v
	}
	if v := validateName("last name", lastName); len(v) > 0 {
		fields["LastName"] = v
	}
	if v := validateEmail(email); len(v) > 0 {
		fields["Email"] = v
	}
	if v := validateSSNTin(ssnTin); len(v) > 0 {
		fields["SsnTin"] = v
	}
	validateAddress(address, fields)
	if len(fields) > 0 {
		return shared.NewValidationError("Customer profile is invalid", fields)
	}

	c.FirstName = firstName
	c.LastName = lastName
	c.Suffix = suffix
	c.Title = title
	c.SSNTin = ssnTin
	c.SSNTinNormalized = NormalizeSSNTin(ssnTin)
	c.Email = email
	c.EmailNormalized = NormalizeEmail(email)
	c.Address = address
	return nil
}

// FullName returns the customer's display name including optional title and suffix
func (c *Customer) FullName() string {
	parts := []string{}
	if c.Title != "" {
		parts = append(parts, c.Title)
	}
	parts = append(parts, c.FirstName, c.LastName)
	if c.Suffix != "" {
		parts = append(parts, c.Suffix)
	}
	return strings.Join(parts, " ")
}

// DateOf truncates a timestamp to its calendar date in the local zone
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Validation functions. Each reports every violation for its field so a bad
// request is rejected with the complete picture in one response.

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateName(label, name string) []string {
	switch {
	case name == "":
		return []string{"Customer " + label + " cannot be empty"}
	case len(name) > 100:
		return []string{"Customer " + label + " cannot exceed 100 characters"}
	}
	return nil
}

func validateEmail(email string) []string {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return []string{"Email cannot be empty"}
	}
	var violations []string
	if len(email) > 200 {
		violations = append(violations, "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(normalized) {
		violations = append(violations, "Invalid email format")
	}
	return violations
}

func validateSSNTin(ssnTin string) []string {
	var violations []string
	if NormalizeSSNTin(ssnTin) == "" {
		violations = append(violations, "SSN/TIN must contain at least one alphanumeric character")
	}
	if len(ssnTin) > 50 {
		violations = append(violations, "SSN/TIN cannot exceed 50 characters")
	}
	return violations
}

func validateAddress(address Address, fields map[string][]string) {
	parts := []struct {
		key, label, value string
	}{
		{"Street", "Street", address.Street},
		{"City", "City", address.City},
		{"State", "State", address.State},
		{"PostalCode", "Postal code", address.PostalCode},
		{"Country", "Country", address.Country},
	}
	for _, p := range parts {
		if strings.TrimSpace(p.value) == "" {
			fields[p.key] = append(fields[p.key], p.label+" cannot be empty")
		}
	}
}
