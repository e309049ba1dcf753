package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns ASC", "", "ASC"},
		{"ASC uppercase returns ASC", "ASC", "ASC"},
		{"asc lowercase returns ASC", "asc", "ASC"},
		{"DESC uppercase returns DESC", "DESC", "DESC"},
		{"desc lowercase returns DESC", "desc", "DESC"},
		{"invalid value returns ASC", "INVALID", "ASC"},
		{"sql injection attempt returns ASC", "DESC; DROP TABLE users;--", "ASC"},
		{"whitespace only returns ASC", "   ", "ASC"},
		{"whitespace around DESC returns DESC", "  desc  ", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSortOrder(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		allowed  map[string]bool
		fallback string
		expected string
	}{
		{"empty field returns default", "", CustomerSortFields, "last_name", "last_name"},
		{"allowed field returns field", "first_name", CustomerSortFields, "last_name", "first_name"},
		{"disallowed field returns default", "password_hash", UserSortFields, "username", "username"},
		{"sql injection returns default", "id; DROP TABLE accounts;--", AccountSortFields, "account_number", "account_number"},
		{"whitespace field returns default", "   ", AccountSortFields, "account_number", "account_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSortField(tt.input, tt.allowed, tt.fallback)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSortFieldsWhitelists(t *testing.T) {
	whitelists := map[string]map[string]bool{
		"CustomerSortFields": CustomerSortFields,
		"AccountSortFields":  AccountSortFields,
		"UserSortFields":     UserSortFields,
	}

	for name, fields := range whitelists {
		t.Run(name, func(t *testing.T) {
			assert.NotEmpty(t, fields)
			assert.True(t, fields["id"])
			assert.True(t, fields["created_at"])
			assert.True(t, fields["updated_at"])
		})
	}
}
