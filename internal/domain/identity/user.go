package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/bankcore/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents the permission level of a staff user
type Role string

const (
	RoleTeller  Role = "teller"
	RoleManager Role = "manager"
)

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleTeller, RoleManager:
		return Role(s), nil
	default:
		return "", shared.NewValidationError("Unknown role", map[string][]string{
			"Role": {"must be 'teller' or 'manager'"},
		})
	}
}

// UserStatus represents the status of a user
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusDeactivated UserStatus = "deactivated"
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents a staff user of the banking system
// It is the aggregate root for user-related operations
type User struct {
	shared.BaseAggregateRoot
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	DisplayName  string `gorm:"type:varchar(200)"`
	Role         Role   `gorm:"type:varchar(20);not null"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new active user with the given role
func NewUser(username, password string, role Role) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          strings.ToLower(strings.TrimSpace(username)),
		PasswordHash:      passwordHash,
		Role:              role,
		Status:            UserStatusActive,
	}, nil
}

// SetDisplayName sets the user's display name
func (u *User) SetDisplayName(displayName string) error {
	if displayName != "" && len(displayName) > 200 {
		return shared.NewValidationError("Invalid display name", map[string][]string{
			"DisplayName": {"cannot exceed 200 characters"},
		})
	}

	u.DisplayName = strings.TrimSpace(displayName)
	u.Touch()
	return nil
}

// SetPassword sets a new password (admin reset, no old password check)
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.Touch()
	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// SetRole changes the user's role
func (u *User) SetRole(role Role) error {
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}
	u.Role = role
	u.Touch()
	return nil
}

// IsManager returns true if the user holds the manager role
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// Deactivate deactivates the user
func (u *User) Deactivate() error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("CONFLICT", "User is already deactivated")
	}
	u.Status = UserStatusDeactivated
	u.Touch()
	return nil
}

// CanLogin returns true if user can login
func (u *User) CanLogin() bool {
	return u.Status == UserStatusActive
}

// RecordLoginSuccess records a successful login
func (u *User) RecordLoginSuccess() {
	now := time.Now()
	u.LastLoginAt = &now
	u.Touch()
}

// GetDisplayNameOrUsername returns display name if set, otherwise username
func (u *User) GetDisplayNameOrUsername() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Validation functions

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	letterRegex   = regexp.MustCompile(`[a-zA-Z]`)
	numberRegex   = regexp.MustCompile(`[0-9]`)
)

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	violation := ""
	switch {
	case username == "":
		violation = "cannot be empty"
	case len(username) < 3:
		violation = "must be at least 3 characters"
	case len(username) > 100:
		violation = "cannot exceed 100 characters"
	case !usernameRegex.MatchString(username):
		violation = "can only contain letters, numbers, underscores, hyphens, and dots"
	}
	if violation != "" {
		return shared.NewValidationError("Invalid username", map[string][]string{
			"Username": {violation},
		})
	}
	return nil
}

func validatePassword(password string) error {
	violation := ""
	switch {
	case password == "":
		violation = "cannot be empty"
	case len(password) < 8:
		violation = "must be at least 8 characters"
	case len(password) > 128:
		violation = "cannot exceed 128 characters"
	case !letterRegex.MatchString(password) || !numberRegex.MatchString(password):
		violation = "must contain at least one letter and one number"
	}
	if violation != "" {
		return shared.NewValidationError("Invalid password", map[string][]string{
			"Password": {violation},
		})
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
