package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewConflictError creates a conflict error carrying per-field violation messages
func NewConflictError(message string, fields map[string][]string) *DomainError {
	return &DomainError{
		Code:    "CONFLICT",
		Message: message,
		Fields:  fields,
	}
}

// NewValidationError creates a validation error carrying per-field violation messages
func NewValidationError(message string, fields map[string][]string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: message,
		Fields:  fields,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("CONFLICT", "Resource already exists")
	ErrInvalidInput        = NewDomainError("VALIDATION", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
)
