package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeInvalidFormat = "INVALID_FORMAT"
	ErrCodeInvalidPrice  = "INVALID_PRICE"
	ErrCodeInvalidStatus = "INVALID_STATUS"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeUnauthorised  = "UNAUTHORIZED"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// DomainError carries a stable error code alongside a user-facing message.
type DomainError struct {
	Code    string
	Message string
}

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

// Common domain errors
var (
	ErrInvalidFormat = NewDomainError(ErrCodeInvalidFormat, "Gift card code must be 1-25 characters of A-Z and 0-9")
	ErrInvalidPrice  = NewDomainError(ErrCodeInvalidPrice, "Price must have a non-negative amount and a supported currency")
	ErrInvalidStatus = NewDomainError(ErrCodeInvalidStatus, "Status must be one of pending, accepted or declined")
	ErrCardNotFound  = NewDomainError(ErrCodeNotFound, "Gift card not found")
	ErrUnauthorised  = NewDomainError(ErrCodeUnauthorised, "Admin authentication required")
	ErrBadRequest    = NewDomainError(ErrCodeBadRequest, "Username and password are required")
)
