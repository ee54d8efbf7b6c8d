package domain

// Stable error codes surfaced to API clients. Handlers map these to HTTP
// statuses; services never collapse them into a generic failure.
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeEmailTaken        = "EMAIL_TAKEN"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Is matches by code so errors.Is works against the sentinel values below
// regardless of the message a call site attached.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// WithMessage returns a copy carrying a call-site specific message.
func (e *DomainError) WithMessage(msg string) *DomainError {
	return &DomainError{Code: e.Code, Message: msg}
}

var (
	ErrNotFound          = &DomainError{Code: ErrCodeNotFound, Message: "resource not found"}
	ErrForbidden         = &DomainError{Code: ErrCodeForbidden, Message: "access denied"}
	ErrInvalidInput      = &DomainError{Code: ErrCodeInvalidInput, Message: "invalid input"}
	ErrEmptyCart         = &DomainError{Code: ErrCodeEmptyCart, Message: "cart has no purchasable items"}
	ErrInvalidTransition = &DomainError{Code: ErrCodeInvalidTransition, Message: "illegal order status change"}
	ErrUnauthorized      = &DomainError{Code: ErrCodeUnauthorized, Message: "invalid email or password"}
	ErrEmailTaken        = &DomainError{Code: ErrCodeEmailTaken, Message: "email already registered"}
)
