package billing

import "fmt"

// ErrorKind classifies a validation failure so the HTTP layer can surface it
// as a field-level form error.
type ErrorKind string

const (
	KindInvalidProduct    ErrorKind = "INVALID_PRODUCT"
	KindInvalidQuantity   ErrorKind = "INVALID_QUANTITY"
	KindInsufficientStock ErrorKind = "INSUFFICIENT_STOCK"
	KindEmptyInvoice      ErrorKind = "EMPTY_INVOICE"
	KindNegativeAmount    ErrorKind = "NEGATIVE_AMOUNT"
	KindOverPayment       ErrorKind = "OVER_PAYMENT"
)

// ValidationError is a structured caller-input failure. Index is the offending
// line (zero-based, -1 when not line-scoped), Field the offending field name.
// These are returned, never panicked, and no partial invoice is produced
// alongside one.
type ValidationError struct {
	Kind    ErrorKind
	Index   int
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("line %d: %s", e.Index+1, e.Message)
	}
	return e.Message
}

// IsKind reports whether err is a ValidationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ve, ok := err.(*ValidationError)
	return ok && ve.Kind == kind
}

// AsValidation returns err as a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	ve, ok := err.(*ValidationError)
	return ve, ok
}
