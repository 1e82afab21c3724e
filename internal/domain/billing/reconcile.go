package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Payment statuses, derived from received vs grand total, never stored.
const (
	StatusUnpaid        = "unpaid"
	StatusPartiallyPaid = "partially_paid"
	StatusPaid          = "paid"
)

// Settlement is the validated payment state of an invoice. Both fields are
// nil when no payment tracking applies (quotations, sales orders).
type Settlement struct {
	TotalReceived *decimal.Decimal
	TotalPending  *decimal.Decimal
}

// Reconcile validates a proposed received amount against the grand total.
// proposedReceived nil means payment tracking is not requested.
// The update path (editing an existing invoice's received amount) goes
// through this same function against the stored grand total, so the
// received <= grandTotal invariant cannot be bypassed.
//
// Failures: KindNegativeAmount (received < 0), KindOverPayment
// (received > grandTotal, message reports the excess).
func Reconcile(grandTotal decimal.Decimal, proposedReceived *decimal.Decimal) (Settlement, error) {
	if proposedReceived == nil {
		return Settlement{}, nil
	}
	if proposedReceived.IsNegative() {
		return Settlement{}, &ValidationError{
			Kind:    KindNegativeAmount,
			Index:   -1,
			Field:   "totalReceived",
			Message: "total received cannot be negative",
		}
	}
	if proposedReceived.GreaterThan(grandTotal) {
		excess := proposedReceived.Sub(grandTotal).Round(2)
		return Settlement{}, &ValidationError{
			Kind:    KindOverPayment,
			Index:   -1,
			Field:   "totalReceived",
			Message: fmt.Sprintf("total received exceeds total amount by %s", excess.StringFixed(2)),
		}
	}
	received := proposedReceived.Round(2)
	pending := grandTotal.Sub(received).Round(2)
	return Settlement{TotalReceived: &received, TotalPending: &pending}, nil
}

// PaymentStatus derives the payment state of a reconciled invoice.
// A nil received amount counts as unpaid.
func PaymentStatus(grandTotal decimal.Decimal, totalReceived *decimal.Decimal) string {
	if totalReceived == nil || totalReceived.IsZero() {
		return StatusUnpaid
	}
	if totalReceived.GreaterThanOrEqual(grandTotal) {
		return StatusPaid
	}
	return StatusPartiallyPaid
}
