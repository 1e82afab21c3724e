package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyapar-labs/gstbill-api/internal/domain/billing"
)

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// Scenario: grand total 2360 fully received -> pending 0.
func TestReconcile_FullyPaid(t *testing.T) {
	s, err := billing.Reconcile(decimal.NewFromInt(2360), dec(2360))
	require.NoError(t, err)
	require.NotNil(t, s.TotalReceived)
	require.NotNil(t, s.TotalPending)
	assert.True(t, s.TotalReceived.Equal(decimal.NewFromInt(2360)))
	assert.True(t, s.TotalPending.IsZero())
	assert.Equal(t, billing.StatusPaid, billing.PaymentStatus(decimal.NewFromInt(2360), s.TotalReceived))
}

func TestReconcile_Partial(t *testing.T) {
	grand := decimal.NewFromInt(2360)
	s, err := billing.Reconcile(grand, dec(1000))
	require.NoError(t, err)
	assert.True(t, s.TotalPending.Equal(decimal.NewFromInt(1360)))
	// pending = grand - received always holds
	assert.True(t, grand.Sub(*s.TotalReceived).Equal(*s.TotalPending))
	assert.Equal(t, billing.StatusPartiallyPaid, billing.PaymentStatus(grand, s.TotalReceived))
}

// Scenario: received 3000 against total 2360 -> over-payment naming the excess.
func TestReconcile_OverPayment(t *testing.T) {
	_, err := billing.Reconcile(decimal.NewFromInt(2360), dec(3000))
	require.Error(t, err)

	ve, ok := billing.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, billing.KindOverPayment, ve.Kind)
	assert.Contains(t, ve.Message, "640.00")
}

func TestReconcile_NegativeAmount(t *testing.T) {
	_, err := billing.Reconcile(decimal.NewFromInt(2360), dec(-1))
	require.Error(t, err)
	assert.True(t, billing.IsKind(err, billing.KindNegativeAmount))
}

// No payment tracking requested: both outputs stay nil.
func TestReconcile_NilProposed(t *testing.T) {
	s, err := billing.Reconcile(decimal.NewFromInt(2360), nil)
	require.NoError(t, err)
	assert.Nil(t, s.TotalReceived)
	assert.Nil(t, s.TotalPending)
	assert.Equal(t, billing.StatusUnpaid, billing.PaymentStatus(decimal.NewFromInt(2360), s.TotalReceived))
}

func TestReconcile_ZeroReceived(t *testing.T) {
	grand := decimal.NewFromInt(500)
	s, err := billing.Reconcile(grand, dec(0))
	require.NoError(t, err)
	assert.True(t, s.TotalReceived.IsZero())
	assert.True(t, s.TotalPending.Equal(grand))
	assert.Equal(t, billing.StatusUnpaid, billing.PaymentStatus(grand, s.TotalReceived))
}

func TestReconcile_PendingRoundedTwoDecimals(t *testing.T) {
	grand := decimal.NewFromFloat(117.9982) // exact engine output, unrounded
	s, err := billing.Reconcile(grand, dec(100))
	require.NoError(t, err)
	assert.Equal(t, "18.00", s.TotalPending.StringFixed(2))
	assert.False(t, s.TotalPending.IsNegative())
}

// Receiving exactly the grand total yields pending 0 for any grand total >= 0.
func TestReconcile_RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, 99.99, 2360, 123456.78} {
		grand := decimal.NewFromFloat(v)
		s, err := billing.Reconcile(grand, &grand)
		require.NoError(t, err)
		assert.True(t, s.TotalPending.IsZero(), "grand=%v", v)
	}
}
