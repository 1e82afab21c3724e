package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vyapar-labs/gstbill-api/internal/domain/billing"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees only"},
		{1, "One Rupees only"},
		{19, "Nineteen Rupees only"},
		{40, "Forty Rupees only"},
		{105, "One Hundred Five Rupees only"},
		{999, "Nine Hundred Ninety Nine Rupees only"},
		{2360, "Two Thousand Three Hundred Sixty Rupees only"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six Rupees only"},
		{1180, "One Thousand One Hundred Eighty Rupees only"},
		{10_000_000, "One Crore Rupees only"},
		{25_63_47_899, "Twenty Five Crore Sixty Three Lakh Forty Seven Thousand Eight Hundred Ninety Nine Rupees only"},
		{12_345_000_000, "One Thousand Two Hundred Thirty Four Crore Fifty Lakh Rupees only"},
	}
	for _, tc := range cases {
		got := billing.AmountInWords(decimal.NewFromFloat(tc.amount))
		assert.Equal(t, tc.want, got, "amount=%v", tc.amount)
	}
}

// Fractional paise are floored, never spelled out.
func TestAmountInWords_FloorsPaise(t *testing.T) {
	assert.Equal(t,
		"Two Thousand Three Hundred Sixty Rupees only",
		billing.AmountInWords(decimal.NewFromFloat(2360.99)),
	)
	assert.Equal(t, "Zero Rupees only", billing.AmountInWords(decimal.NewFromFloat(0.75)))
}
