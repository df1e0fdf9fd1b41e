package services_test

import (
	"testing"

	"github.com/ThanhAnUp/ArtisanHaven/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShippingRuleFeeFor(t *testing.T) {
	rule := services.ShippingRule{
		Fee:           decimal.NewFromInt(10),
		FreeThreshold: decimal.NewFromInt(75),
	}

	cases := []struct {
		subtotal string
		fee      string
	}{
		{"0", "10"},
		{"74.99", "10"},
		{"75", "0"},
		{"75.01", "0"},
		{"200", "0"},
	}
	for _, tc := range cases {
		got := rule.FeeFor(decimal.RequireFromString(tc.subtotal))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.fee)),
			"subtotal %s: fee %s, want %s", tc.subtotal, got, tc.fee)
	}
}
