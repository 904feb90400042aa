package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCommissionFor(t *testing.T) {
	cases := []struct {
		price string
		want  string
	}{
		{"100000", "3000"},
		{"0", "0"},
		{"1", "0.03"},
		{"999.99", "30"},     // 29.9997 rounds half-up
		{"33.33", "1"},       // 0.9999
		{"150000.50", "4500.02"},
	}

	for _, tc := range cases {
		got := CommissionFor(decimal.RequireFromString(tc.price))
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("CommissionFor(%s) = %s, want %s", tc.price, got, tc.want)
		}
	}
}
