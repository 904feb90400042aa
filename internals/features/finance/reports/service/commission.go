package service

import (
	"github.com/shopspring/decimal"
)

// CommissionRate is the share of a course price owed by the center
// per enrollment (3%).
var CommissionRate = decimal.NewFromFloat(0.03)

// CommissionFor returns the commission on a course price, rounded
// half-up to 2 decimal places. Both the reconciliation path and the
// monthly exporter go through this single function.
func CommissionFor(price decimal.Decimal) decimal.Decimal {
	return price.Mul(CommissionRate).Round(2)
}
