package pricing

import "github.com/shopspring/decimal"

// RateVersion identifies the rate table an order breakdown was computed
// with. Bump it whenever a rate below changes; persisted breakdowns carry
// the version they were computed under.
const RateVersion = "2024-01"

var (
	// ProductTaxRate applies to the food subtotal.
	ProductTaxRate = decimal.New(12, -2)

	// ServiceTaxRate applies to the administrative and delivery fees.
	ServiceTaxRate = decimal.New(25, -2)

	// AdminFeeRate is charged on the pre-discount subtotal.
	AdminFeeRate = decimal.New(5, -2)

	// DeliveryFee is a flat per-order charge.
	DeliveryFee = decimal.NewFromInt(450)

	hundred = decimal.NewFromInt(100)
)
