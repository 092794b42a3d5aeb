package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

// ComputeOrderBreakdown transforms a pre-tax subtotal plus discount inputs
// into the full monetary breakdown charged to the customer.
//
// The company discount applies to the admin and delivery fees only.
// When a discount code also targets a fee bucket, the larger of the two
// discount amounts wins for that bucket; discounts never stack. Service tax
// is always recomputed on the post-discount fee amounts. A code targeting
// the products bucket yields a ProductDiscount for display only; the
// subtotal and product tax in the total are unaffected.
//
// Inputs must be well formed: subtotal >= 0 and percentages in [0, 100] are
// the caller's responsibility (see service.ValidateBreakdownInputs). The
// function itself performs no I/O and cannot fail.
func ComputeOrderBreakdown(subtotal decimal.Decimal, discountInfo *models.DiscountDescriptor, companyDiscountPercentage decimal.Decimal) models.OrderTaxBreakdown {
	productTax := subtotal.Mul(ProductTaxRate)

	// Fees are charged on the undiscounted subtotal. The delivery fee is
	// flat and due even on a zero-subtotal order.
	adminFee := subtotal.Mul(AdminFeeRate)
	deliveryFee := DeliveryFee

	adminFeeDiscount := decimal.Zero
	deliveryFeeDiscount := decimal.Zero
	if companyDiscountPercentage.IsPositive() {
		adminFeeDiscount = adminFee.Mul(companyDiscountPercentage).Div(hundred)
		deliveryFeeDiscount = deliveryFee.Mul(companyDiscountPercentage).Div(hundred)
	}

	productDiscount := decimal.Zero
	if discountInfo != nil {
		if discountInfo.Applies(models.FeeBucketAdminFee) {
			if d := adminFee.Mul(discountInfo.Percentage).Div(hundred); d.GreaterThan(adminFeeDiscount) {
				adminFeeDiscount = d
			}
		}
		if discountInfo.Applies(models.FeeBucketDeliveryFee) {
			if d := deliveryFee.Mul(discountInfo.Percentage).Div(hundred); d.GreaterThan(deliveryFeeDiscount) {
				deliveryFeeDiscount = d
			}
		}
		if discountInfo.Applies(models.FeeBucketProducts) {
			productDiscount = subtotal.Mul(discountInfo.Percentage).Div(hundred)
		}
	}

	adminFeeAmount := adminFee.Sub(adminFeeDiscount)
	deliveryFeeAmount := deliveryFee.Sub(deliveryFeeDiscount)

	// Service tax on the post-discount fee amounts, never the raw fees.
	adminFeeTax := adminFeeAmount.Mul(ServiceTaxRate)
	deliveryFeeTax := deliveryFeeAmount.Mul(ServiceTaxRate)

	total := subtotal.
		Add(productTax).
		Add(adminFeeAmount).
		Add(adminFeeTax).
		Add(deliveryFeeAmount).
		Add(deliveryFeeTax)

	return models.OrderTaxBreakdown{
		SubtotalPreTax:      subtotal,
		ProductTax:          productTax,
		ProductDiscount:     productDiscount,
		AdminFeeAmount:      adminFeeAmount,
		AdminFeeTax:         adminFeeTax,
		AdminFeeDiscount:    adminFeeDiscount,
		DeliveryFeeAmount:   deliveryFeeAmount,
		DeliveryFeeTax:      deliveryFeeTax,
		DeliveryFeeDiscount: deliveryFeeDiscount,
		TotalAmount:         total,
		RateVersion:         RateVersion,
	}
}
