package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FeeBucket names one of the three order cost buckets a discount can target.
type FeeBucket string

const (
	FeeBucketProducts    FeeBucket = "products"
	FeeBucketAdminFee    FeeBucket = "admin_fee"
	FeeBucketDeliveryFee FeeBucket = "delivery_fee"
)

// ParseFeeBucket converts a stored string into a FeeBucket.
func ParseFeeBucket(s string) (FeeBucket, error) {
	switch FeeBucket(s) {
	case FeeBucketProducts, FeeBucketAdminFee, FeeBucketDeliveryFee:
		return FeeBucket(s), nil
	default:
		return "", fmt.Errorf("unknown fee bucket %q", s)
	}
}

// DiscountDescriptor is a percentage discount plus the buckets it applies to.
type DiscountDescriptor struct {
	Percentage decimal.Decimal `json:"percentage"`
	AppliesTo  []FeeBucket     `json:"applies_to"`
}

// Applies reports whether the descriptor targets the given bucket.
func (d DiscountDescriptor) Applies(bucket FeeBucket) bool {
	for _, b := range d.AppliesTo {
		if b == bucket {
			return true
		}
	}
	return false
}

// DiscountCode is a time-boxed discount code as stored in the catalog.
type DiscountCode struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Percentage decimal.Decimal `json:"percentage"`
	AppliesTo  []FeeBucket     `json:"applies_to"`
	Active     bool            `json:"active"`
	ValidFrom  time.Time       `json:"valid_from"`
	ValidUntil time.Time       `json:"valid_until"`
}

// ValidAt reports whether the code may be redeemed at the given instant.
func (c *DiscountCode) ValidAt(now time.Time) bool {
	return c.Active && !now.Before(c.ValidFrom) && !now.After(c.ValidUntil)
}

// Descriptor converts a validated code into the pure calculator's input.
func (c *DiscountCode) Descriptor() DiscountDescriptor {
	return DiscountDescriptor{
		Percentage: c.Percentage,
		AppliesTo:  append([]FeeBucket(nil), c.AppliesTo...),
	}
}

// Company holds the company-level flat discount percentage. It applies to
// the administrative and delivery fees only, never to the product subtotal.
type Company struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}
