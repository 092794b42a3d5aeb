package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

// The pure calculators in the pricing package cannot fail at runtime;
// malformed inputs are a caller contract violation. These guards run at the
// service boundary so that the calculators are only ever invoked with
// well-formed values.

var maxPercentage = decimal.NewFromInt(100)

// ValidateBreakdownInputs rejects malformed inputs before
// pricing.ComputeOrderBreakdown is invoked.
func ValidateBreakdownInputs(subtotal decimal.Decimal, discountInfo *models.DiscountDescriptor, companyDiscountPercentage decimal.Decimal) error {
	if subtotal.IsNegative() {
		return apperrors.NewValidationError("subtotal", "subtotal cannot be negative")
	}

	if err := validatePercentage("company_discount_percentage", companyDiscountPercentage); err != nil {
		return err
	}

	if discountInfo != nil {
		if err := validatePercentage("discount_percentage", discountInfo.Percentage); err != nil {
			return err
		}
	}

	return nil
}

func validatePercentage(field string, pct decimal.Decimal) error {
	if pct.IsNegative() {
		return apperrors.NewValidationError(field, "percentage cannot be negative")
	}
	if pct.GreaterThan(maxPercentage) {
		return apperrors.NewValidationError(field, "percentage cannot exceed 100")
	}
	return nil
}

// ValidateMenuInputs guards admin menu create/edit payloads.
func ValidateMenuInputs(name string, basePrice decimal.Decimal, minimumQuantity int) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name", "name is required")
	}
	if basePrice.IsNegative() {
		return apperrors.NewValidationError("base_price", "base price cannot be negative")
	}
	if minimumQuantity < 1 {
		return apperrors.NewValidationError("minimum_quantity", "minimum quantity must be at least 1")
	}
	return nil
}

// ValidateCheckoutRequest guards the checkout payload. The cart itself is
// checked separately.
func ValidateCheckoutRequest(req *models.CheckoutRequest) error {
	if strings.TrimSpace(req.ContactName) == "" {
		return apperrors.NewValidationError("contact_name", "contact name is required")
	}
	if !strings.Contains(req.ContactEmail, "@") {
		return apperrors.NewValidationError("contact_email", "a valid contact email is required")
	}
	if req.DeliveryDate.IsZero() {
		return apperrors.NewValidationError("delivery_date", "delivery date is required")
	}
	if err := validateAddress(&req.DeliveryAddress); err != nil {
		return err
	}
	return nil
}

func validateAddress(addr *models.Address) error {
	if addr.Line1 == "" {
		return apperrors.NewValidationError("delivery_address", "address line 1 is required")
	}
	if addr.City == "" {
		return apperrors.NewValidationError("delivery_address", "city is required")
	}
	if addr.PostalCode == "" {
		return apperrors.NewValidationError("delivery_address", "postal code is required")
	}
	return nil
}

// ValidateUpdateOrderStatusRequest checks a status transition payload.
func ValidateUpdateOrderStatusRequest(req *models.UpdateOrderStatusRequest) error {
	switch req.Status {
	case models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusInvoiced,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled:
		return nil
	case "":
		return apperrors.NewValidationError("status", "status is required")
	default:
		return apperrors.NewValidationError("status", "invalid order status")
	}
}

// ValidateOrderListFilter normalizes a list filter.
func ValidateOrderListFilter(filter *models.OrderListFilter) error {
	if filter.Limit < 0 {
		return apperrors.NewValidationError("limit", "limit cannot be negative")
	}
	if filter.Offset < 0 {
		return apperrors.NewValidationError("offset", "offset cannot be negative")
	}
	if filter.Limit == 0 || filter.Limit > 100 {
		filter.Limit = 100
	}
	return nil
}

// ValidateCancellationReason checks an order cancellation reason.
func ValidateCancellationReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.NewValidationError("reason", "cancellation reason is required")
	}
	if len(reason) > 500 {
		return apperrors.NewValidationError("reason", "cancellation reason too long (max 500 characters)")
	}
	return nil
}
