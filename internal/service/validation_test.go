package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

func TestValidateBreakdownInputs(t *testing.T) {
	tests := []struct {
		name       string
		subtotal   decimal.Decimal
		discount   *models.DiscountDescriptor
		companyPct decimal.Decimal
		wantField  string
	}{
		{
			name:       "all valid",
			subtotal:   decimal.NewFromInt(1000),
			companyPct: decimal.NewFromInt(15),
		},
		{
			name:       "zero subtotal is valid",
			subtotal:   decimal.Zero,
			companyPct: decimal.Zero,
		},
		{
			name:       "negative subtotal",
			subtotal:   decimal.NewFromInt(-1),
			companyPct: decimal.Zero,
			wantField:  "subtotal",
		},
		{
			name:       "company percentage over 100",
			subtotal:   decimal.NewFromInt(1000),
			companyPct: decimal.NewFromInt(101),
			wantField:  "company_discount_percentage",
		},
		{
			name:       "negative company percentage",
			subtotal:   decimal.NewFromInt(1000),
			companyPct: decimal.NewFromInt(-5),
			wantField:  "company_discount_percentage",
		},
		{
			name:     "code percentage over 100",
			subtotal: decimal.NewFromInt(1000),
			discount: &models.DiscountDescriptor{
				Percentage: decimal.NewFromInt(150),
				AppliesTo:  []models.FeeBucket{models.FeeBucketAdminFee},
			},
			companyPct: decimal.Zero,
			wantField:  "discount_percentage",
		},
		{
			name:     "boundary percentages pass",
			subtotal: decimal.NewFromInt(1000),
			discount: &models.DiscountDescriptor{
				Percentage: decimal.NewFromInt(100),
				AppliesTo:  []models.FeeBucket{models.FeeBucketDeliveryFee},
			},
			companyPct: decimal.NewFromInt(100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBreakdownInputs(tt.subtotal, tt.discount, tt.companyPct)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var vErr *apperrors.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestValidateMenuInputs(t *testing.T) {
	if err := ValidateMenuInputs("Breakfast", decimal.NewFromInt(100), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateMenuInputs("  ", decimal.NewFromInt(100), 1); err == nil {
		t.Error("expected error for blank name")
	}
	if err := ValidateMenuInputs("Breakfast", decimal.NewFromInt(-1), 1); err == nil {
		t.Error("expected error for negative base price")
	}
	if err := ValidateMenuInputs("Breakfast", decimal.NewFromInt(100), 0); err == nil {
		t.Error("expected error for zero minimum quantity")
	}
}

func TestValidateCheckoutRequest(t *testing.T) {
	valid := func() *models.CheckoutRequest {
		return &models.CheckoutRequest{
			ContactName:  "Anna Svensson",
			ContactEmail: "anna@example.com",
			DeliveryDate: time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC),
			DeliveryAddress: models.Address{
				Line1:      "Storgatan 1",
				City:       "Stockholm",
				PostalCode: "11122",
			},
		}
	}

	if err := ValidateCheckoutRequest(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := valid()
	req.ContactEmail = "not-an-email"
	if err := ValidateCheckoutRequest(req); err == nil {
		t.Error("expected error for bad email")
	}

	req = valid()
	req.DeliveryDate = time.Time{}
	if err := ValidateCheckoutRequest(req); err == nil {
		t.Error("expected error for missing delivery date")
	}

	req = valid()
	req.DeliveryAddress.City = ""
	if err := ValidateCheckoutRequest(req); err == nil {
		t.Error("expected error for missing city")
	}
}

func TestValidateOrderListFilterDefaultsLimit(t *testing.T) {
	filter := &models.OrderListFilter{}
	if err := ValidateOrderListFilter(filter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.Limit != 100 {
		t.Errorf("Limit = %d, want 100", filter.Limit)
	}

	filter = &models.OrderListFilter{Limit: 500}
	if err := ValidateOrderListFilter(filter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.Limit != 100 {
		t.Errorf("Limit = %d, want 100 after capping", filter.Limit)
	}

	filter = &models.OrderListFilter{Limit: -1}
	if err := ValidateOrderListFilter(filter); err == nil {
		t.Error("expected error for negative limit")
	}
}

func TestValidateUpdateOrderStatusRequest(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusInvoiced,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		if err := ValidateUpdateOrderStatusRequest(&models.UpdateOrderStatusRequest{Status: status}); err != nil {
			t.Errorf("status %q: unexpected error: %v", status, err)
		}
	}

	if err := ValidateUpdateOrderStatusRequest(&models.UpdateOrderStatusRequest{Status: "shipped"}); err == nil {
		t.Error("expected error for unknown status")
	}
	if err := ValidateUpdateOrderStatusRequest(&models.UpdateOrderStatusRequest{}); err == nil {
		t.Error("expected error for empty status")
	}
}
