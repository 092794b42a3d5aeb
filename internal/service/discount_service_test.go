package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestDiscountService(repo *fakeDiscountRepo) *DiscountService {
	s := NewDiscountService(repo, nil, testConfig(), testLogger())
	s.now = func() time.Time { return testNow }
	return s
}

func codeFixture(code string, active bool, from, until time.Time) *models.DiscountCode {
	return &models.DiscountCode{
		ID:         "disc_" + code,
		Code:       code,
		Percentage: decimal.NewFromInt(20),
		AppliesTo:  []models.FeeBucket{models.FeeBucketAdminFee, models.FeeBucketDeliveryFee},
		Active:     active,
		ValidFrom:  from,
		ValidUntil: until,
	}
}

func TestValidateCodeAccepted(t *testing.T) {
	repo := &fakeDiscountRepo{codes: map[string]*models.DiscountCode{
		"summer20": codeFixture("summer20", true, testNow.AddDate(0, -1, 0), testNow.AddDate(0, 1, 0)),
	}}
	s := newTestDiscountService(repo)

	dc, err := s.ValidateCode(context.Background(), "summer20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dc.Percentage.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Percentage = %s, want 20", dc.Percentage)
	}
}

func TestValidateCodeRejections(t *testing.T) {
	repo := &fakeDiscountRepo{codes: map[string]*models.DiscountCode{
		"inactive": codeFixture("inactive", false, testNow.AddDate(0, -1, 0), testNow.AddDate(0, 1, 0)),
		"expired":  codeFixture("expired", true, testNow.AddDate(0, -2, 0), testNow.AddDate(0, -1, 0)),
		"future":   codeFixture("future", true, testNow.AddDate(0, 1, 0), testNow.AddDate(0, 2, 0)),
	}}
	s := newTestDiscountService(repo)

	tests := []struct {
		name string
		code string
	}{
		{"unknown code", "nosuchcode"},
		{"inactive code", "inactive"},
		{"expired code", "expired"},
		{"not yet valid code", "future"},
		{"blank code", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ValidateCode(context.Background(), tt.code)
			if !apperrors.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

// A code valid exactly at its window boundaries is accepted.
func TestValidateCodeWindowBoundaries(t *testing.T) {
	repo := &fakeDiscountRepo{codes: map[string]*models.DiscountCode{
		"fromnow":  codeFixture("fromnow", true, testNow, testNow.AddDate(0, 1, 0)),
		"untilnow": codeFixture("untilnow", true, testNow.AddDate(0, -1, 0), testNow),
	}}
	s := newTestDiscountService(repo)

	for _, code := range []string{"fromnow", "untilnow"} {
		if _, err := s.ValidateCode(context.Background(), code); err != nil {
			t.Errorf("code %q: unexpected error: %v", code, err)
		}
	}
}

func TestValidateCodeMisconfiguredPercentage(t *testing.T) {
	bad := codeFixture("broken", true, testNow.AddDate(0, -1, 0), testNow.AddDate(0, 1, 0))
	bad.Percentage = decimal.NewFromInt(150)

	repo := &fakeDiscountRepo{codes: map[string]*models.DiscountCode{"broken": bad}}
	s := newTestDiscountService(repo)

	_, err := s.ValidateCode(context.Background(), "broken")
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCompanyDiscountForUser(t *testing.T) {
	repo := &fakeDiscountRepo{
		companyID:  "comp_1",
		companyPct: decimal.NewFromInt(15),
	}
	s := newTestDiscountService(repo)

	companyID, pct, err := s.CompanyDiscountForUser(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if companyID != "comp_1" {
		t.Errorf("companyID = %q, want comp_1", companyID)
	}
	if !pct.Equal(decimal.NewFromInt(15)) {
		t.Errorf("pct = %s, want 15", pct)
	}
}

// A misconfigured stored company percentage degrades to no discount
// instead of blocking checkout.
func TestCompanyDiscountMisconfiguredDegradesToZero(t *testing.T) {
	repo := &fakeDiscountRepo{
		companyID:  "comp_1",
		companyPct: decimal.NewFromInt(120),
	}
	s := newTestDiscountService(repo)

	_, pct, err := s.CompanyDiscountForUser(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pct.IsZero() {
		t.Errorf("pct = %s, want 0", pct)
	}
}
