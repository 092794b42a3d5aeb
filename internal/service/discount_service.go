package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/config"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/metrics"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/repository"
)

// DiscountService validates discount codes and resolves company discounts.
// It gates the inputs of the breakdown calculator: a rejected code never
// reaches the pricing math and never mutates any existing state.
type DiscountService struct {
	discountRepo repository.DiscountRepository
	cache        repository.CatalogCache
	config       *config.Config
	logger       *zap.SugaredLogger

	// now is swappable in tests.
	now func() time.Time
}

func NewDiscountService(
	discountRepo repository.DiscountRepository,
	cache repository.CatalogCache,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) *DiscountService {
	return &DiscountService{
		discountRepo: discountRepo,
		cache:        cache,
		config:       cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// ValidateCode accepts a code only if it exists, is marked active and the
// current time falls within its validity window. Anything else yields a
// ValidationError with a user-visible message.
func (s *DiscountService) ValidateCode(ctx context.Context, code string) (*models.DiscountCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.NewValidationError("discount_code", "discount code is required")
	}

	dc, err := s.lookupCode(ctx, code)
	if err == apperrors.ErrNotFound {
		metrics.DiscountCodesRejected.Inc()
		return nil, apperrors.NewValidationError("discount_code", "unknown discount code")
	}
	if err != nil {
		return nil, err
	}

	if !dc.Active {
		metrics.DiscountCodesRejected.Inc()
		return nil, apperrors.NewValidationError("discount_code", "discount code is no longer active")
	}

	now := s.now()
	if now.Before(dc.ValidFrom) {
		metrics.DiscountCodesRejected.Inc()
		return nil, apperrors.NewValidationError("discount_code", "discount code is not valid yet")
	}
	if now.After(dc.ValidUntil) {
		metrics.DiscountCodesRejected.Inc()
		return nil, apperrors.NewValidationError("discount_code", "discount code has expired")
	}

	if err := validatePercentage("discount_percentage", dc.Percentage); err != nil {
		// Bad stored data; reject rather than feed the calculator.
		s.logger.Warnw("discount code with out-of-range percentage",
			"code_id", dc.ID, "percentage", dc.Percentage)
		return nil, apperrors.NewValidationError("discount_code", "discount code is misconfigured")
	}

	return dc, nil
}

func (s *DiscountService) lookupCode(ctx context.Context, code string) (*models.DiscountCode, error) {
	if s.config.Features.EnableCatalogCaching {
		if dc, err := s.cache.GetDiscountCode(ctx, code); err == nil && dc != nil {
			return dc, nil
		}
	}

	dc, err := s.discountRepo.GetCodeByValue(ctx, code)
	if err != nil {
		return nil, err
	}

	if s.config.Features.EnableCatalogCaching {
		if err := s.cache.SetDiscountCode(ctx, dc); err != nil {
			s.logger.Warnw("failed to cache discount code", "error", err)
		}
	}

	return dc, nil
}

// CompanyDiscountForUser resolves the flat company discount percentage for
// the user. A misconfigured stored percentage is treated as no discount so
// checkout keeps working.
func (s *DiscountService) CompanyDiscountForUser(ctx context.Context, userID string) (string, decimal.Decimal, error) {
	companyID, pct, err := s.discountRepo.CompanyDiscountForUser(ctx, userID)
	if err != nil {
		return "", decimal.Zero, err
	}

	if err := validatePercentage("company_discount_percentage", pct); err != nil {
		s.logger.Warnw("company with out-of-range discount percentage",
			"company_id", companyID, "percentage", pct)
		return companyID, decimal.Zero, nil
	}

	return companyID, pct, nil
}
