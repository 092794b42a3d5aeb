package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/config"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/pricing"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/repository"
)

// MenuService handles the menu catalog: storefront reads (cache-aside) and
// admin writes (which invalidate the cache).
type MenuService struct {
	menuRepo repository.MenuRepository
	cache    repository.CatalogCache
	config   *config.Config
	logger   *zap.SugaredLogger
}

func NewMenuService(
	menuRepo repository.MenuRepository,
	cache repository.CatalogCache,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		cache:    cache,
		config:   cfg,
		logger:   logger,
	}
}

// GetMenu returns a menu offering with its add-on catalog.
func (s *MenuService) GetMenu(ctx context.Context, id string) (*models.MenuOffering, error) {
	if s.config.Features.EnableCatalogCaching {
		if menu, err := s.cache.GetMenu(ctx, id); err == nil && menu != nil {
			return menu, nil
		}
	}

	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.config.Features.EnableCatalogCaching {
		if err := s.cache.SetMenu(ctx, menu); err != nil {
			s.logger.Warnw("failed to cache menu", "menu_id", id, "error", err)
		}
	}

	return menu, nil
}

// ListMenus returns all live menu offerings.
func (s *MenuService) ListMenus(ctx context.Context) ([]*models.MenuOffering, error) {
	return s.menuRepo.List(ctx)
}

// CreateMenu creates a menu offering (admin operation).
func (s *MenuService) CreateMenu(ctx context.Context, req *models.CreateMenuRequest) (*models.MenuOffering, error) {
	if err := ValidateMenuInputs(req.Name, req.BasePrice, req.MinimumQuantity); err != nil {
		return nil, err
	}
	return s.menuRepo.Create(ctx, req)
}

// UpdateMenu edits a menu offering and drops it from cache.
func (s *MenuService) UpdateMenu(ctx context.Context, id string, req *models.UpdateMenuRequest) (*models.MenuOffering, error) {
	if err := ValidateMenuInputs(req.Name, req.BasePrice, req.MinimumQuantity); err != nil {
		return nil, err
	}

	menu, err := s.menuRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return menu, nil
}

// DeleteMenu soft-deletes a menu offering and drops it from cache.
func (s *MenuService) DeleteMenu(ctx context.Context, id string) error {
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// ReplaceAddOns swaps the add-on set of a menu offering (admin operation).
func (s *MenuService) ReplaceAddOns(ctx context.Context, menuID string, req *models.ReplaceAddOnsRequest) (*models.MenuOffering, error) {
	if err := s.menuRepo.ReplaceAddOns(ctx, menuID, req.AddOns); err != nil {
		return nil, err
	}

	s.invalidate(ctx, menuID)
	return s.GetMenu(ctx, menuID)
}

// QuoteUnitPrice computes the per-unit price of a customized selection of
// the given menu. Unknown add-on ids in the selection are ignored by the
// calculator; an unknown menu id is an error.
func (s *MenuService) QuoteUnitPrice(ctx context.Context, menuID string, selectedIDs []string) (decimal.Decimal, error) {
	menu, err := s.GetMenu(ctx, menuID)
	if err != nil {
		return decimal.Zero, err
	}

	return pricing.ComputeUnitPrice(menu.BasePrice, menu.AddOns, selectedIDs), nil
}

func (s *MenuService) invalidate(ctx context.Context, menuID string) {
	if !s.config.Features.EnableCatalogCaching {
		return
	}
	if err := s.cache.InvalidateMenu(ctx, menuID); err != nil {
		s.logger.Warnw("failed to invalidate menu cache", "menu_id", menuID, "error", err)
	}
}
