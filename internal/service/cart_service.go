package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/pricing"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/repository"
)

// CartService manages per-user carts. The unit price of an item is computed
// once when it enters the cart and frozen; quantity edits never reprice it.
type CartService struct {
	cartRepo repository.CartRepository
	menus    *MenuService
	logger   *zap.SugaredLogger
}

func NewCartService(cartRepo repository.CartRepository, menus *MenuService, logger *zap.SugaredLogger) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		menus:    menus,
		logger:   logger,
	}
}

// GetCart returns the user's cart with its running subtotal.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	items, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart := &models.Cart{
		UserID:   userID,
		Items:    make([]models.CartItem, 0, len(items)),
		Subtotal: decimal.Zero,
	}
	for _, item := range items {
		cart.Items = append(cart.Items, *item)
		cart.Subtotal = cart.Subtotal.Add(item.LineTotal())
	}

	return cart, nil
}

// AddItem adds a customized menu selection to the cart. A quantity below
// the offering's minimum is rejected with a user-visible message and the
// cart is left untouched.
func (s *CartService) AddItem(ctx context.Context, userID string, req *models.AddCartItemRequest) (*models.CartItem, error) {
	menu, err := s.menus.GetMenu(ctx, req.MenuID)
	if err == apperrors.ErrNotFound {
		return nil, apperrors.NewValidationError("menu_id", "unknown menu")
	}
	if err != nil {
		return nil, err
	}

	if req.Quantity < menu.MinimumQuantity {
		return nil, apperrors.NewValidationError("quantity",
			fmt.Sprintf("minimum order quantity for %s is %d", menu.Name, menu.MinimumQuantity))
	}

	now := time.Now()
	item := &models.CartItem{
		ID:               "cart_" + uuid.NewString(),
		UserID:           userID,
		MenuID:           menu.ID,
		MenuName:         menu.Name,
		Quantity:         req.Quantity,
		SelectedAddOnIDs: req.SelectedAddOnIDs,
		UnitPrice:        pricing.ComputeUnitPrice(menu.BasePrice, menu.AddOns, req.SelectedAddOnIDs),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if item.SelectedAddOnIDs == nil {
		item.SelectedAddOnIDs = []string{}
	}

	if err := s.cartRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Infow("cart item added",
		"user_id", userID,
		"menu_id", menu.ID,
		"quantity", item.Quantity,
		"unit_price", item.UnitPrice)
	return item, nil
}

// UpdateQuantity changes the quantity of a cart item. A quantity below the
// offering's minimum is rejected and the stored quantity stays as it was,
// so the client can snap back to the last valid value.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*models.CartItem, error) {
	item, err := s.cartRepo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	minimum := 1
	menuName := item.MenuName
	menu, err := s.menus.GetMenu(ctx, item.MenuID)
	switch err {
	case nil:
		minimum = menu.MinimumQuantity
		menuName = menu.Name
	case apperrors.ErrNotFound:
		// The offering was retired after the item entered the cart; the
		// frozen price stays valid and only a positive quantity is required.
	default:
		return nil, err
	}

	if quantity < minimum {
		return nil, apperrors.NewValidationError("quantity",
			fmt.Sprintf("minimum order quantity for %s is %d", menuName, minimum))
	}

	if err := s.cartRepo.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		return nil, err
	}

	item.Quantity = quantity
	return item, nil
}

// RemoveItem deletes one item from the user's cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	return s.cartRepo.DeleteItem(ctx, userID, itemID)
}
