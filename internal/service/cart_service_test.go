package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

func breakfastMenu() *models.MenuOffering {
	return &models.MenuOffering{
		ID:              "menu_breakfast",
		Name:            "Breakfast Basket",
		BasePrice:       decimal.NewFromInt(100),
		MinimumQuantity: 5,
		AddOns: []models.AddOnOption{
			{ID: "addon_juice", Name: "Juice", Price: decimal.NewFromInt(10), IsDefault: true},
			{ID: "addon_cake", Name: "Cake", Price: decimal.NewFromInt(20), IsDefault: false},
		},
	}
}

func newTestCartService(menus map[string]*models.MenuOffering) (*CartService, *fakeCartRepo) {
	cartRepo := newFakeCartRepo()
	menuService := NewMenuService(&fakeMenuRepo{menus: menus}, nil, testConfig(), testLogger())
	return NewCartService(cartRepo, menuService, testLogger()), cartRepo
}

func TestAddItemFreezesUnitPrice(t *testing.T) {
	s, _ := newTestCartService(map[string]*models.MenuOffering{"menu_breakfast": breakfastMenu()})

	// Deselect the default juice, add the cake: 100 - 10 + 20.
	item, err := s.AddItem(context.Background(), "user_1", &models.AddCartItemRequest{
		MenuID:           "menu_breakfast",
		Quantity:         5,
		SelectedAddOnIDs: []string{"addon_cake"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := decimal.NewFromInt(110)
	if !item.UnitPrice.Equal(want) {
		t.Errorf("UnitPrice = %s, want %s", item.UnitPrice, want)
	}
	if !item.LineTotal().Equal(decimal.NewFromInt(550)) {
		t.Errorf("LineTotal = %s, want 550", item.LineTotal())
	}
}

func TestAddItemUnknownMenu(t *testing.T) {
	s, cartRepo := newTestCartService(map[string]*models.MenuOffering{})

	_, err := s.AddItem(context.Background(), "user_1", &models.AddCartItemRequest{
		MenuID:   "menu_ghost",
		Quantity: 5,
	})

	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Field != "menu_id" {
		t.Errorf("field = %q, want menu_id", vErr.Field)
	}

	items, _ := cartRepo.GetByUserID(context.Background(), "user_1")
	if len(items) != 0 {
		t.Errorf("cart has %d items, want 0", len(items))
	}
}

func TestAddItemBelowMinimumQuantity(t *testing.T) {
	s, cartRepo := newTestCartService(map[string]*models.MenuOffering{"menu_breakfast": breakfastMenu()})

	_, err := s.AddItem(context.Background(), "user_1", &models.AddCartItemRequest{
		MenuID:   "menu_breakfast",
		Quantity: 3,
	})

	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Field != "quantity" {
		t.Errorf("field = %q, want quantity", vErr.Field)
	}
	if !strings.Contains(vErr.Message, "Breakfast Basket") || !strings.Contains(vErr.Message, "5") {
		t.Errorf("message %q should name the offering and its minimum", vErr.Message)
	}

	items, _ := cartRepo.GetByUserID(context.Background(), "user_1")
	if len(items) != 0 {
		t.Errorf("cart has %d items, want 0 after rejection", len(items))
	}
}

func TestUpdateQuantityBelowMinimumKeepsStoredValue(t *testing.T) {
	s, cartRepo := newTestCartService(map[string]*models.MenuOffering{"menu_breakfast": breakfastMenu()})

	item, err := s.AddItem(context.Background(), "user_1", &models.AddCartItemRequest{
		MenuID:   "menu_breakfast",
		Quantity: 8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.UpdateQuantity(context.Background(), "user_1", item.ID, 2); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	stored, err := cartRepo.GetItem(context.Background(), "user_1", item.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Quantity != 8 {
		t.Errorf("Quantity = %d, want 8 after rejected update", stored.Quantity)
	}
}

func TestUpdateQuantityDoesNotReprice(t *testing.T) {
	menus := map[string]*models.MenuOffering{"menu_breakfast": breakfastMenu()}
	s, cartRepo := newTestCartService(menus)

	item, err := s.AddItem(context.Background(), "user_1", &models.AddCartItemRequest{
		MenuID:   "menu_breakfast",
		Quantity: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frozen := item.UnitPrice

	// Admin raises the base price after the item entered the cart.
	menus["menu_breakfast"].BasePrice = decimal.NewFromInt(999)

	updated, err := s.UpdateQuantity(context.Background(), "user_1", item.ID, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 10 {
		t.Errorf("Quantity = %d, want 10", updated.Quantity)
	}
	if !updated.UnitPrice.Equal(frozen) {
		t.Errorf("UnitPrice = %s, want frozen %s", updated.UnitPrice, frozen)
	}

	stored, _ := cartRepo.GetItem(context.Background(), "user_1", item.ID)
	if !stored.UnitPrice.Equal(frozen) {
		t.Errorf("stored UnitPrice = %s, want frozen %s", stored.UnitPrice, frozen)
	}
}

// When the offering was retired after the item entered the cart, any
// positive quantity is accepted and the frozen price stays.
func TestUpdateQuantityRetiredMenu(t *testing.T) {
	menus := map[string]*models.MenuOffering{"menu_breakfast": breakfastMenu()}
	s, _ := newTestCartService(menus)

	item, err := s.AddItem(context.Background(), "user_1", &models.AddCartItemRequest{
		MenuID:   "menu_breakfast",
		Quantity: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	delete(menus, "menu_breakfast")

	updated, err := s.UpdateQuantity(context.Background(), "user_1", item.ID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", updated.Quantity)
	}
}

func TestGetCartSubtotal(t *testing.T) {
	s, _ := newTestCartService(map[string]*models.MenuOffering{"menu_breakfast": breakfastMenu()})

	if _, err := s.AddItem(context.Background(), "user_1", &models.AddCartItemRequest{
		MenuID:   "menu_breakfast",
		Quantity: 5,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.AddItem(context.Background(), "user_1", &models.AddCartItemRequest{
		MenuID:           "menu_breakfast",
		Quantity:         10,
		SelectedAddOnIDs: []string{"addon_juice", "addon_cake"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart, err := s.GetCart(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 5*100 + 10*120
	want := decimal.NewFromInt(1700)
	if !cart.Subtotal.Equal(want) {
		t.Errorf("Subtotal = %s, want %s", cart.Subtotal, want)
	}
}
