package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

// MenuRepository persists the menu catalog.
type MenuRepository interface {
	GetByID(ctx context.Context, id string) (*models.MenuOffering, error)
	List(ctx context.Context) ([]*models.MenuOffering, error)
	Create(ctx context.Context, req *models.CreateMenuRequest) (*models.MenuOffering, error)
	Update(ctx context.Context, id string, req *models.UpdateMenuRequest) (*models.MenuOffering, error)
	Delete(ctx context.Context, id string) error
	ReplaceAddOns(ctx context.Context, menuID string, addOns []models.AddOnAssignment) error
}

// DiscountRepository reads discount codes and company discount settings.
type DiscountRepository interface {
	GetCodeByValue(ctx context.Context, code string) (*models.DiscountCode, error)
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	CompanyDiscountForUser(ctx context.Context, userID string) (string, decimal.Decimal, error)
}

// CartRepository persists per-user carts.
type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]*models.CartItem, error)
	GetItem(ctx context.Context, userID, itemID string) (*models.CartItem, error)
	AddItem(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error
	DeleteItem(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

// OrderRepository persists placed orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context, filter *models.OrderListFilter) ([]*models.Order, int, error)
	UpdateStatus(ctx context.Context, id string, req *models.UpdateOrderStatusRequest) (*models.Order, error)
	SetInvoiceID(ctx context.Context, orderID, invoiceID string) error
}

// CatalogCache caches menu offerings and discount-code lookups.
type CatalogCache interface {
	GetMenu(ctx context.Context, id string) (*models.MenuOffering, error)
	SetMenu(ctx context.Context, menu *models.MenuOffering) error
	InvalidateMenu(ctx context.Context, id string) error
	GetDiscountCode(ctx context.Context, code string) (*models.DiscountCode, error)
	SetDiscountCode(ctx context.Context, code *models.DiscountCode) error
}
