package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a customer's configured menu selection. The unit price is
// frozen at add-to-cart time; later catalog edits do not reprice the cart.
type CartItem struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	MenuID           string          `json:"menu_id"`
	MenuName         string          `json:"menu_name"`
	Quantity         int             `json:"quantity"`
	SelectedAddOnIDs []string        `json:"selected_add_on_ids"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// LineTotal is the item's contribution to the order subtotal.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is a user's current set of cart items.
type Cart struct {
	UserID   string          `json:"user_id"`
	Items    []CartItem      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// AddCartItemRequest adds one customized menu selection to the cart.
type AddCartItemRequest struct {
	MenuID           string   `json:"menu_id" binding:"required"`
	Quantity         int      `json:"quantity" binding:"required"`
	SelectedAddOnIDs []string `json:"selected_add_on_ids"`
}

// UpdateCartItemRequest changes the quantity of an existing cart item.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
