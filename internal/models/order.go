package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through its lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusInvoiced  OrderStatus = "invoiced"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderTaxBreakdown is the itemized tax/fee/discount decomposition of an
// order total. It is computed once at checkout and persisted verbatim so
// that historical orders are unaffected by later rate changes. Every
// intermediate is retained, not just the total.
type OrderTaxBreakdown struct {
	SubtotalPreTax decimal.Decimal `json:"subtotal_pre_tax"`
	ProductTax     decimal.Decimal `json:"product_tax"`

	// ProductDiscount is tracked for display when a discount code targets
	// the products bucket. It is never subtracted from the subtotal or the
	// product tax in the total.
	ProductDiscount decimal.Decimal `json:"product_discount"`

	AdminFeeAmount   decimal.Decimal `json:"admin_fee_amount"`
	AdminFeeTax      decimal.Decimal `json:"admin_fee_tax"`
	AdminFeeDiscount decimal.Decimal `json:"admin_fee_discount"`

	DeliveryFeeAmount   decimal.Decimal `json:"delivery_fee_amount"`
	DeliveryFeeTax      decimal.Decimal `json:"delivery_fee_tax"`
	DeliveryFeeDiscount decimal.Decimal `json:"delivery_fee_discount"`

	TotalAmount decimal.Decimal `json:"total_amount"`
	RateVersion string          `json:"rate_version"`
}

// OrderLineItem is the immutable copy of a cart item taken at checkout.
type OrderLineItem struct {
	MenuID           string          `json:"menu_id"`
	MenuName         string          `json:"menu_name"`
	Quantity         int             `json:"quantity"`
	SelectedAddOnIDs []string        `json:"selected_add_on_ids"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	LineTotal        decimal.Decimal `json:"line_total"`
}

// Address is the delivery address captured at checkout.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Order is a placed catering order.
type Order struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	CompanyID       string            `json:"company_id,omitempty"`
	Status          OrderStatus       `json:"status"`
	Items           []OrderLineItem   `json:"items"`
	Breakdown       OrderTaxBreakdown `json:"breakdown"`
	DiscountCode    string            `json:"discount_code,omitempty"`
	DeliveryAddress Address           `json:"delivery_address"`
	DeliveryDate    time.Time         `json:"delivery_date"`
	ContactName     string            `json:"contact_name"`
	ContactEmail    string            `json:"contact_email"`
	ContactPhone    string            `json:"contact_phone,omitempty"`
	InvoiceID       string            `json:"invoice_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// CheckoutRequest places an order from the user's current cart.
type CheckoutRequest struct {
	DiscountCode    string    `json:"discount_code"`
	DeliveryAddress Address   `json:"delivery_address"`
	DeliveryDate    time.Time `json:"delivery_date"`
	ContactName     string    `json:"contact_name"`
	ContactEmail    string    `json:"contact_email"`
	ContactPhone    string    `json:"contact_phone"`
}

// UpdateOrderStatusRequest moves an order to a new status.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
	Notes  string      `json:"notes"`
}

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	UserID string
	Status *OrderStatus
	Limit  int
	Offset int
}
