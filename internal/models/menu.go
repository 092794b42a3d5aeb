package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuOffering is a purchasable catering menu template. Its base price
// already includes every add-on flagged as default; deselecting a default
// subtracts that add-on's price from the unit price.
type MenuOffering struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	MinimumQuantity int             `json:"minimum_quantity"`
	Vegan           bool            `json:"vegan"`
	AddOns          []AddOnOption   `json:"add_ons,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// AddOnOption is an add-on as attached to one menu offering. IsDefault is a
// property of the menu/add-on relationship, not of the add-on itself.
type AddOnOption struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Vegan       bool            `json:"vegan"`
	Category    *string         `json:"category,omitempty"`
	IsDefault   bool            `json:"is_default"`
}

// DefaultAddOnIDs returns the ids of the offering's default add-ons, which
// is also the initial selection when a customization view opens.
func (m *MenuOffering) DefaultAddOnIDs() []string {
	ids := make([]string, 0, len(m.AddOns))
	for _, a := range m.AddOns {
		if a.IsDefault {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// CreateMenuRequest is the admin payload for creating a menu offering.
type CreateMenuRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	BasePrice       decimal.Decimal `json:"base_price"`
	MinimumQuantity int             `json:"minimum_quantity"`
	Vegan           bool            `json:"vegan"`
}

// UpdateMenuRequest is the admin payload for editing a menu offering.
type UpdateMenuRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	BasePrice       decimal.Decimal `json:"base_price"`
	MinimumQuantity int             `json:"minimum_quantity"`
	Vegan           bool            `json:"vegan"`
}

// AddOnAssignment attaches one add-on to a menu offering.
type AddOnAssignment struct {
	AddOnID   string `json:"add_on_id" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

// ReplaceAddOnsRequest replaces the full add-on set of a menu offering.
type ReplaceAddOnsRequest struct {
	AddOns []AddOnAssignment `json:"add_ons"`
}
