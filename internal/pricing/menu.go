// Package pricing holds the order cost computation engine: the menu
// unit-price calculator and the order tax/fee breakdown calculator. Both
// are pure functions over decimal values with no I/O and no ambient state;
// they are safe to call from concurrent requests without coordination.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

// ComputeUnitPrice returns the per-unit price of a customized menu
// selection. The base price already includes every default add-on, so the
// adjustment is the sum of selected non-default add-ons minus the sum of
// deselected defaults. Selected ids outside the catalog are ignored. No
// floor is applied: deselecting enough defaults can drive the result
// negative.
func ComputeUnitPrice(basePrice decimal.Decimal, addOns []models.AddOnOption, selectedIDs []string) decimal.Decimal {
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	adjustment := decimal.Zero
	for _, a := range addOns {
		switch {
		case selected[a.ID] && !a.IsDefault:
			adjustment = adjustment.Add(a.Price)
		case !selected[a.ID] && a.IsDefault:
			adjustment = adjustment.Sub(a.Price)
		}
	}

	return basePrice.Add(adjustment)
}

// Selection is an in-progress customization of one menu offering. It
// recomputes the unit price from scratch after every toggle rather than
// adjusting incrementally, so the price for a given selection set never
// depends on the toggle sequence that produced it.
type Selection struct {
	basePrice decimal.Decimal
	addOns    []models.AddOnOption
	selected  map[string]bool
}

// NewSelection opens a customization of the given offering with all default
// add-ons selected, so the initial unit price equals the base price exactly.
func NewSelection(offering *models.MenuOffering) *Selection {
	s := &Selection{
		basePrice: offering.BasePrice,
		addOns:    offering.AddOns,
		selected:  make(map[string]bool, len(offering.AddOns)),
	}
	for _, a := range offering.AddOns {
		if a.IsDefault {
			s.selected[a.ID] = true
		}
	}
	return s
}

// Toggle flips membership of the given add-on id in the selection. Ids not
// in the offering's catalog still toggle but never affect the price.
func (s *Selection) Toggle(id string) {
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
}

// SelectedIDs returns the current selection.
func (s *Selection) SelectedIDs() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	return ids
}

// UnitPrice computes the current per-unit price from the full selection.
func (s *Selection) UnitPrice() decimal.Decimal {
	return ComputeUnitPrice(s.basePrice, s.addOns, s.SelectedIDs())
}
