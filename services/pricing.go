package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/utils"
)

// LineRequest is one cart entry as submitted by the caller.
type LineRequest struct {
	MenuItemID string
	Quantity   int
	Notes      *string
}

// PricedLines is a cart expanded into order line snapshots with its bill totals.
type PricedLines struct {
	Lines  []models.OrderLine
	Totals models.Totals
}

// PriceLines resolves every line against the catalog, in order, and computes the
// bill totals. It fails on the first malformed or unknown menu item id.
func PriceLines(ctx context.Context, catalog CatalogStore, lines []LineRequest, discount float64) (*PricedLines, error) {
	var subtotal, taxTotal float64
	priced := make([]models.OrderLine, 0, len(lines))

	for _, line := range lines {
		if !models.IsValidID(line.MenuItemID) {
			return nil, ErrInvalidID
		}

		item, err := catalog.FindMenuItem(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrMenuItemNotFound
			}
			return nil, fmt.Errorf("failed to find menu item %s: %w", line.MenuItemID, err)
		}

		lineSubtotal := item.Price * float64(line.Quantity)
		subtotal += lineSubtotal
		taxTotal += lineSubtotal * item.GSTRate

		priced = append(priced, models.OrderLine{
			MenuItemID: line.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   line.Quantity,
			Notes:      line.Notes,
			GSTRate:    item.GSTRate,
		})
	}

	return &PricedLines{
		Lines:  priced,
		Totals: ApplyDiscount(subtotal, taxTotal, discount),
	}, nil
}

// ApplyDiscount takes the discount off the subtotal, clamped at zero, and scales
// the tax by the cart's overall tax ratio instead of re-taxing each line. Only
// the returned figures are rounded.
func ApplyDiscount(subtotal, taxTotal, discount float64) models.Totals {
	afterDiscount := math.Max(0, subtotal-discount)

	taxRatio := 0.0
	if subtotal != 0 {
		taxRatio = taxTotal / subtotal
	}
	taxDiscounted := afterDiscount * taxRatio
	grandTotal := afterDiscount + taxDiscounted

	return models.Totals{
		Subtotal:   utils.RoundMoney(afterDiscount),
		TaxTotal:   utils.RoundMoney(taxDiscounted),
		GrandTotal: utils.RoundMoney(grandTotal),
	}
}
