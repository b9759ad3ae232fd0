package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

// Totals are the amounts shown at order time. Shipping is a configured flat
// rate; no rate shopping happens here.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives subtotal, flat shipping, and total from the cart's
// current contents. Pure; exact to the currency's minor unit.
func ComputeTotals(c *domain.Cart, shippingFlatRate decimal.Decimal) Totals {
	subtotal := c.Subtotal()
	return Totals{
		Subtotal: subtotal,
		Shipping: shippingFlatRate,
		Total:    subtotal.Add(shippingFlatRate),
	}
}
