package domain

import (
	"github.com/shopspring/decimal"
)

// CartLine is a single row in the cart: one purchasable entity and its
// quantity. ItemID is the variant id for variable products, otherwise the
// product id. A line for a variant always carries the parent ProductID,
// since order placement needs both identifiers.
type CartLine struct {
	ItemID       int64           `json:"item_id"`
	ProductID    int64           `json:"product_id"`
	Name         string          `json:"name"`
	VariantLabel string          `json:"variant_label,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Image        string          `json:"image,omitempty"`
	Quantity     int             `json:"quantity"`
}

func (l CartLine) IsVariant() bool { return l.ItemID != l.ProductID }

// LineTotal is UnitPrice × Quantity, exact to the currency's minor unit.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered collection of lines, unique by ItemID, owned by a
// single client session identified by Token.
type Cart struct {
	Token string     `json:"token"`
	Lines []CartLine `json:"lines"`
}

func NewCart(token string) *Cart {
	return &Cart{Token: token, Lines: []CartLine{}}
}

// Add appends a line or, when a line with the same ItemID already exists,
// increments its quantity by qty. A non-positive qty or a missing item id is
// rejected and the cart is left untouched.
func (c *Cart) Add(line CartLine, qty int) error {
	if qty < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be a positive integer"}
	}
	if line.ItemID <= 0 {
		return &ValidationError{Field: "item_id", Reason: "is required"}
	}
	if line.ProductID <= 0 {
		line.ProductID = line.ItemID
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == line.ItemID {
			c.Lines[i].Quantity += qty
			return nil
		}
	}
	line.Quantity = qty
	c.Lines = append(c.Lines, line)
	return nil
}

// UpdateQuantity sets a line's quantity directly. A quantity of zero or less
// removes the line. Updating an absent id is a no-op.
func (c *Cart) UpdateQuantity(itemID int64, qty int) {
	if qty <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity = qty
			return
		}
	}
}

// Remove deletes the line unconditionally; removing an absent id is a no-op.
func (c *Cart) Remove(itemID int64) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called exactly once per successful order.
func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
}

func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }

// AddToCartRequest is the add-to-cart payload. Selection is required for
// variable products and ignored for simple ones. A zero quantity defaults
// to one.
type AddToCartRequest struct {
	ProductID int64             `json:"product_id" binding:"required"`
	Quantity  int               `json:"quantity"`
	Selection map[string]string `json:"selection,omitempty"`
}

func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// Subtotal sums UnitPrice × Quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}
