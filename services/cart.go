package services

import (
	"invoicegen-backend/apperrors"

	"github.com/shopspring/decimal"
)

// round2 fixes the money rounding policy for the whole core: two decimal
// places, half-to-even. Every rounding point (line total, tax amount,
// grand total) goes through here so the policy cannot drift.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// LineItem is one row of an in-progress invoice. LineTotal is derived on
// insertion and never edited in place.
type LineItem struct {
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// PendingLine is the single entry editor: the line being typed before it is
// added to the cart. Resetting it is distinct from clearing the cart.
type PendingLine struct {
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Reset restores the editor defaults (quantity 1, empty description,
// zero price).
func (p *PendingLine) Reset() {
	p.Quantity = 1
	p.Description = ""
	p.UnitPrice = decimal.Zero
}

// Totals is the derived money state of a cart.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Total     decimal.Decimal `json:"total"`
}

// Cart is the mutable set of line items and tax rate before finalization.
// One cart per session; nothing here is process-global.
type Cart struct {
	lines   []LineItem
	taxRate decimal.Decimal
}

func NewCart() *Cart {
	return &Cart{}
}

// AddLine validates the entry and prepends it, newest first. The line total
// is quantity times unit price rounded to two places.
func (c *Cart) AddLine(quantity int, description string, unitPrice decimal.Decimal) error {
	if description == "" {
		return apperrors.New(apperrors.KindValidation, "Description cannot be empty")
	}
	if quantity <= 0 {
		return apperrors.New(apperrors.KindValidation, "Quantity must be greater than 0")
	}
	if unitPrice.IsNegative() {
		return apperrors.New(apperrors.KindValidation, "Price cannot be negative")
	}

	line := LineItem{
		Quantity:    quantity,
		Description: description,
		UnitPrice:   unitPrice,
		LineTotal:   round2(unitPrice.Mul(decimal.NewFromInt(int64(quantity)))),
	}
	c.lines = append([]LineItem{line}, c.lines...)
	return nil
}

// RemoveLine deletes the line at index in display order.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return apperrors.Newf(apperrors.KindValidation, "no line item at position %d", index)
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Clear discards every line and resets the tax rate: a fresh invoice.
func (c *Cart) Clear() {
	c.lines = nil
	c.taxRate = decimal.Zero
}

// SetTaxRate stores the tax rate as a percentage.
func (c *Cart) SetTaxRate(percent decimal.Decimal) error {
	if percent.IsNegative() {
		return apperrors.New(apperrors.KindValidation, "Tax rate cannot be negative")
	}
	c.taxRate = percent
	return nil
}

func (c *Cart) TaxRate() decimal.Decimal { return c.taxRate }

// Lines returns the items in display order (newest first).
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

// ComputeTotals recomputes subtotal, tax and total from scratch on every
// call; nothing is cached between mutations.
func (c *Cart) ComputeTotals() Totals {
	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.LineTotal)
	}
	tax := round2(subtotal.Mul(c.taxRate).Div(decimal.NewFromInt(100)))
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     round2(subtotal.Add(tax)),
	}
}
