package services

import (
	"testing"

	"invoicegen-backend/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCartAddLineValidation(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		desc     string
		price    decimal.Decimal
	}{
		{"empty description", 1, "", d("10.00")},
		{"zero quantity", 0, "Widget", d("10.00")},
		{"negative quantity", -2, "Widget", d("10.00")},
		{"negative price", 1, "Widget", d("-0.01")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cart := NewCart()
			err := cart.AddLine(tc.quantity, tc.desc, tc.price)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
			assert.Equal(t, 0, cart.Len())
		})
	}
}

func TestCartTotalsExample(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddLine(2, "Widget", d("10.00")))
	require.NoError(t, cart.AddLine(1, "Gadget", d("5.00")))
	require.NoError(t, cart.SetTaxRate(d("10")))

	totals := cart.ComputeTotals()
	assert.True(t, totals.Subtotal.Equal(d("25.00")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(d("2.50")), "tax = %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(d("27.50")), "total = %s", totals.Total)
}

func TestCartSubtotalIndependentOfOrder(t *testing.T) {
	forward := NewCart()
	require.NoError(t, forward.AddLine(3, "A", d("1.99")))
	require.NoError(t, forward.AddLine(7, "B", d("0.35")))
	require.NoError(t, forward.AddLine(1, "C", d("120.50")))

	reverse := NewCart()
	require.NoError(t, reverse.AddLine(1, "C", d("120.50")))
	require.NoError(t, reverse.AddLine(7, "B", d("0.35")))
	require.NoError(t, reverse.AddLine(3, "A", d("1.99")))

	assert.True(t, forward.ComputeTotals().Subtotal.Equal(reverse.ComputeTotals().Subtotal))
}

func TestCartNewestLineFirst(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddLine(1, "first", d("1.00")))
	require.NoError(t, cart.AddLine(1, "second", d("2.00")))

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "second", lines[0].Description)
	assert.Equal(t, "first", lines[1].Description)
}

func TestCartRemoveLine(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddLine(1, "keep", d("1.00")))
	require.NoError(t, cart.AddLine(1, "drop", d("2.00")))

	require.NoError(t, cart.RemoveLine(0))
	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, "keep", cart.Lines()[0].Description)

	err := cart.RemoveLine(5)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestCartClearResetsEverything(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddLine(2, "Widget", d("10.00")))
	require.NoError(t, cart.SetTaxRate(d("8.25")))

	cart.Clear()

	assert.Equal(t, 0, cart.Len())
	assert.True(t, cart.TaxRate().IsZero())
	totals := cart.ComputeTotals()
	assert.True(t, totals.Total.IsZero())
}

func TestCartNegativeTaxRateRejected(t *testing.T) {
	cart := NewCart()
	err := cart.SetTaxRate(d("-1"))
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestCartTotalsRecomputedAfterMutation(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.SetTaxRate(d("10")))
	require.NoError(t, cart.AddLine(1, "Widget", d("10.00")))
	assert.True(t, cart.ComputeTotals().Total.Equal(d("11.00")))

	require.NoError(t, cart.RemoveLine(0))
	assert.True(t, cart.ComputeTotals().Total.IsZero())
}

func TestCartLineTotalRounding(t *testing.T) {
	cart := NewCart()
	// 3 * 0.415 = 1.245 -> 1.24 under half-to-even
	require.NoError(t, cart.AddLine(3, "Widget", d("0.415")))
	assert.True(t, cart.Lines()[0].LineTotal.Equal(d("1.24")), "got %s", cart.Lines()[0].LineTotal)
}

func TestPendingLineReset(t *testing.T) {
	pending := PendingLine{Quantity: 4, Description: "Widget", UnitPrice: d("9.99")}
	pending.Reset()

	assert.Equal(t, 1, pending.Quantity)
	assert.Empty(t, pending.Description)
	assert.True(t, pending.UnitPrice.IsZero())
}
