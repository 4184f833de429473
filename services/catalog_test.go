package services

import (
	"testing"

	"invoicegen-backend/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogAddItemValidation(t *testing.T) {
	catalog := NewCatalogService(setupTestDB(t))

	_, err := catalog.AddItem("", "desc", d("1.00"), "Hardware", "alice")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = catalog.AddItem("Widget", "desc", d("-1.0"), "Hardware", "alice")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestCatalogDuplicatePerOwner(t *testing.T) {
	catalog := NewCatalogService(setupTestDB(t))

	_, err := catalog.AddItem("Widget", "desc", d("10.00"), "Hardware", "alice")
	require.NoError(t, err)

	_, err = catalog.AddItem("Widget", "other desc", d("12.00"), "Hardware", "alice")
	assert.Equal(t, apperrors.KindDuplicate, apperrors.KindOf(err))

	// Same name under a different owner is a separate catalog.
	_, err = catalog.AddItem("Widget", "desc", d("10.00"), "Hardware", "bob")
	assert.NoError(t, err)
}

func TestCatalogListOwnerScopedAndOrdered(t *testing.T) {
	catalog := NewCatalogService(setupTestDB(t))

	seed := []struct{ name, category, owner string }{
		{"Zeta", "Tools", "alice"},
		{"Alpha", "Tools", "alice"},
		{"Bolt", "Hardware", "alice"},
		{"Hidden", "Hardware", "bob"},
	}
	for _, s := range seed {
		_, err := catalog.AddItem(s.name, "", d("1.00"), s.category, s.owner)
		require.NoError(t, err)
	}

	items, err := catalog.ListItems("alice")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Bolt", items[0].Name)
	assert.Equal(t, "Alpha", items[1].Name)
	assert.Equal(t, "Zeta", items[2].Name)
}

func TestCatalogDeleteAbsentIsNoop(t *testing.T) {
	catalog := NewCatalogService(setupTestDB(t))

	require.NoError(t, catalog.DeleteItem("nothing-here", "alice"))
}

func TestCatalogDeleteRemovesOnlyOwnersItem(t *testing.T) {
	catalog := NewCatalogService(setupTestDB(t))

	_, err := catalog.AddItem("Widget", "", d("10.00"), "Hardware", "alice")
	require.NoError(t, err)
	_, err = catalog.AddItem("Widget", "", d("10.00"), "Hardware", "bob")
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteItem("Widget", "alice"))

	aliceItems, err := catalog.ListItems("alice")
	require.NoError(t, err)
	assert.Empty(t, aliceItems)

	bobItems, err := catalog.ListItems("bob")
	require.NoError(t, err)
	assert.Len(t, bobItems, 1)
}

func TestCatalogCartPrefillCopiesNameNotDescription(t *testing.T) {
	catalog := NewCatalogService(setupTestDB(t))

	_, err := catalog.AddItem("Widget", "a very detailed description", d("9.99"), "Hardware", "alice")
	require.NoError(t, err)

	line, err := catalog.CartPrefill("Widget", "alice")
	require.NoError(t, err)

	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "Widget", line.Description)
	assert.True(t, line.UnitPrice.Equal(d("9.99")))
}

func TestCatalogCartPrefillMissingItem(t *testing.T) {
	catalog := NewCatalogService(setupTestDB(t))

	_, err := catalog.CartPrefill("nope", "alice")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
