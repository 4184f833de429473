package services

import (
	"fmt"
	"testing"
	"time"

	"invoicegen-backend/apperrors"
	"invoicegen-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedInvoice(t *testing.T, db *gorm.DB, number, customer, createdBy string, created time.Time) {
	t.Helper()
	inv := models.Invoice{
		InvoiceNumber: number,
		CustomerName:  customer,
		CustomerPhone: "5550000",
		Subtotal:      d("10.00"),
		TaxAmount:     d("1.00"),
		TotalAmount:   d("11.00"),
		CreatedBy:     createdBy,
		Status:        "Paid",
		DateCreated:   created,
	}
	require.NoError(t, db.Create(&inv).Error)
}

func TestSearchEmptyTermReturnsTenNewest(t *testing.T) {
	db := setupTestDB(t)
	search := NewSearchService(db)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		seedInvoice(t, db,
			fmt.Sprintf("INV-2024010112%04d", i),
			fmt.Sprintf("Customer %02d", i),
			"alice",
			base.Add(time.Duration(i)*time.Minute))
	}

	results, err := search.Search("")
	require.NoError(t, err)
	require.Len(t, results, 10)

	// Newest first.
	assert.Equal(t, "Customer 14", results[0].CustomerName)
	assert.Equal(t, "Customer 05", results[9].CustomerName)
}

func TestSearchSubstringUnlimitedCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	search := NewSearchService(db)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		seedInvoice(t, db,
			fmt.Sprintf("INV-S%04d", i),
			fmt.Sprintf("John Smith %02d", i),
			"alice",
			base.Add(time.Duration(i)*time.Minute))
	}
	seedInvoice(t, db, "INV-OTHER", "Mary Jones", "bob", base.Add(time.Hour))

	results, err := search.Search("SMITH")
	require.NoError(t, err)
	require.Len(t, results, 12, "substring search has no limit")

	assert.Equal(t, "John Smith 11", results[0].CustomerName)
	assert.Equal(t, "John Smith 00", results[11].CustomerName)
}

func TestSearchIsNotScopedToCreator(t *testing.T) {
	db := setupTestDB(t)
	search := NewSearchService(db)

	now := time.Now()
	seedInvoice(t, db, "INV-A", "Shared Customer", "alice", now)
	seedInvoice(t, db, "INV-B", "Shared Customer", "bob", now.Add(time.Second))

	results, err := search.Search("shared")
	require.NoError(t, err)
	assert.Len(t, results, 2, "every admin sees every invoice")
}

func TestInvoiceDetailNotFound(t *testing.T) {
	search := NewSearchService(setupTestDB(t))

	_, err := search.InvoiceDetail("INV-MISSING")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
