package services

import (
	"errors"
	"strings"

	"invoicegen-backend/apperrors"
	"invoicegen-backend/models"

	"gorm.io/gorm"
)

// recentLimit caps the history view when no search term is given.
const recentLimit = 10

// SearchService reads finalized invoices. It never mutates, and it is not
// scoped to the calling admin: every admin can find every invoice.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// Search returns invoice headers most-recent-first. An empty term yields the
// 10 newest invoices; otherwise every invoice whose customer name contains
// the term, case-insensitively, with no limit.
func (s *SearchService) Search(term string) ([]models.Invoice, error) {
	query := s.db.Model(&models.Invoice{}).Order("date_created DESC")

	term = strings.TrimSpace(term)
	if term == "" {
		query = query.Limit(recentLimit)
	} else {
		query = query.Where("LOWER(customer_name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to search invoices", err)
	}
	return invoices, nil
}

// InvoiceDetail loads one invoice with its line items in cart order.
func (s *SearchService) InvoiceDetail(invoiceNumber string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("invoice_number = ?", invoiceNumber).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "Invoice not found")
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to load invoice", err)
	}
	return &invoice, nil
}
