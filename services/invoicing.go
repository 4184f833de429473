package services

import (
	"errors"
	"time"

	"invoicegen-backend/apperrors"
	"invoicegen-backend/config"
	"invoicegen-backend/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// InvoicingService turns a cart plus customer identity into a durable,
// numbered invoice and triggers document rendering afterwards.
type InvoicingService struct {
	db       *gorm.DB
	renderer Renderer
	settings *config.SettingsStore

	// now is injectable so tests can force numbering collisions.
	now func() time.Time
}

func NewInvoicingService(db *gorm.DB, renderer Renderer, settings *config.SettingsStore) *InvoicingService {
	return &InvoicingService{
		db:       db,
		renderer: renderer,
		settings: settings,
		now:      time.Now,
	}
}

// FinalizeResult reports the committed invoice plus the rendering outcome.
// DocumentName is empty and RenderWarning set when rendering failed; the
// invoice itself is durable either way.
type FinalizeResult struct {
	Invoice       *models.Invoice `json:"invoice"`
	DocumentName  string          `json:"documentName,omitempty"`
	RenderWarning string          `json:"renderWarning,omitempty"`
}

// Finalize validates, numbers and persists the cart as an invoice. The
// precondition checks run in a fixed order and the first failure wins; no
// partial invoice is ever created.
func (s *InvoicingService) Finalize(cart *Cart, customer models.Customer, createdBy string) (*FinalizeResult, error) {
	if customer.FirstName == "" || customer.LastName == "" {
		return nil, apperrors.New(apperrors.KindValidation, "First name and last name are required")
	}
	if customer.Phone == "" && customer.Email == "" {
		return nil, apperrors.New(apperrors.KindValidation, "Either phone or email is required")
	}
	if cart.Len() == 0 {
		return nil, apperrors.New(apperrors.KindValidation, "Invoice must have at least one item")
	}

	now := s.now()
	totals := cart.ComputeTotals()
	lines := cart.Lines()

	invoice := models.Invoice{
		InvoiceNumber: "INV-" + now.Format("20060102150405"),
		CustomerName:  customer.FullName(),
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		Subtotal:      totals.Subtotal,
		TaxRate:       cart.TaxRate(),
		TaxAmount:     totals.TaxAmount,
		TotalAmount:   totals.Total,
		CreatedBy:     createdBy,
		Status:        "Paid",
		DateCreated:   now,
	}

	items := make([]models.InvoiceItem, len(lines))
	for i, line := range lines {
		items[i] = models.InvoiceItem{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalPrice:  line.LineTotal,
			Position:    i,
		}
	}

	// Header and items commit together or not at all. A generated number is
	// not collision-proof within the same second; the unique index is the
	// backstop and the loser sees a storage error, never a silent overwrite.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(&invoice).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Wrap(apperrors.KindStorage, "invoice number already exists", err)
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to save invoice", err)
	}
	invoice.Items = items

	result := &FinalizeResult{Invoice: &invoice}

	// Rendering is best effort: the invoice is already committed, so a
	// render failure surfaces as a warning and nothing is rolled back.
	settings := s.settings.Get()
	docName, renderErr := s.renderer.Render(RenderData{
		AdminName:      createdBy,
		CompanyName:    settings.CompanyName,
		CompanyAddress: settings.CompanyAddress,
		CompanyPhone:   settings.CompanyPhone,
		InvoiceNumber:  invoice.InvoiceNumber,
		CustomerName:   invoice.CustomerName,
		Phone:          invoice.CustomerPhone,
		Email:          invoice.CustomerEmail,
		Lines:          lines,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		TaxRate:        cart.TaxRate(),
		Total:          totals.Total,
		Date:           now.Format("2006-01-02"),
	})
	if renderErr != nil {
		log.Warn().Err(renderErr).Str("invoice", invoice.InvoiceNumber).
			Msg("invoice saved but document rendering failed")
		result.RenderWarning = renderErr.Error()
	} else {
		result.DocumentName = docName
	}

	return result, nil
}
