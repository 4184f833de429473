package services

import (
	"os"
	"path/filepath"
	"text/template"

	"invoicegen-backend/apperrors"
	"invoicegen-backend/config"
	"invoicegen-backend/utils"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RenderData is the flat record handed to the document template, mirroring
// what appears on the printed invoice.
type RenderData struct {
	AdminName      string
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string

	InvoiceNumber string
	CustomerName  string
	Phone         string
	Email         string

	Lines     []LineItem
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	TaxRate   decimal.Decimal
	Total     decimal.Decimal
	Date      string
}

// Renderer produces a document artifact for a finalized invoice and returns
// the artifact file name.
type Renderer interface {
	Render(data RenderData) (string, error)
}

// DocumentRenderer renders invoices through the text template configured in
// settings, re-read on every render so template changes take effect without
// a restart. A missing or unreadable template falls back to a built-in
// layout rather than failing the render.
type DocumentRenderer struct {
	settings *config.SettingsStore
}

func NewDocumentRenderer(settings *config.SettingsStore) *DocumentRenderer {
	return &DocumentRenderer{settings: settings}
}

const fallbackTemplate = `{{.CompanyName}}
{{.CompanyAddress}}
{{.CompanyPhone}}

INVOICE {{.InvoiceNumber}}
Date: {{.Date}}
Issued by: {{.AdminName}}

Bill to: {{.CustomerName}}
{{- if .Phone}}
Phone: {{.Phone}}
{{- end}}
{{- if .Email}}
Email: {{.Email}}
{{- end}}

Qty  Description  Unit Price  Line Total
{{- range .Lines}}
{{.Quantity}}  {{.Description}}  {{.UnitPrice.StringFixed 2}}  {{.LineTotal.StringFixed 2}}
{{- end}}

Subtotal: {{.Subtotal.StringFixed 2}}
Tax ({{.TaxRate.String}}%): {{.TaxAmount.StringFixed 2}}
Total: {{.Total.StringFixed 2}}
`

func loadTemplate(path string) *template.Template {
	if path != "" {
		tmpl, err := template.ParseFiles(path)
		if err == nil {
			return tmpl
		}
		log.Warn().Err(err).Str("template", path).
			Msg("invoice template unreadable, using built-in layout")
	}
	return template.Must(template.New("invoice").Parse(fallbackTemplate))
}

// Render writes INV_<invoice_number>_<sanitized customer name>.txt into the
// configured output directory and returns the file name.
func (r *DocumentRenderer) Render(data RenderData) (string, error) {
	settings := r.settings.Get()
	name := "INV_" + data.InvoiceNumber + "_" + utils.SanitizeFilename(data.CustomerName) + ".txt"

	out, err := os.Create(filepath.Join(settings.OutputDir, name))
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindRender, "failed to create invoice document", err)
	}
	defer out.Close()

	if err := loadTemplate(settings.TemplatePath).Execute(out, data); err != nil {
		return "", apperrors.Wrap(apperrors.KindRender, "failed to render invoice document", err)
	}
	return name, nil
}
