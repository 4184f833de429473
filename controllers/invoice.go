// controllers/invoice.go
package controllers

import (
	"net/http"

	"invoicegen-backend/models"
	"invoicegen-backend/services"
	"invoicegen-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InvoiceLineInput is one cart line as typed into the entry editor
type InvoiceLineInput struct {
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateInvoiceInput defines the expected JSON structure for finalizing an invoice.
// Lines arrive in display order, newest first.
type CreateInvoiceInput struct {
	FirstName string             `json:"firstName" binding:"required"`
	LastName  string             `json:"lastName" binding:"required"`
	Phone     string             `json:"phone"`
	Email     string             `json:"email"`
	TaxRate   decimal.Decimal    `json:"taxRate"`
	Lines     []InvoiceLineInput `json:"lines"`
}

type InvoiceController struct {
	invoicing *services.InvoicingService
	search    *services.SearchService
}

func NewInvoiceController(invoicing *services.InvoicingService, search *services.SearchService) *InvoiceController {
	return &InvoiceController{invoicing: invoicing, search: search}
}

// CreateInvoice finalizes a cart into a persisted invoice plus a rendered document
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	createdBy, ok := callerUsername(c)
	if !ok {
		return
	}

	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cart := services.NewCart()
	if err := cart.SetTaxRate(input.TaxRate); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	// AddLine prepends, so feeding oldest-first re-creates display order.
	for i := len(input.Lines) - 1; i >= 0; i-- {
		line := input.Lines[i]
		if err := cart.AddLine(line.Quantity, line.Description, line.UnitPrice); err != nil {
			utils.RespondWithAppError(c, err)
			return
		}
	}

	customer := models.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     input.Email,
	}

	result, err := ic.invoicing.Finalize(cart, customer, createdBy)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetInvoices returns recent invoices, or all matches for ?q=<customer name>
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	invoices, err := ic.search.Search(c.Query("q"))
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice returns one invoice with its line items
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	invoice, err := ic.search.InvoiceDetail(c.Param("number"))
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}
