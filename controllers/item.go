// controllers/item.go
package controllers

import (
	"net/http"

	"invoicegen-backend/services"
	"invoicegen-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateItemInput defines the expected JSON structure for creating a catalog item
type CreateItemInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Category    string          `json:"category"`
}

type ItemController struct {
	catalog *services.CatalogService
}

func NewItemController(catalog *services.CatalogService) *ItemController {
	return &ItemController{catalog: catalog}
}

func callerUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Username not found in context")
		return "", false
	}
	name, ok := username.(string)
	if !ok || name == "" {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid session identity")
		return "", false
	}
	return name, true
}

// CreateItem adds a new item/service to the caller's catalog
func (ic *ItemController) CreateItem(c *gin.Context) {
	owner, ok := callerUsername(c)
	if !ok {
		return
	}

	var input CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := ic.catalog.AddItem(input.Name, input.Description, input.UnitPrice, input.Category, owner)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetItems lists the caller's catalog ordered by category then name
func (ic *ItemController) GetItems(c *gin.Context) {
	owner, ok := callerUsername(c)
	if !ok {
		return
	}

	items, err := ic.catalog.ListItems(owner)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// DeleteItem removes an item from the caller's catalog
func (ic *ItemController) DeleteItem(c *gin.Context) {
	owner, ok := callerUsername(c)
	if !ok {
		return
	}

	if err := ic.catalog.DeleteItem(c.Param("name"), owner); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// GetItemCartLine returns the pending cart line prefilled from a catalog item
func (ic *ItemController) GetItemCartLine(c *gin.Context) {
	owner, ok := callerUsername(c)
	if !ok {
		return
	}

	line, err := ic.catalog.CartPrefill(c.Param("name"), owner)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, line)
}
