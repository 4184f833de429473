// controllers/settings.go
package controllers

import (
	"net/http"

	"invoicegen-backend/config"
	"invoicegen-backend/utils"

	"github.com/gin-gonic/gin"
)

// UpdateSettingsInput allows partial updates; absent fields keep their
// current value.
type UpdateSettingsInput struct {
	Theme          *string  `json:"theme"`
	TemplatePath   *string  `json:"templatePath"`
	OutputDir      *string  `json:"outputDir"`
	DefaultTaxRate *float64 `json:"defaultTaxRate"`
	CompanyName    *string  `json:"companyName"`
	CompanyAddress *string  `json:"companyAddress"`
	CompanyPhone   *string  `json:"companyPhone"`
}

type SettingsController struct {
	store *config.SettingsStore
}

func NewSettingsController(store *config.SettingsStore) *SettingsController {
	return &SettingsController{store: store}
}

// GetSettings returns the current settings snapshot
func (sc *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, sc.store.Get())
}

// UpdateSettings merges the provided fields and persists the file
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	settings := sc.store.Get()
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}
	if input.TemplatePath != nil {
		settings.TemplatePath = *input.TemplatePath
	}
	if input.OutputDir != nil {
		settings.OutputDir = *input.OutputDir
	}
	if input.DefaultTaxRate != nil {
		if *input.DefaultTaxRate < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Tax rate cannot be negative")
			return
		}
		settings.DefaultTaxRate = *input.DefaultTaxRate
	}
	if input.CompanyName != nil {
		settings.CompanyName = *input.CompanyName
	}
	if input.CompanyAddress != nil {
		settings.CompanyAddress = *input.CompanyAddress
	}
	if input.CompanyPhone != nil {
		settings.CompanyPhone = *input.CompanyPhone
	}

	if err := sc.store.Save(settings); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
