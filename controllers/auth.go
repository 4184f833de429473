// controllers/auth.go
package controllers

import (
	"net/http"

	"invoicegen-backend/apperrors"
	"invoicegen-backend/models"
	"invoicegen-backend/services"
	"invoicegen-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Email           string `json:"email"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	accounts *services.AccountsService
	db       *gorm.DB
}

func NewAuthController(accounts *services.AccountsService, db *gorm.DB) *AuthController {
	return &AuthController{accounts: accounts, db: db}
}

// Register creates a new admin account
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	admin, err := ac.accounts.Register(input.Username, input.Password, input.ConfirmPassword, input.Email)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful! Please log in",
		"user": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

// Login verifies credentials and issues a session token
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	admin, err := ac.accounts.Login(input.Username, input.Password)
	if err != nil {
		// Credential and lockout failures read as unauthorized to clients.
		if apperrors.IsKind(err, apperrors.KindValidation) {
			utils.RespondWithError(c, http.StatusUnauthorized, apperrors.As(err).Message())
		} else {
			utils.RespondWithAppError(c, err)
		}
		return
	}

	token, err := utils.GenerateToken(admin.ID.String(), admin.Username)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	expiryHours := 24
	maxAge := expiryHours * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

// Me returns the logged-in admin
func (ac *AuthController) Me(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "Username not found in context")
		return
	}

	var admin models.Admin
	if err := ac.db.First(&admin, "username = ?", username).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        admin.ID,
			"username":  admin.Username,
			"email":     admin.Email,
			"lastLogin": admin.LastLogin,
		},
	})
}
