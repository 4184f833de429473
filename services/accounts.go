package services

import (
	"errors"
	"time"

	"invoicegen-backend/apperrors"
	"invoicegen-backend/models"
	"invoicegen-backend/utils"

	"gorm.io/gorm"
)

// AccountsService handles admin registration and login, including the
// failed-attempt lockout.
type AccountsService struct {
	db *gorm.DB
}

func NewAccountsService(db *gorm.DB) *AccountsService {
	return &AccountsService{db: db}
}

// Register creates a new admin account with a hashed credential.
func (s *AccountsService) Register(username, password, confirmPassword, email string) (*models.Admin, error) {
	if username == "" || password == "" || confirmPassword == "" {
		return nil, apperrors.New(apperrors.KindValidation, "All fields are required")
	}
	if password != confirmPassword {
		return nil, apperrors.New(apperrors.KindValidation, "Passwords do not match")
	}

	var existing models.Admin
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, apperrors.New(apperrors.KindDuplicate, "Username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to look up account", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to hash password", err)
	}

	now := time.Now()
	admin := models.Admin{
		Username:  username,
		Password:  hashed,
		Email:     email,
		LastLogin: &now,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.New(apperrors.KindDuplicate, "Username already exists")
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to create account", err)
	}
	return &admin, nil
}

// Login verifies credentials. A locked account fails with account-locked
// even when the password is correct; a wrong password increments the
// failure counter and locks the account at the threshold. Locking is never
// cleared automatically.
func (s *AccountsService) Login(username, password string) (*models.Admin, error) {
	if username == "" || password == "" {
		return nil, apperrors.New(apperrors.KindValidation, "Username and password are required")
	}

	var admin models.Admin
	err := s.db.Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindValidation, "Invalid username or password")
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to look up account", err)
	}

	if admin.AccountLocked {
		return nil, apperrors.New(apperrors.KindValidation, "Account is locked. Please contact administrator")
	}

	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, s.recordFailedAttempt(&admin)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"failed_attempts": 0,
		"last_login":      &now,
	}
	if err := s.db.Model(&admin).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to update account", err)
	}
	admin.FailedAttempts = 0
	admin.LastLogin = &now
	return &admin, nil
}

func (s *AccountsService) recordFailedAttempt(admin *models.Admin) error {
	attempts := admin.FailedAttempts + 1
	updates := map[string]interface{}{"failed_attempts": attempts}
	if attempts >= models.MaxFailedLogins {
		updates["account_locked"] = true
	}
	if err := s.db.Model(admin).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to update account", err)
	}

	if attempts >= models.MaxFailedLogins {
		return apperrors.New(apperrors.KindValidation, "Too many failed attempts. Account locked")
	}
	return apperrors.Newf(apperrors.KindValidation,
		"Invalid username or password. %d attempts remaining", models.MaxFailedLogins-attempts)
}
