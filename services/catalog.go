package services

import (
	"errors"

	"invoicegen-backend/apperrors"
	"invoicegen-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService manages the per-admin library of reusable billable items.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// AddItem creates a catalog item owned by the given admin. (name, owner)
// must be unique.
func (s *CatalogService) AddItem(name, description string, unitPrice decimal.Decimal, category, owner string) (*models.Item, error) {
	if name == "" {
		return nil, apperrors.New(apperrors.KindValidation, "Item name is required")
	}
	if unitPrice.IsNegative() {
		return nil, apperrors.New(apperrors.KindValidation, "Price cannot be negative")
	}

	var existing models.Item
	err := s.db.Where("name = ? AND created_by = ?", name, owner).First(&existing).Error
	if err == nil {
		return nil, apperrors.New(apperrors.KindDuplicate, "An item with this name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to look up item", err)
	}

	item := models.Item{
		Name:        name,
		Description: description,
		UnitPrice:   unitPrice,
		Category:    category,
		CreatedBy:   owner,
	}
	if err := s.db.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.New(apperrors.KindDuplicate, "An item with this name already exists")
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to create item", err)
	}
	return &item, nil
}

// ListItems returns the owner's items ordered by category then name.
// The catalog is per-admin; other admins' items are never visible here.
func (s *CatalogService) ListItems(owner string) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.
		Where("created_by = ?", owner).
		Order("category, name").
		Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to load items", err)
	}
	return items, nil
}

// DeleteItem removes the named item. Deleting an absent item is a no-op,
// matching the zero-rows-deleted behavior of the storage layer.
func (s *CatalogService) DeleteItem(name, owner string) error {
	if err := s.db.
		Where("name = ? AND created_by = ?", name, owner).
		Delete(&models.Item{}).Error; err != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to delete item", err)
	}
	return nil
}

// CartPrefill copies a catalog item into a pending cart line: quantity
// defaults to 1 and the line description is the item NAME. The catalog
// description is intentionally not carried over.
func (s *CatalogService) CartPrefill(name, owner string) (*PendingLine, error) {
	var item models.Item
	err := s.db.Where("name = ? AND created_by = ?", name, owner).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "Item not found")
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to load item", err)
	}
	return &PendingLine{
		Quantity:    1,
		Description: item.Name,
		UnitPrice:   item.UnitPrice,
	}, nil
}
