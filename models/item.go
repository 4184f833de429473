package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item is a reusable billable item or service in an admin's catalog.
// (Name, CreatedBy) is unique: each admin keeps their own list.
type Item struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"not null;uniqueIndex:idx_item_name_owner,priority:1" json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Category    string          `json:"category"`
	CreatedBy   string          `gorm:"not null;uniqueIndex:idx_item_name_owner,priority:2" json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
