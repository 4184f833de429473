package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxFailedLogins is the threshold after which an account is locked.
// Locking is terminal; there is no automatic unlock.
const MaxFailedLogins = 3

type Admin struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Password string    `gorm:"not null" json:"-"`
	Email    string    `json:"email"`

	LastLogin      *time.Time `json:"lastLogin"`
	FailedAttempts int        `gorm:"default:0" json:"-"`
	AccountLocked  bool       `gorm:"default:false" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
