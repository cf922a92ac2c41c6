package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemStatus string

const (
	ItemStatusPending  ItemStatus = "pending"
	ItemStatusApproved ItemStatus = "approved"
	ItemStatusRejected ItemStatus = "rejected"
)

// MarketplaceItem is a reusable item listed for pickup by other users.
// Admin approval publishes the listing and awards points to the lister.
type MarketplaceItem struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"type:varchar(120);not null"`
	Description string     `json:"description" gorm:"type:varchar(1000)"`
	Category    string     `json:"category" gorm:"type:varchar(32)"`
	Condition   string     `json:"condition" gorm:"type:varchar(32)"`
	Status      ItemStatus `json:"status" gorm:"type:varchar(16);default:'pending';index"`
	AdminID     *uint      `json:"admin_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (m *MarketplaceItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type CreateItemRequest struct {
	Title       string `json:"title" binding:"required,min=3" conform:"trim"`
	Description string `json:"description" conform:"trim"`
	Category    string `json:"category" conform:"trim"`
	Condition   string `json:"condition" conform:"trim"`
}
