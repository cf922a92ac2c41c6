package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusVerified ReportStatus = "verified"
	ReportStatusRejected ReportStatus = "rejected"
)

// WasteReport is a citizen-filed sighting of waste to be collected. The
// estimated weight and waste type drive the point award on verification.
type WasteReport struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uint         `json:"user_id" gorm:"not null;index"`
	WasteType   string       `json:"waste_type" gorm:"type:varchar(32);not null"`
	WeightKg    float64      `json:"weight_kg" gorm:"not null"`
	Description string       `json:"description" gorm:"type:varchar(1000)"`
	Address     string       `json:"address"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Status      ReportStatus `json:"status" gorm:"type:varchar(16);default:'pending';index"`
	AdminID     *uint        `json:"admin_id,omitempty"`
	RewardPoint int          `json:"reward_point" gorm:"default:0"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (r *WasteReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type CreateReportRequest struct {
	WasteType   string  `json:"waste_type" binding:"required"`
	WeightKg    float64 `json:"weight_kg" binding:"required,gt=0"`
	Description string  `json:"description" conform:"trim"`
	Address     string  `json:"address" conform:"trim"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
