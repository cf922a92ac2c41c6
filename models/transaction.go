package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionType identifies what kind of activity earned (or deducted) points.
type TransactionType string

const (
	TransactionReportVerified      TransactionType = "report_verified"
	TransactionJobVerified         TransactionType = "job_verified"
	TransactionMarketplaceApproved TransactionType = "marketplace_approved"
	TransactionTaskCompleted       TransactionType = "task_completed"
	TransactionEventParticipation  TransactionType = "event_participation"
	TransactionManualAdjustment    TransactionType = "manual_adjustment"
)

// ReferenceModel names the kind of domain record a transaction points back to.
type ReferenceModel string

const (
	ReferenceWasteReport     ReferenceModel = "WasteReport"
	ReferenceCollectionJob   ReferenceModel = "CollectionJob"
	ReferenceMarketplaceItem ReferenceModel = "MarketplaceItem"
	ReferenceEvent           ReferenceModel = "Event"
	ReferenceWorkerTask      ReferenceModel = "WorkerTask"
)

// TransactionReference is a typed pointer from a transaction to the record
// that caused it. Model and ID travel together so a half-formed reference
// cannot be stored.
type TransactionReference struct {
	Model ReferenceModel
	ID    uuid.UUID
}

// JSONB stores a free-form metadata blob in a jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
	return json.Unmarshal(b, j)
}

// PointTransaction is one immutable row of the reward ledger. Rows are only
// ever inserted; the user's total is updated in the same database transaction
// as the insert.
type PointTransaction struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	Type           TransactionType `json:"type" gorm:"type:varchar(32);not null;index"`
	Amount         int             `json:"amount" gorm:"not null"`
	Description    string          `json:"description" gorm:"type:varchar(500)"`
	ReferenceID    *uuid.UUID      `json:"reference_id,omitempty" gorm:"type:uuid;index:idx_transaction_reference"`
	ReferenceModel *ReferenceModel `json:"reference_model,omitempty" gorm:"type:varchar(32);index:idx_transaction_reference"`
	AdminID        *uint           `json:"admin_id,omitempty"`
	Metadata       JSONB           `json:"metadata" gorm:"type:jsonb"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (t *PointTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// AwardPointsParams is the input to the award executor.
type AwardPointsParams struct {
	UserID      uint
	Type        TransactionType
	Amount      int
	Description string
	Reference   *TransactionReference
	AdminID     *uint
	Metadata    JSONB
}

// TransactionStat is a per-type aggregate over the ledger.
type TransactionStat struct {
	Type        TransactionType `json:"type"`
	TotalAmount int             `json:"total_amount"`
	Count       int64           `json:"count"`
	AvgAmount   float64         `json:"avg_amount"`
}

// LeaderboardEntry ranks a user by accumulated points.
type LeaderboardEntry struct {
	UserID      uint   `json:"user_id"`
	Fullname    string `json:"fullname"`
	Username    string `json:"username"`
	TotalPoints int    `json:"total_points"`
}

type ManualAdjustmentRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}
