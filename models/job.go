package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusVerified   JobStatus = "verified"
	JobStatusRejected   JobStatus = "rejected"
	JobStatusAssigned   JobStatus = "assigned"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
)

// jobTransitions is the allowed status graph. Verification gates assignment;
// a rejected job is terminal.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusPending:    {JobStatusVerified, JobStatusRejected},
	JobStatusVerified:   {JobStatusAssigned},
	JobStatusAssigned:   {JobStatusInProgress},
	JobStatusInProgress: {JobStatusCompleted},
}

// CanTransition reports whether a job may move from its current status to next.
func (s JobStatus) CanTransition(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CollectionJob is a client request to have waste picked up. Verification by
// an admin awards points to the requester; the job then flows through worker
// assignment to completion.
type CollectionJob struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	WorkerID    *uint     `json:"worker_id,omitempty" gorm:"index"`
	Category    string    `json:"category" gorm:"type:varchar(16);not null"`
	Urgency     string    `json:"urgency" gorm:"type:varchar(16);not null"`
	Description string    `json:"description" gorm:"type:varchar(1000)"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Status      JobStatus `json:"status" gorm:"type:varchar(16);default:'pending';index"`
	AdminID     *uint     `json:"admin_id,omitempty"`
	RewardPoint int       `json:"reward_point" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (j *CollectionJob) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

type CreateJobRequest struct {
	Category    string  `json:"category" binding:"required,oneof=home industry other"`
	Urgency     string  `json:"urgency" binding:"required,oneof=low medium high"`
	Description string  `json:"description" conform:"trim"`
	Address     string  `json:"address" conform:"trim"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type AssignJobRequest struct {
	WorkerID uint `json:"worker_id" binding:"required"`
}
