package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusAssigned   TaskStatus = "assigned"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusAssigned:   {TaskStatusInProgress},
	TaskStatusInProgress: {TaskStatusCompleted},
}

func (s TaskStatus) CanTransition(next TaskStatus) bool {
	for _, allowed := range taskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// WorkerTask is a unit of collection work assigned to a worker by an admin.
// Completing a task pays the worker a fixed point amount.
type WorkerTask struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	WorkerID     uint       `json:"worker_id" gorm:"not null;index"`
	AssignedByID uint       `json:"assigned_by_id" gorm:"not null"`
	Title        string     `json:"title" gorm:"type:varchar(120);not null"`
	Description  string     `json:"description" gorm:"type:varchar(1000)"`
	Address      string     `json:"address"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Status       TaskStatus `json:"status" gorm:"type:varchar(16);default:'assigned';index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (t *WorkerTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type CreateTaskRequest struct {
	WorkerID    uint       `json:"worker_id" binding:"required"`
	Title       string     `json:"title" binding:"required,min=3" conform:"trim"`
	Description string     `json:"description" conform:"trim"`
	Address     string     `json:"address" conform:"trim"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}
