package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusActive    EventStatus = "active"
	EventStatusCompleted EventStatus = "completed"
)

// Event is a community cleanup or awareness drive organized by a champion.
type Event struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	ChampionID  uint        `json:"champion_id" gorm:"not null;index"`
	Title       string      `json:"title" gorm:"type:varchar(120);not null"`
	Description string      `json:"description" gorm:"type:varchar(1000)"`
	Venue       string      `json:"venue"`
	ScheduledAt time.Time   `json:"scheduled_at"`
	Status      EventStatus `json:"status" gorm:"type:varchar(16);default:'upcoming';index"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// EventParticipant links a user to an event. Attended flips once when the
// champion marks participation; the point award keys off the event reference
// so marking twice cannot double-pay.
type EventParticipant struct {
	Model
	EventID  uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_event_user"`
	UserID   uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_event_user"`
	Attended bool      `json:"attended" gorm:"default:false"`
}

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,min=3" conform:"trim"`
	Description string    `json:"description" conform:"trim"`
	Venue       string    `json:"venue" conform:"trim"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}
