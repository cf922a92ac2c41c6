package models

import (
	"github.com/google/uuid"
)

const (
	RoleClient   = "Client"
	RoleWorker   = "Worker"
	RoleChampion = "Champion"
	RoleAdmin    = "Admin"
)

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"unique;not null" json:"name"`
}
