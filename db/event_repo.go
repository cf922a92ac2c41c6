package db

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ecotrack/wastenexus/models"
)

type EventRepository interface {
	CreateEvent(event *models.Event) error
	GetEventByID(eventID uuid.UUID) (*models.Event, error)
	UpdateEvent(event *models.Event) error
	GetAllEvents(status models.EventStatus) ([]models.Event, error)
	AddParticipant(participant *models.EventParticipant) error
	GetParticipant(eventID uuid.UUID, userID uint) (*models.EventParticipant, error)
	UpdateParticipant(participant *models.EventParticipant) error
	GetEventParticipants(eventID uuid.UUID) ([]models.EventParticipant, error)
}

type eventRepo struct {
	DB *gorm.DB
}

func NewEventRepo(db *GormDB) EventRepository {
	return &eventRepo{db.DB}
}

func (r *eventRepo) CreateEvent(event *models.Event) error {
	return r.DB.Create(event).Error
}

func (r *eventRepo) GetEventByID(eventID uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := r.DB.Where("id = ?", eventID).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) UpdateEvent(event *models.Event) error {
	return r.DB.Save(event).Error
}

func (r *eventRepo) GetAllEvents(status models.EventStatus) ([]models.Event, error) {
	var events []models.Event
	query := r.DB.Order("scheduled_at ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&events).Error; err != nil {
		return nil, errors.Wrap(err, "fetching events")
	}
	return events, nil
}

func (r *eventRepo) AddParticipant(participant *models.EventParticipant) error {
	return r.DB.Create(participant).Error
}

// GetParticipant returns nil without error when the user never joined.
func (r *eventRepo) GetParticipant(eventID uuid.UUID, userID uint) (*models.EventParticipant, error) {
	var participant models.EventParticipant
	err := r.DB.Where("event_id = ? AND user_id = ?", eventID, userID).First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching participant")
	}
	return &participant, nil
}

func (r *eventRepo) UpdateParticipant(participant *models.EventParticipant) error {
	return r.DB.Save(participant).Error
}

func (r *eventRepo) GetEventParticipants(eventID uuid.UUID) ([]models.EventParticipant, error) {
	var participants []models.EventParticipant
	err := r.DB.Where("event_id = ?", eventID).Find(&participants).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetching participants")
	}
	return participants, nil
}
