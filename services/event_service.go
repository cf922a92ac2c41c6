package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecotrack/wastenexus/config"
	"github.com/ecotrack/wastenexus/db"
	apiError "github.com/ecotrack/wastenexus/errors"
	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/rewards"
)

type EventService interface {
	CreateEvent(championID uint, request *models.CreateEventRequest) (*models.Event, error)
	GetEvent(eventID uuid.UUID) (*models.Event, error)
	ListEvents(status models.EventStatus) ([]models.Event, error)
	ActivateEvent(eventID uuid.UUID, championID uint) (*models.Event, error)
	CompleteEvent(eventID uuid.UUID, championID uint) (*models.Event, error)
	JoinEvent(eventID uuid.UUID, userID uint) (*models.EventParticipant, error)
	MarkParticipation(eventID uuid.UUID, userID, championID uint) (*AwardResult, error)
	GetParticipants(eventID uuid.UUID) ([]models.EventParticipant, error)
}

type eventService struct {
	Config        *config.Config
	eventRepo     db.EventRepository
	rewardService RewardService
}

func NewEventService(eventRepo db.EventRepository, rewardService RewardService, conf *config.Config) EventService {
	return &eventService{
		Config:        conf,
		eventRepo:     eventRepo,
		rewardService: rewardService,
	}
}

func (s *eventService) CreateEvent(championID uint, request *models.CreateEventRequest) (*models.Event, error) {
	if err := models.ConformStrings(request); err != nil {
		return nil, apiError.New("invalid event payload", http.StatusBadRequest)
	}

	event := &models.Event{
		ChampionID:  championID,
		Title:       request.Title,
		Description: request.Description,
		Venue:       request.Venue,
		ScheduledAt: request.ScheduledAt,
		Status:      models.EventStatusUpcoming,
	}
	if err := s.eventRepo.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("error saving event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(eventID uuid.UUID) (*models.Event, error) {
	event, err := s.eventRepo.GetEventByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("event not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("error fetching event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(status models.EventStatus) ([]models.Event, error) {
	return s.eventRepo.GetAllEvents(status)
}

func (s *eventService) ActivateEvent(eventID uuid.UUID, championID uint) (*models.Event, error) {
	return s.setStatus(eventID, championID, models.EventStatusUpcoming, models.EventStatusActive)
}

func (s *eventService) CompleteEvent(eventID uuid.UUID, championID uint) (*models.Event, error) {
	return s.setStatus(eventID, championID, models.EventStatusActive, models.EventStatusCompleted)
}

func (s *eventService) setStatus(eventID uuid.UUID, championID uint, from, to models.EventStatus) (*models.Event, error) {
	event, err := s.GetEvent(eventID)
	if err != nil {
		return nil, err
	}
	if event.ChampionID != championID {
		return nil, apiError.New("event belongs to another champion", http.StatusForbidden)
	}
	if event.Status != from {
		return nil, apiError.New(fmt.Sprintf("event is %s, expected %s", event.Status, from), http.StatusConflict)
	}

	event.Status = to
	if err := s.eventRepo.UpdateEvent(event); err != nil {
		return nil, fmt.Errorf("error updating event status: %w", err)
	}
	return event, nil
}

func (s *eventService) JoinEvent(eventID uuid.UUID, userID uint) (*models.EventParticipant, error) {
	event, err := s.GetEvent(eventID)
	if err != nil {
		return nil, err
	}
	if event.Status == models.EventStatusCompleted {
		return nil, apiError.New("event has already completed", http.StatusConflict)
	}

	existing, err := s.eventRepo.GetParticipant(eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("error checking participant: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	participant := &models.EventParticipant{
		EventID: eventID,
		UserID:  userID,
	}
	if err := s.eventRepo.AddParticipant(participant); err != nil {
		return nil, fmt.Errorf("error joining event: %w", err)
	}
	return participant, nil
}

// MarkParticipation records attendance and pays the fixed participation
// award. The award references the event, so marking a user twice pays once.
func (s *eventService) MarkParticipation(eventID uuid.UUID, userID, championID uint) (*AwardResult, error) {
	event, err := s.GetEvent(eventID)
	if err != nil {
		return nil, err
	}
	if event.ChampionID != championID {
		return nil, apiError.New("event belongs to another champion", http.StatusForbidden)
	}

	participant, err := s.eventRepo.GetParticipant(eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching participant: %w", err)
	}
	if participant == nil {
		return nil, apiError.New("user did not join this event", http.StatusNotFound)
	}

	if !participant.Attended {
		participant.Attended = true
		if err := s.eventRepo.UpdateParticipant(participant); err != nil {
			return nil, fmt.Errorf("error marking attendance: %w", err)
		}
	}

	return s.rewardService.AwardPoints(models.AwardPointsParams{
		UserID:      userID,
		Type:        models.TransactionEventParticipation,
		Amount:      rewards.EventParticipationPoints,
		Description: fmt.Sprintf("Participated in event: %s", event.Title),
		Reference: &models.TransactionReference{
			Model: models.ReferenceEvent,
			ID:    event.ID,
		},
	})
}

func (s *eventService) GetParticipants(eventID uuid.UUID) ([]models.EventParticipant, error) {
	return s.eventRepo.GetEventParticipants(eventID)
}
