package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/rewards"
)

func newTestEventService(users ...*models.User) (EventService, *fakeTransactionRepo) {
	eventRepo := newFakeEventRepo()
	rewardSvc, txRepo := newTestRewardService(users...)
	return NewEventService(eventRepo, rewardSvc, testConfig()), txRepo
}

func TestJoinEventIsIdempotent(t *testing.T) {
	championID := uint(3)
	svc, _ := newTestEventService(testUser(1, 0))

	event, err := svc.CreateEvent(championID, &models.CreateEventRequest{
		Title:       "Beach cleanup",
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	first, err := svc.JoinEvent(event.ID, 1)
	if err != nil {
		t.Fatalf("first join: %v", err)
	}
	second, err := svc.JoinEvent(event.ID, 1)
	if err != nil {
		t.Fatalf("second join: %v", err)
	}
	if first != second {
		t.Error("rejoining should return the existing participant")
	}

	participants, err := svc.GetParticipants(event.ID)
	if err != nil {
		t.Fatalf("GetParticipants: %v", err)
	}
	if len(participants) != 1 {
		t.Errorf("expected 1 participant, got %d", len(participants))
	}
}

func TestMarkParticipationPaysOnce(t *testing.T) {
	championID := uint(3)
	svc, txRepo := newTestEventService(testUser(1, 0))

	event, err := svc.CreateEvent(championID, &models.CreateEventRequest{
		Title:       "Market sweep",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if _, err := svc.JoinEvent(event.ID, 1); err != nil {
		t.Fatalf("JoinEvent: %v", err)
	}

	first, err := svc.MarkParticipation(event.ID, 1, championID)
	if err != nil {
		t.Fatalf("MarkParticipation: %v", err)
	}
	if first.Transaction.Amount != rewards.EventParticipationPoints {
		t.Errorf("expected %d points, got %d", rewards.EventParticipationPoints, first.Transaction.Amount)
	}

	second, err := svc.MarkParticipation(event.ID, 1, championID)
	if err != nil {
		t.Fatalf("repeat MarkParticipation: %v", err)
	}
	if second.Transaction.ID != first.Transaction.ID {
		t.Error("repeat marking created a new transaction")
	}
	if second.NewTotalPoints != rewards.EventParticipationPoints {
		t.Errorf("repeat marking changed the balance: %d", second.NewTotalPoints)
	}
	if len(txRepo.transactions) != 1 {
		t.Errorf("expected 1 ledger row, got %d", len(txRepo.transactions))
	}
}

func TestMarkParticipationRequiresJoin(t *testing.T) {
	championID := uint(3)
	svc, _ := newTestEventService(testUser(1, 0))

	event, err := svc.CreateEvent(championID, &models.CreateEventRequest{
		Title:       "Street drive",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	_, err = svc.MarkParticipation(event.ID, 1, championID)
	assertStatus(t, err, http.StatusNotFound)
}

func TestEventOwnershipAndStatus(t *testing.T) {
	championID := uint(3)
	svc, _ := newTestEventService(testUser(1, 0))

	event, err := svc.CreateEvent(championID, &models.CreateEventRequest{
		Title:       "Depot day",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	// another champion cannot drive this event's status
	_, err = svc.ActivateEvent(event.ID, 77)
	assertStatus(t, err, http.StatusForbidden)

	// completing before activation is out of order
	_, err = svc.CompleteEvent(event.ID, championID)
	assertStatus(t, err, http.StatusConflict)

	if _, err := svc.ActivateEvent(event.ID, championID); err != nil {
		t.Fatalf("ActivateEvent: %v", err)
	}
	completed, err := svc.CompleteEvent(event.ID, championID)
	if err != nil {
		t.Fatalf("CompleteEvent: %v", err)
	}
	if completed.Status != models.EventStatusCompleted {
		t.Errorf("expected completed, got %s", completed.Status)
	}

	// a completed event accepts no new participants
	_, err = svc.JoinEvent(event.ID, 1)
	assertStatus(t, err, http.StatusConflict)
}
