package services

import (
	"net/http"
	"testing"

	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/rewards"
)

func newTestTaskService(users ...*models.User) (WorkerTaskService, *fakeTransactionRepo) {
	taskRepo := newFakeTaskRepo()
	rewardSvc, txRepo := newTestRewardService(users...)
	return NewWorkerTaskService(taskRepo, rewardSvc, testConfig()), txRepo
}

func TestCompleteTaskPaysFixedAward(t *testing.T) {
	workerID := uint(2)
	svc, txRepo := newTestTaskService(testUser(workerID, 0))
	adminID := uint(9)

	task, err := svc.CreateTask(adminID, &models.CreateTaskRequest{
		WorkerID: workerID,
		Title:    "Clear depot backlog",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Status != models.TaskStatusAssigned {
		t.Fatalf("expected assigned status, got %s", task.Status)
	}

	// completion straight from assigned skips in_progress
	_, err = svc.CompleteTask(task.ID, workerID)
	assertStatus(t, err, http.StatusConflict)

	if _, err := svc.StartTask(task.ID, workerID); err != nil {
		t.Fatalf("StartTask: %v", err)
	}
	completed, err := svc.CompleteTask(task.ID, workerID)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	if completed.PointsAwarded != rewards.TaskCompletionPoints {
		t.Errorf("expected %d points, got %d", rewards.TaskCompletionPoints, completed.PointsAwarded)
	}
	if completed.Award.NewTotalPoints != rewards.TaskCompletionPoints {
		t.Errorf("expected balance %d, got %d", rewards.TaskCompletionPoints, completed.Award.NewTotalPoints)
	}
	if len(txRepo.transactions) != 1 {
		t.Errorf("expected 1 ledger row, got %d", len(txRepo.transactions))
	}
}

func TestTaskBelongsToWorker(t *testing.T) {
	workerID := uint(2)
	svc, _ := newTestTaskService(testUser(workerID, 0))

	task, err := svc.CreateTask(9, &models.CreateTaskRequest{
		WorkerID: workerID,
		Title:    "Route 5 pickup",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	_, err = svc.StartTask(task.ID, 77)
	assertStatus(t, err, http.StatusForbidden)
	_, err = svc.CompleteTask(task.ID, 77)
	assertStatus(t, err, http.StatusForbidden)
}
