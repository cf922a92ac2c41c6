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

type CompletedTask struct {
	Task          *models.WorkerTask `json:"task"`
	PointsAwarded int                `json:"points_awarded"`
	Award         *AwardResult       `json:"award"`
}

type WorkerTaskService interface {
	CreateTask(adminID uint, request *models.CreateTaskRequest) (*models.WorkerTask, error)
	GetTask(taskID uuid.UUID) (*models.WorkerTask, error)
	GetWorkerTasks(workerID uint) ([]models.WorkerTask, error)
	StartTask(taskID uuid.UUID, workerID uint) (*models.WorkerTask, error)
	CompleteTask(taskID uuid.UUID, workerID uint) (*CompletedTask, error)
}

type workerTaskService struct {
	Config        *config.Config
	taskRepo      db.WorkerTaskRepository
	rewardService RewardService
}

func NewWorkerTaskService(taskRepo db.WorkerTaskRepository, rewardService RewardService, conf *config.Config) WorkerTaskService {
	return &workerTaskService{
		Config:        conf,
		taskRepo:      taskRepo,
		rewardService: rewardService,
	}
}

func (s *workerTaskService) CreateTask(adminID uint, request *models.CreateTaskRequest) (*models.WorkerTask, error) {
	if err := models.ConformStrings(request); err != nil {
		return nil, apiError.New("invalid task payload", http.StatusBadRequest)
	}

	task := &models.WorkerTask{
		WorkerID:     request.WorkerID,
		AssignedByID: adminID,
		Title:        request.Title,
		Description:  request.Description,
		Address:      request.Address,
		DueDate:      request.DueDate,
		Status:       models.TaskStatusAssigned,
	}
	if err := s.taskRepo.CreateTask(task); err != nil {
		return nil, fmt.Errorf("error saving task: %w", err)
	}
	return task, nil
}

func (s *workerTaskService) GetTask(taskID uuid.UUID) (*models.WorkerTask, error) {
	task, err := s.taskRepo.GetTaskByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("task not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("error fetching task: %w", err)
	}
	return task, nil
}

func (s *workerTaskService) GetWorkerTasks(workerID uint) ([]models.WorkerTask, error) {
	return s.taskRepo.GetTasksByWorkerID(workerID)
}

func (s *workerTaskService) StartTask(taskID uuid.UUID, workerID uint) (*models.WorkerTask, error) {
	return s.transition(taskID, workerID, models.TaskStatusInProgress)
}

// CompleteTask closes out the task and pays the worker the fixed completion
// award, keyed on the task so a replayed request cannot pay twice.
func (s *workerTaskService) CompleteTask(taskID uuid.UUID, workerID uint) (*CompletedTask, error) {
	task, err := s.transition(taskID, workerID, models.TaskStatusCompleted)
	if err != nil {
		return nil, err
	}

	award, err := s.rewardService.AwardPoints(models.AwardPointsParams{
		UserID:      workerID,
		Type:        models.TransactionTaskCompleted,
		Amount:      rewards.TaskCompletionPoints,
		Description: fmt.Sprintf("Completed task: %s", task.Title),
		Reference: &models.TransactionReference{
			Model: models.ReferenceWorkerTask,
			ID:    task.ID,
		},
	})
	if err != nil {
		return nil, err
	}

	return &CompletedTask{
		Task:          task,
		PointsAwarded: rewards.TaskCompletionPoints,
		Award:         award,
	}, nil
}

func (s *workerTaskService) transition(taskID uuid.UUID, workerID uint, next models.TaskStatus) (*models.WorkerTask, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	if task.WorkerID != workerID {
		return nil, apiError.New("task is assigned to another worker", http.StatusForbidden)
	}
	if !task.Status.CanTransition(next) {
		return nil, apiError.New(
			fmt.Sprintf("cannot move task from %s to %s", task.Status, next), http.StatusConflict)
	}

	task.Status = next
	if err := s.taskRepo.UpdateTask(task); err != nil {
		return nil, fmt.Errorf("error updating task status: %w", err)
	}
	return task, nil
}
