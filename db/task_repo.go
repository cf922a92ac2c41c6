package db

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ecotrack/wastenexus/models"
)

type WorkerTaskRepository interface {
	CreateTask(task *models.WorkerTask) error
	GetTaskByID(taskID uuid.UUID) (*models.WorkerTask, error)
	UpdateTask(task *models.WorkerTask) error
	GetTasksByWorkerID(workerID uint) ([]models.WorkerTask, error)
}

type workerTaskRepo struct {
	DB *gorm.DB
}

func NewWorkerTaskRepo(db *GormDB) WorkerTaskRepository {
	return &workerTaskRepo{db.DB}
}

func (r *workerTaskRepo) CreateTask(task *models.WorkerTask) error {
	return r.DB.Create(task).Error
}

func (r *workerTaskRepo) GetTaskByID(taskID uuid.UUID) (*models.WorkerTask, error) {
	var task models.WorkerTask
	if err := r.DB.Where("id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *workerTaskRepo) UpdateTask(task *models.WorkerTask) error {
	return r.DB.Save(task).Error
}

func (r *workerTaskRepo) GetTasksByWorkerID(workerID uint) ([]models.WorkerTask, error) {
	var tasks []models.WorkerTask
	err := r.DB.Where("worker_id = ?", workerID).Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetching worker tasks")
	}
	return tasks, nil
}
