package db

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ecotrack/wastenexus/models"
)

type CollectionJobRepository interface {
	CreateJob(job *models.CollectionJob) error
	GetJobByID(jobID uuid.UUID) (*models.CollectionJob, error)
	UpdateJob(job *models.CollectionJob) error
	GetJobsByUserID(userID uint) ([]models.CollectionJob, error)
	GetJobsByWorkerID(workerID uint) ([]models.CollectionJob, error)
	GetAllJobs(status models.JobStatus) ([]models.CollectionJob, error)
}

type collectionJobRepo struct {
	DB *gorm.DB
}

func NewCollectionJobRepo(db *GormDB) CollectionJobRepository {
	return &collectionJobRepo{db.DB}
}

func (r *collectionJobRepo) CreateJob(job *models.CollectionJob) error {
	return r.DB.Create(job).Error
}

func (r *collectionJobRepo) GetJobByID(jobID uuid.UUID) (*models.CollectionJob, error) {
	var job models.CollectionJob
	if err := r.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *collectionJobRepo) UpdateJob(job *models.CollectionJob) error {
	return r.DB.Save(job).Error
}

func (r *collectionJobRepo) GetJobsByUserID(userID uint) ([]models.CollectionJob, error) {
	var jobs []models.CollectionJob
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetching user jobs")
	}
	return jobs, nil
}

func (r *collectionJobRepo) GetJobsByWorkerID(workerID uint) ([]models.CollectionJob, error) {
	var jobs []models.CollectionJob
	err := r.DB.Where("worker_id = ?", workerID).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetching worker jobs")
	}
	return jobs, nil
}

func (r *collectionJobRepo) GetAllJobs(status models.JobStatus) ([]models.CollectionJob, error) {
	var jobs []models.CollectionJob
	query := r.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&jobs).Error; err != nil {
		return nil, errors.Wrap(err, "fetching jobs")
	}
	return jobs, nil
}
