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

type VerifiedJob struct {
	Job           *models.CollectionJob `json:"job"`
	PointsAwarded int                   `json:"points_awarded"`
	Award         *AwardResult          `json:"award"`
}

type CollectionJobService interface {
	CreateJob(userID uint, request *models.CreateJobRequest) (*models.CollectionJob, error)
	GetJob(jobID uuid.UUID) (*models.CollectionJob, error)
	GetUserJobs(userID uint) ([]models.CollectionJob, error)
	GetWorkerJobs(workerID uint) ([]models.CollectionJob, error)
	ListJobs(status models.JobStatus) ([]models.CollectionJob, error)
	VerifyJob(jobID uuid.UUID, adminID uint) (*VerifiedJob, error)
	RejectJob(jobID uuid.UUID, adminID uint) (*models.CollectionJob, error)
	AssignJob(jobID uuid.UUID, workerID uint) (*models.CollectionJob, error)
	StartJob(jobID uuid.UUID, workerID uint) (*models.CollectionJob, error)
	CompleteJob(jobID uuid.UUID, workerID uint) (*models.CollectionJob, error)
}

type collectionJobService struct {
	Config        *config.Config
	jobRepo       db.CollectionJobRepository
	rewardService RewardService
}

func NewCollectionJobService(jobRepo db.CollectionJobRepository, rewardService RewardService, conf *config.Config) CollectionJobService {
	return &collectionJobService{
		Config:        conf,
		jobRepo:       jobRepo,
		rewardService: rewardService,
	}
}

func (s *collectionJobService) CreateJob(userID uint, request *models.CreateJobRequest) (*models.CollectionJob, error) {
	if err := models.ConformStrings(request); err != nil {
		return nil, apiError.New("invalid job payload", http.StatusBadRequest)
	}

	job := &models.CollectionJob{
		UserID:      userID,
		Category:    request.Category,
		Urgency:     request.Urgency,
		Description: request.Description,
		Address:     request.Address,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Status:      models.JobStatusPending,
	}
	if err := s.jobRepo.CreateJob(job); err != nil {
		return nil, fmt.Errorf("error saving job: %w", err)
	}
	return job, nil
}

func (s *collectionJobService) GetJob(jobID uuid.UUID) (*models.CollectionJob, error) {
	job, err := s.jobRepo.GetJobByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("job not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("error fetching job: %w", err)
	}
	return job, nil
}

func (s *collectionJobService) GetUserJobs(userID uint) ([]models.CollectionJob, error) {
	return s.jobRepo.GetJobsByUserID(userID)
}

func (s *collectionJobService) GetWorkerJobs(workerID uint) ([]models.CollectionJob, error) {
	return s.jobRepo.GetJobsByWorkerID(workerID)
}

func (s *collectionJobService) ListJobs(status models.JobStatus) ([]models.CollectionJob, error) {
	return s.jobRepo.GetAllJobs(status)
}

// VerifyJob moves a pending job to verified and pays the requester based on
// category and urgency. The award references the job for idempotency.
func (s *collectionJobService) VerifyJob(jobID uuid.UUID, adminID uint) (*VerifiedJob, error) {
	var points int
	job, err := s.transition(jobID, models.JobStatusVerified, func(j *models.CollectionJob) {
		points = rewards.CalculateJobPoints(j.Category, j.Urgency)
		j.AdminID = &adminID
		j.RewardPoint = points
	})
	if err != nil {
		return nil, err
	}

	award, err := s.rewardService.AwardPoints(models.AwardPointsParams{
		UserID:      job.UserID,
		Type:        models.TransactionJobVerified,
		Amount:      points,
		Description: fmt.Sprintf("Verified collection job: %s/%s", job.Category, job.Urgency),
		Reference: &models.TransactionReference{
			Model: models.ReferenceCollectionJob,
			ID:    job.ID,
		},
		AdminID: &adminID,
		Metadata: models.JSONB{
			"category": job.Category,
			"urgency":  job.Urgency,
		},
	})
	if err != nil {
		return nil, err
	}

	return &VerifiedJob{
		Job:           job,
		PointsAwarded: points,
		Award:         award,
	}, nil
}

func (s *collectionJobService) RejectJob(jobID uuid.UUID, adminID uint) (*models.CollectionJob, error) {
	return s.transition(jobID, models.JobStatusRejected, func(j *models.CollectionJob) {
		j.AdminID = &adminID
	})
}

func (s *collectionJobService) AssignJob(jobID uuid.UUID, workerID uint) (*models.CollectionJob, error) {
	return s.transition(jobID, models.JobStatusAssigned, func(j *models.CollectionJob) {
		j.WorkerID = &workerID
	})
}

func (s *collectionJobService) StartJob(jobID uuid.UUID, workerID uint) (*models.CollectionJob, error) {
	job, err := s.GetJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.WorkerID == nil || *job.WorkerID != workerID {
		return nil, apiError.New("job is not assigned to this worker", http.StatusForbidden)
	}
	return s.transition(jobID, models.JobStatusInProgress, nil)
}

func (s *collectionJobService) CompleteJob(jobID uuid.UUID, workerID uint) (*models.CollectionJob, error) {
	job, err := s.GetJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.WorkerID == nil || *job.WorkerID != workerID {
		return nil, apiError.New("job is not assigned to this worker", http.StatusForbidden)
	}
	return s.transition(jobID, models.JobStatusCompleted, nil)
}

// transition enforces the job status graph before mutating.
func (s *collectionJobService) transition(jobID uuid.UUID, next models.JobStatus, mutate func(*models.CollectionJob)) (*models.CollectionJob, error) {
	job, err := s.GetJob(jobID)
	if err != nil {
		return nil, err
	}
	if !job.Status.CanTransition(next) {
		return nil, apiError.New(
			fmt.Sprintf("cannot move job from %s to %s", job.Status, next), http.StatusConflict)
	}

	job.Status = next
	if mutate != nil {
		mutate(job)
	}
	if err := s.jobRepo.UpdateJob(job); err != nil {
		return nil, fmt.Errorf("error updating job status: %w", err)
	}
	return job, nil
}
