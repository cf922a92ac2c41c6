package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/ecotrack/wastenexus/errors"
	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/server/response"
)

func (s *Server) handleCreateJob() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		var request models.CreateJobRequest
		if err := decode(c, &request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		job, err := s.CollectionJobService.CreateJob(userID, &request)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Job submitted", http.StatusCreated, job, nil)
	}
}

func (s *Server) handleGetMyJobs() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		jobs, err := s.CollectionJobService.GetUserJobs(userID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, jobs, nil)
	}
}

func (s *Server) handleGetAssignedJobs() gin.HandlerFunc {
	return func(c *gin.Context) {
		workerID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		jobs, err := s.CollectionJobService.GetWorkerJobs(workerID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, jobs, nil)
	}
}

func (s *Server) handleGetJob() gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, ok := parseUUIDParam(c, "jobID")
		if !ok {
			return
		}

		job, err := s.CollectionJobService.GetJob(jobID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, job, nil)
	}
}

func (s *Server) handleListJobs() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.JobStatus(c.Query("status"))

		jobs, err := s.CollectionJobService.ListJobs(status)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, jobs, nil)
	}
}

func (s *Server) handleVerifyJob() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		jobID, ok := parseUUIDParam(c, "jobID")
		if !ok {
			return
		}

		verified, err := s.CollectionJobService.VerifyJob(jobID, adminID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Job verified", http.StatusOK, verified, nil)
	}
}

func (s *Server) handleRejectJob() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		jobID, ok := parseUUIDParam(c, "jobID")
		if !ok {
			return
		}

		job, err := s.CollectionJobService.RejectJob(jobID, adminID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Job rejected", http.StatusOK, job, nil)
	}
}

func (s *Server) handleAssignJob() gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, ok := parseUUIDParam(c, "jobID")
		if !ok {
			return
		}

		var request models.AssignJobRequest
		if err := decode(c, &request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		job, err := s.CollectionJobService.AssignJob(jobID, request.WorkerID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Job assigned", http.StatusOK, job, nil)
	}
}

func (s *Server) handleStartJob() gin.HandlerFunc {
	return func(c *gin.Context) {
		workerID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		jobID, ok := parseUUIDParam(c, "jobID")
		if !ok {
			return
		}

		job, err := s.CollectionJobService.StartJob(jobID, workerID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Job started", http.StatusOK, job, nil)
	}
}

func (s *Server) handleCompleteJob() gin.HandlerFunc {
	return func(c *gin.Context) {
		workerID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		jobID, ok := parseUUIDParam(c, "jobID")
		if !ok {
			return
		}

		job, err := s.CollectionJobService.CompleteJob(jobID, workerID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Job completed", http.StatusOK, job, nil)
	}
}
