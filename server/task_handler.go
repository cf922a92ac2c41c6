package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/ecotrack/wastenexus/errors"
	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/server/response"
)

func (s *Server) handleCreateTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		var request models.CreateTaskRequest
		if err := decode(c, &request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		task, err := s.WorkerTaskService.CreateTask(adminID, &request)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Task created", http.StatusCreated, task, nil)
	}
}

func (s *Server) handleGetMyTasks() gin.HandlerFunc {
	return func(c *gin.Context) {
		workerID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		tasks, err := s.WorkerTaskService.GetWorkerTasks(workerID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, tasks, nil)
	}
}

func (s *Server) handleStartTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		workerID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		taskID, ok := parseUUIDParam(c, "taskID")
		if !ok {
			return
		}

		task, err := s.WorkerTaskService.StartTask(taskID, workerID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Task started", http.StatusOK, task, nil)
	}
}

func (s *Server) handleCompleteTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		workerID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		taskID, ok := parseUUIDParam(c, "taskID")
		if !ok {
			return
		}

		completed, err := s.WorkerTaskService.CompleteTask(taskID, workerID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Task completed", http.StatusOK, completed, nil)
	}
}
