package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/ecotrack/wastenexus/errors"
	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/server/response"
)

func (s *Server) handleCreateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		championID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		var request models.CreateEventRequest
		if err := decode(c, &request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		event, err := s.EventService.CreateEvent(championID, &request)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Event created", http.StatusCreated, event, nil)
	}
}

func (s *Server) handleListEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.EventStatus(c.Query("status"))

		events, err := s.EventService.ListEvents(status)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, events, nil)
	}
}

func (s *Server) handleActivateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		championID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		eventID, ok := parseUUIDParam(c, "eventID")
		if !ok {
			return
		}

		event, err := s.EventService.ActivateEvent(eventID, championID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Event activated", http.StatusOK, event, nil)
	}
}

func (s *Server) handleCompleteEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		championID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		eventID, ok := parseUUIDParam(c, "eventID")
		if !ok {
			return
		}

		event, err := s.EventService.CompleteEvent(eventID, championID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Event completed", http.StatusOK, event, nil)
	}
}

func (s *Server) handleJoinEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		eventID, ok := parseUUIDParam(c, "eventID")
		if !ok {
			return
		}

		participant, err := s.EventService.JoinEvent(eventID, userID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Joined event", http.StatusOK, participant, nil)
	}
}

func (s *Server) handleMarkParticipation() gin.HandlerFunc {
	return func(c *gin.Context) {
		championID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		eventID, ok := parseUUIDParam(c, "eventID")
		if !ok {
			return
		}
		userID, err := strconv.ParseUint(c.Param("userID"), 10, 32)
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid userID", http.StatusBadRequest))
			return
		}

		award, err := s.EventService.MarkParticipation(eventID, uint(userID), championID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Participation recorded", http.StatusOK, award, nil)
	}
}

func (s *Server) handleGetParticipants() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseUUIDParam(c, "eventID")
		if !ok {
			return
		}

		participants, err := s.EventService.GetParticipants(eventID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, participants, nil)
	}
}
