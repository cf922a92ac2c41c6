package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/ecotrack/wastenexus/errors"
	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/server/response"
)

const defaultTransactionLimit = 50

func (s *Server) handleGetMyRewardSummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		summary, err := s.RewardService.GetUserRewardSummary(userID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, summary, nil)
	}
}

func (s *Server) handleGetMyTransactions() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		transactions, err := s.RewardService.GetUserTransactions(userID, limitFromQuery(c))
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, transactions, nil)
	}
}

func (s *Server) handleGetMyTransactionStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		stats, err := s.RewardService.GetTransactionStats(&userID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, stats, nil)
	}
}

func (s *Server) handleGetGlobalTransactionStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := s.RewardService.GetTransactionStats(nil)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, stats, nil)
	}
}

func (s *Server) handleGetUserTransactions() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userID"), 10, 32)
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid userID", http.StatusBadRequest))
			return
		}

		transactions, err := s.RewardService.GetUserTransactions(uint(userID), limitFromQuery(c))
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, transactions, nil)
	}
}

func (s *Server) handleManualAdjustment() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		var request models.ManualAdjustmentRequest
		if err := decode(c, &request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		result, err := s.RewardService.ManualAdjustment(adminID, &request)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Adjustment applied", http.StatusOK, result, nil)
	}
}

func (s *Server) handleGetTotalPointsIssued() gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := s.RewardService.GetTotalPointsIssued()
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, gin.H{"total_points_issued": total}, nil)
	}
}

func (s *Server) handleGetLeaderboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := s.RewardService.GetLeaderboard(limitFromQuery(c))
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, entries, nil)
	}
}

func limitFromQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 || limit > 200 {
		return defaultTransactionLimit
	}
	return limit
}
