package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/ecotrack/wastenexus/errors"
	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/server/response"
)

func (s *Server) handleCreateReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		var request models.CreateReportRequest
		if err := decode(c, &request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		report, err := s.WasteReportService.CreateReport(userID, &request)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Report submitted", http.StatusCreated, report, nil)
	}
}

func (s *Server) handleGetMyReports() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		reports, err := s.WasteReportService.GetUserReports(userID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, reports, nil)
	}
}

func (s *Server) handleGetReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, ok := parseUUIDParam(c, "reportID")
		if !ok {
			return
		}

		report, err := s.WasteReportService.GetReport(reportID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, report, nil)
	}
}

func (s *Server) handleListReports() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.ReportStatus(c.Query("status"))

		reports, err := s.WasteReportService.ListReports(status)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, reports, nil)
	}
}

func (s *Server) handleVerifyReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		reportID, ok := parseUUIDParam(c, "reportID")
		if !ok {
			return
		}

		verified, err := s.WasteReportService.VerifyReport(reportID, adminID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Report verified", http.StatusOK, verified, nil)
	}
}

func (s *Server) handleRejectReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		reportID, ok := parseUUIDParam(c, "reportID")
		if !ok {
			return
		}

		report, err := s.WasteReportService.RejectReport(reportID, adminID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Report rejected", http.StatusOK, report, nil)
	}
}
