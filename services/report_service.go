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

// VerifiedReport pairs the updated report with the award it produced.
type VerifiedReport struct {
	Report        *models.WasteReport `json:"report"`
	PointsAwarded int                 `json:"points_awarded"`
	Award         *AwardResult        `json:"award"`
}

type WasteReportService interface {
	CreateReport(userID uint, request *models.CreateReportRequest) (*models.WasteReport, error)
	GetReport(reportID uuid.UUID) (*models.WasteReport, error)
	GetUserReports(userID uint) ([]models.WasteReport, error)
	ListReports(status models.ReportStatus) ([]models.WasteReport, error)
	VerifyReport(reportID uuid.UUID, adminID uint) (*VerifiedReport, error)
	RejectReport(reportID uuid.UUID, adminID uint) (*models.WasteReport, error)
}

type wasteReportService struct {
	Config        *config.Config
	reportRepo    db.WasteReportRepository
	rewardService RewardService
}

func NewWasteReportService(reportRepo db.WasteReportRepository, rewardService RewardService, conf *config.Config) WasteReportService {
	return &wasteReportService{
		Config:        conf,
		reportRepo:    reportRepo,
		rewardService: rewardService,
	}
}

func (s *wasteReportService) CreateReport(userID uint, request *models.CreateReportRequest) (*models.WasteReport, error) {
	if err := models.ConformStrings(request); err != nil {
		return nil, apiError.New("invalid report payload", http.StatusBadRequest)
	}

	report := &models.WasteReport{
		UserID:      userID,
		WasteType:   request.WasteType,
		WeightKg:    request.WeightKg,
		Description: request.Description,
		Address:     request.Address,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Status:      models.ReportStatusPending,
	}
	if err := s.reportRepo.CreateReport(report); err != nil {
		return nil, fmt.Errorf("error saving report: %w", err)
	}
	return report, nil
}

func (s *wasteReportService) GetReport(reportID uuid.UUID) (*models.WasteReport, error) {
	report, err := s.reportRepo.GetReportByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("report not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("error fetching report: %w", err)
	}
	return report, nil
}

func (s *wasteReportService) GetUserReports(userID uint) ([]models.WasteReport, error) {
	return s.reportRepo.GetReportsByUserID(userID)
}

func (s *wasteReportService) ListReports(status models.ReportStatus) ([]models.WasteReport, error) {
	return s.reportRepo.GetAllReports(status)
}

// VerifyReport flips a pending report to verified and pays the reporter the
// calculated amount. The transaction references the report, so re-verifying
// cannot double-pay even though the status check alone would catch it first.
func (s *wasteReportService) VerifyReport(reportID uuid.UUID, adminID uint) (*VerifiedReport, error) {
	report, err := s.GetReport(reportID)
	if err != nil {
		return nil, err
	}
	if report.Status != models.ReportStatusPending {
		return nil, apiError.New(fmt.Sprintf("report is already %s", report.Status), http.StatusConflict)
	}

	points := rewards.CalculateReportPoints(report.WeightKg, report.WasteType)

	report.Status = models.ReportStatusVerified
	report.AdminID = &adminID
	report.RewardPoint = points
	if err := s.reportRepo.UpdateReport(report); err != nil {
		return nil, fmt.Errorf("error updating report status: %w", err)
	}

	award, err := s.rewardService.AwardPoints(models.AwardPointsParams{
		UserID:      report.UserID,
		Type:        models.TransactionReportVerified,
		Amount:      points,
		Description: fmt.Sprintf("Verified waste report: %.1fkg %s", report.WeightKg, report.WasteType),
		Reference: &models.TransactionReference{
			Model: models.ReferenceWasteReport,
			ID:    report.ID,
		},
		AdminID: &adminID,
		Metadata: models.JSONB{
			"waste_type": report.WasteType,
			"weight_kg":  report.WeightKg,
		},
	})
	if err != nil {
		return nil, err
	}

	return &VerifiedReport{
		Report:        report,
		PointsAwarded: points,
		Award:         award,
	}, nil
}

func (s *wasteReportService) RejectReport(reportID uuid.UUID, adminID uint) (*models.WasteReport, error) {
	report, err := s.GetReport(reportID)
	if err != nil {
		return nil, err
	}
	if report.Status != models.ReportStatusPending {
		return nil, apiError.New(fmt.Sprintf("report is already %s", report.Status), http.StatusConflict)
	}

	report.Status = models.ReportStatusRejected
	report.AdminID = &adminID
	if err := s.reportRepo.UpdateReport(report); err != nil {
		return nil, fmt.Errorf("error updating report status: %w", err)
	}
	return report, nil
}
