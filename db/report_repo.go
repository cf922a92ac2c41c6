package db

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ecotrack/wastenexus/models"
)

type WasteReportRepository interface {
	CreateReport(report *models.WasteReport) error
	GetReportByID(reportID uuid.UUID) (*models.WasteReport, error)
	UpdateReport(report *models.WasteReport) error
	GetReportsByUserID(userID uint) ([]models.WasteReport, error)
	GetAllReports(status models.ReportStatus) ([]models.WasteReport, error)
}

type wasteReportRepo struct {
	DB *gorm.DB
}

func NewWasteReportRepo(db *GormDB) WasteReportRepository {
	return &wasteReportRepo{db.DB}
}

func (r *wasteReportRepo) CreateReport(report *models.WasteReport) error {
	return r.DB.Create(report).Error
}

func (r *wasteReportRepo) GetReportByID(reportID uuid.UUID) (*models.WasteReport, error) {
	var report models.WasteReport
	if err := r.DB.Where("id = ?", reportID).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *wasteReportRepo) UpdateReport(report *models.WasteReport) error {
	return r.DB.Save(report).Error
}

func (r *wasteReportRepo) GetReportsByUserID(userID uint) ([]models.WasteReport, error) {
	var reports []models.WasteReport
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&reports).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetching user reports")
	}
	return reports, nil
}

// GetAllReports lists reports, optionally filtered by status.
func (r *wasteReportRepo) GetAllReports(status models.ReportStatus) ([]models.WasteReport, error) {
	var reports []models.WasteReport
	query := r.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&reports).Error; err != nil {
		return nil, errors.Wrap(err, "fetching reports")
	}
	return reports, nil
}
