package db

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ecotrack/wastenexus/models"
)

type MarketplaceRepository interface {
	CreateItem(item *models.MarketplaceItem) error
	GetItemByID(itemID uuid.UUID) (*models.MarketplaceItem, error)
	UpdateItem(item *models.MarketplaceItem) error
	GetItemsByUserID(userID uint) ([]models.MarketplaceItem, error)
	GetAllItems(status models.ItemStatus) ([]models.MarketplaceItem, error)
}

type marketplaceRepo struct {
	DB *gorm.DB
}

func NewMarketplaceRepo(db *GormDB) MarketplaceRepository {
	return &marketplaceRepo{db.DB}
}

func (r *marketplaceRepo) CreateItem(item *models.MarketplaceItem) error {
	return r.DB.Create(item).Error
}

func (r *marketplaceRepo) GetItemByID(itemID uuid.UUID) (*models.MarketplaceItem, error) {
	var item models.MarketplaceItem
	if err := r.DB.Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *marketplaceRepo) UpdateItem(item *models.MarketplaceItem) error {
	return r.DB.Save(item).Error
}

func (r *marketplaceRepo) GetItemsByUserID(userID uint) ([]models.MarketplaceItem, error) {
	var items []models.MarketplaceItem
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetching user items")
	}
	return items, nil
}

func (r *marketplaceRepo) GetAllItems(status models.ItemStatus) ([]models.MarketplaceItem, error) {
	var items []models.MarketplaceItem
	query := r.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "fetching items")
	}
	return items, nil
}
