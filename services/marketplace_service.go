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

type ApprovedItem struct {
	Item          *models.MarketplaceItem `json:"item"`
	PointsAwarded int                     `json:"points_awarded"`
	Award         *AwardResult            `json:"award"`
}

type MarketplaceService interface {
	ListItem(userID uint, request *models.CreateItemRequest) (*models.MarketplaceItem, error)
	GetItem(itemID uuid.UUID) (*models.MarketplaceItem, error)
	GetUserItems(userID uint) ([]models.MarketplaceItem, error)
	BrowseItems(status models.ItemStatus) ([]models.MarketplaceItem, error)
	ApproveItem(itemID uuid.UUID, adminID uint) (*ApprovedItem, error)
	RejectItem(itemID uuid.UUID, adminID uint) (*models.MarketplaceItem, error)
}

type marketplaceService struct {
	Config        *config.Config
	itemRepo      db.MarketplaceRepository
	rewardService RewardService
}

func NewMarketplaceService(itemRepo db.MarketplaceRepository, rewardService RewardService, conf *config.Config) MarketplaceService {
	return &marketplaceService{
		Config:        conf,
		itemRepo:      itemRepo,
		rewardService: rewardService,
	}
}

func (s *marketplaceService) ListItem(userID uint, request *models.CreateItemRequest) (*models.MarketplaceItem, error) {
	if err := models.ConformStrings(request); err != nil {
		return nil, apiError.New("invalid item payload", http.StatusBadRequest)
	}

	item := &models.MarketplaceItem{
		UserID:      userID,
		Title:       request.Title,
		Description: request.Description,
		Category:    request.Category,
		Condition:   request.Condition,
		Status:      models.ItemStatusPending,
	}
	if err := s.itemRepo.CreateItem(item); err != nil {
		return nil, fmt.Errorf("error saving item: %w", err)
	}
	return item, nil
}

func (s *marketplaceService) GetItem(itemID uuid.UUID) (*models.MarketplaceItem, error) {
	item, err := s.itemRepo.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("item not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("error fetching item: %w", err)
	}
	return item, nil
}

func (s *marketplaceService) GetUserItems(userID uint) ([]models.MarketplaceItem, error) {
	return s.itemRepo.GetItemsByUserID(userID)
}

func (s *marketplaceService) BrowseItems(status models.ItemStatus) ([]models.MarketplaceItem, error) {
	return s.itemRepo.GetAllItems(status)
}

// ApproveItem publishes a pending listing and pays the lister the fixed
// marketplace award.
func (s *marketplaceService) ApproveItem(itemID uuid.UUID, adminID uint) (*ApprovedItem, error) {
	item, err := s.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != models.ItemStatusPending {
		return nil, apiError.New(fmt.Sprintf("item is already %s", item.Status), http.StatusConflict)
	}

	item.Status = models.ItemStatusApproved
	item.AdminID = &adminID
	if err := s.itemRepo.UpdateItem(item); err != nil {
		return nil, fmt.Errorf("error updating item status: %w", err)
	}

	award, err := s.rewardService.AwardPoints(models.AwardPointsParams{
		UserID:      item.UserID,
		Type:        models.TransactionMarketplaceApproved,
		Amount:      rewards.MarketplaceApprovalPoints,
		Description: fmt.Sprintf("Marketplace listing approved: %s", item.Title),
		Reference: &models.TransactionReference{
			Model: models.ReferenceMarketplaceItem,
			ID:    item.ID,
		},
		AdminID: &adminID,
	})
	if err != nil {
		return nil, err
	}

	return &ApprovedItem{
		Item:          item,
		PointsAwarded: rewards.MarketplaceApprovalPoints,
		Award:         award,
	}, nil
}

func (s *marketplaceService) RejectItem(itemID uuid.UUID, adminID uint) (*models.MarketplaceItem, error) {
	item, err := s.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != models.ItemStatusPending {
		return nil, apiError.New(fmt.Sprintf("item is already %s", item.Status), http.StatusConflict)
	}

	item.Status = models.ItemStatusRejected
	item.AdminID = &adminID
	if err := s.itemRepo.UpdateItem(item); err != nil {
		return nil, fmt.Errorf("error updating item status: %w", err)
	}
	return item, nil
}
