package services

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/ecotrack/wastenexus/config"
	"github.com/ecotrack/wastenexus/db"
	apiError "github.com/ecotrack/wastenexus/errors"
	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/rewards"
)

// AwardResult is what every award call site hands back to its HTTP handler.
type AwardResult struct {
	Transaction    *models.PointTransaction `json:"transaction"`
	NewTotalPoints int                      `json:"new_total_points"`
	Tier           rewards.Tier             `json:"tier"`
}

// RewardSummary is the dashboard view of a user's balance.
type RewardSummary struct {
	TotalPoints  int                       `json:"total_points"`
	Tier         rewards.Tier              `json:"tier"`
	LedgerTotal  int                       `json:"ledger_total"`
	Transactions []models.PointTransaction `json:"transactions"`
}

type RewardService interface {
	AwardPoints(params models.AwardPointsParams) (*AwardResult, error)
	ManualAdjustment(adminID uint, request *models.ManualAdjustmentRequest) (*AwardResult, error)
	GetUserTransactions(userID uint, limit int) ([]models.PointTransaction, error)
	GetTransactionStats(userID *uint) ([]models.TransactionStat, error)
	GetUserRewardSummary(userID uint) (*RewardSummary, error)
	GetTotalPointsIssued() (int, error)
	GetLeaderboard(limit int) ([]models.LeaderboardEntry, error)
}

type rewardService struct {
	Config          *config.Config
	transactionRepo db.TransactionRepository
	authRepo        db.AuthRepository
}

func NewRewardService(transactionRepo db.TransactionRepository, authRepo db.AuthRepository, conf *config.Config) RewardService {
	return &rewardService{
		Config:          conf,
		transactionRepo: transactionRepo,
		authRepo:        authRepo,
	}
}

func (s *rewardService) AwardPoints(params models.AwardPointsParams) (*AwardResult, error) {
	transaction, user, err := s.transactionRepo.AwardPoints(params)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("user not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("error awarding points: %w", err)
	}

	return &AwardResult{
		Transaction:    transaction,
		NewTotalPoints: user.TotalPoints,
		Tier:           rewards.GetRewardTier(user.TotalPoints),
	}, nil
}

// ManualAdjustment validates and applies an admin point correction. Amount is
// signed; deductions may take a total below zero.
func (s *rewardService) ManualAdjustment(adminID uint, request *models.ManualAdjustmentRequest) (*AwardResult, error) {
	if request.Amount == 0 {
		return nil, apiError.New("amount is required and must be non-zero", http.StatusBadRequest)
	}
	if request.Description == "" {
		return nil, apiError.New("description is required", http.StatusBadRequest)
	}

	return s.AwardPoints(models.AwardPointsParams{
		UserID:      request.UserID,
		Type:        models.TransactionManualAdjustment,
		Amount:      request.Amount,
		Description: request.Description,
		AdminID:     &adminID,
	})
}

func (s *rewardService) GetUserTransactions(userID uint, limit int) ([]models.PointTransaction, error) {
	transactions, err := s.transactionRepo.GetUserTransactions(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error getting user transactions: %w", err)
	}
	return transactions, nil
}

func (s *rewardService) GetTransactionStats(userID *uint) ([]models.TransactionStat, error) {
	stats, err := s.transactionRepo.GetTransactionStats(userID)
	if err != nil {
		return nil, fmt.Errorf("error getting transaction stats: %w", err)
	}
	return stats, nil
}

// GetUserRewardSummary returns the balance, its tier, the recent ledger and
// the ledger-recomputed total so drift would be visible if it ever occurred.
func (s *rewardService) GetUserRewardSummary(userID uint) (*RewardSummary, error) {
	user, err := s.authRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("user not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	transactions, err := s.transactionRepo.GetUserTransactions(userID, 20)
	if err != nil {
		return nil, fmt.Errorf("error getting transactions: %w", err)
	}
	ledgerTotal, err := s.transactionRepo.SumTransactionsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("error summing transactions: %w", err)
	}

	return &RewardSummary{
		TotalPoints:  user.TotalPoints,
		Tier:         rewards.GetRewardTier(user.TotalPoints),
		LedgerTotal:  ledgerTotal,
		Transactions: transactions,
	}, nil
}

func (s *rewardService) GetTotalPointsIssued() (int, error) {
	total, err := s.transactionRepo.SumAllTransactions()
	if err != nil {
		return 0, fmt.Errorf("error summing all transactions: %w", err)
	}
	return total, nil
}

func (s *rewardService) GetLeaderboard(limit int) ([]models.LeaderboardEntry, error) {
	entries, err := s.transactionRepo.GetLeaderboard(limit)
	if err != nil {
		return nil, fmt.Errorf("error getting leaderboard: %w", err)
	}
	return entries, nil
}
