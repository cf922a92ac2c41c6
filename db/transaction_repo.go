package db

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ecotrack/wastenexus/models"
)

type TransactionRepository interface {
	AwardPoints(params models.AwardPointsParams) (*models.PointTransaction, *models.User, error)
	GetUserTransactions(userID uint, limit int) ([]models.PointTransaction, error)
	GetTransactionStats(userID *uint) ([]models.TransactionStat, error)
	GetTransactionByReference(ref models.TransactionReference, txType models.TransactionType) (*models.PointTransaction, error)
	SumTransactionsByUserID(userID uint) (int, error)
	SumAllTransactions() (int, error)
	GetLeaderboard(limit int) ([]models.LeaderboardEntry, error)
}

type transactionRepo struct {
	DB *gorm.DB
}

func NewTransactionRepo(db *GormDB) TransactionRepository {
	return &transactionRepo{db.DB}
}

// AwardPoints increments the user's running total and appends the matching
// ledger row in a single database transaction, so the balance and the ledger
// cannot drift apart. When a reference is supplied, an existing row for the
// same (user, reference, type) short-circuits to that row instead of paying
// twice.
func (r *transactionRepo) AwardPoints(params models.AwardPointsParams) (*models.PointTransaction, *models.User, error) {
	var (
		txn  models.PointTransaction
		user models.User
	)

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if params.Reference != nil {
			var existing models.PointTransaction
			err := tx.Where("user_id = ? AND reference_id = ? AND reference_model = ? AND type = ?",
				params.UserID, params.Reference.ID, params.Reference.Model, params.Type).
				First(&existing).Error
			if err == nil {
				txn = existing
				return tx.First(&user, params.UserID).Error
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		res := tx.Model(&models.User{}).
			Where("id = ?", params.UserID).
			UpdateColumn("total_points", gorm.Expr("total_points + ?", params.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.First(&user, params.UserID).Error; err != nil {
			return err
		}

		metadata := models.JSONB{}
		for k, v := range params.Metadata {
			metadata[k] = v
		}
		metadata["previous_total"] = user.TotalPoints - params.Amount
		metadata["new_total"] = user.TotalPoints

		txn = models.PointTransaction{
			UserID:      params.UserID,
			Type:        params.Type,
			Amount:      params.Amount,
			Description: params.Description,
			AdminID:     params.AdminID,
			Metadata:    metadata,
		}
		if params.Reference != nil {
			refID := params.Reference.ID
			refModel := params.Reference.Model
			txn.ReferenceID = &refID
			txn.ReferenceModel = &refModel
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "awarding points")
	}

	return &txn, &user, nil
}

func (r *transactionRepo) GetUserTransactions(userID uint, limit int) ([]models.PointTransaction, error) {
	var transactions []models.PointTransaction
	query := r.DB.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&transactions).Error; err != nil {
		return nil, errors.Wrap(err, "fetching user transactions")
	}
	return transactions, nil
}

// GetTransactionStats aggregates the ledger per transaction type. A nil
// userID aggregates across all users.
func (r *transactionRepo) GetTransactionStats(userID *uint) ([]models.TransactionStat, error) {
	var stats []models.TransactionStat
	query := r.DB.Model(&models.PointTransaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS count, COALESCE(AVG(amount), 0) AS avg_amount").
		Group("type")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if err := query.Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "aggregating transaction stats")
	}
	return stats, nil
}

func (r *transactionRepo) GetTransactionByReference(ref models.TransactionReference, txType models.TransactionType) (*models.PointTransaction, error) {
	var txn models.PointTransaction
	err := r.DB.Where("reference_id = ? AND reference_model = ? AND type = ?", ref.ID, ref.Model, txType).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching transaction by reference")
	}
	return &txn, nil
}

// SumTransactionsByUserID recomputes a user's balance from the ledger. Used
// to cross-check the materialized total.
func (r *transactionRepo) SumTransactionsByUserID(userID uint) (int, error) {
	var total int
	err := r.DB.Model(&models.PointTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("error summing transactions for user %d: %w", userID, err)
	}
	return total, nil
}

// SumAllTransactions totals every ledger row, the net points issued across the
// platform.
func (r *transactionRepo) SumAllTransactions() (int, error) {
	var total int
	err := r.DB.Model(&models.PointTransaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "summing all transactions")
	}
	return total, nil
}

func (r *transactionRepo) GetLeaderboard(limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var entries []models.LeaderboardEntry
	err := r.DB.Model(&models.User{}).
		Select("id AS user_id, fullname, username, total_points").
		Order("total_points DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetching leaderboard")
	}
	return entries, nil
}
