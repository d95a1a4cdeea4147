package repositories

import (
	"errors"
	"fmt"
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range transactions {
			if err := tx.Create(&transactions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to create transaction batch: %w", err)
	}

	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// FindByPeriod retrieves a user's transactions inside [start, end)
func (r *transactionRepository) FindByPeriod(userID uuid.UUID, start, end time.Time, typeFilter *models.TransactionType) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := r.db.Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end)
	if typeFilter != nil {
		query = query.Where("type = ?", *typeFilter)
	}

	if err := query.Order("occurred_at ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to find transactions by period: %w", err)
	}

	return transactions, nil
}

// FindTopExpenses retrieves the period's largest expense transactions,
// ordered by local amount descending with occurrence time as tiebreaker
func (r *transactionRepository) FindTopExpenses(userID uuid.UUID, start, end time.Time, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := r.db.Where("user_id = ? AND type = ? AND occurred_at >= ? AND occurred_at < ?",
		userID, models.TransactionTypeExpense, start, end).
		Order("amount_local DESC, occurred_at ASC").
		Limit(limit).
		Find(&transactions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find top expenses: %w", err)
	}

	return transactions, nil
}

// FindTopByAmount retrieves the period's largest transactions of any type
func (r *transactionRepository) FindTopByAmount(userID uuid.UUID, start, end time.Time, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := r.db.Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Order("amount_local DESC").
		Limit(limit).
		Find(&transactions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find top transactions: %w", err)
	}

	return transactions, nil
}

// GroupUsersWithMinExpenses finds users with at least minCount expense
// transactions in the period, ordered by transaction count descending
func (r *transactionRepository) GroupUsersWithMinExpenses(minCount int, start, end time.Time) ([]models.EligibleUser, error) {
	var eligible []models.EligibleUser

	err := r.db.Model(&models.Transaction{}).
		Select("user_id, COUNT(*) as transaction_count").
		Where("type = ? AND occurred_at >= ? AND occurred_at < ?", models.TransactionTypeExpense, start, end).
		Group("user_id").
		Having("COUNT(*) >= ?", minCount).
		Order("transaction_count DESC").
		Scan(&eligible).Error

	if err != nil {
		return nil, fmt.Errorf("failed to group eligible users: %w", err)
	}

	return eligible, nil
}

// CountByUserAndPeriod counts a user's transactions inside [start, end)
func (r *transactionRepository) CountByUserAndPeriod(userID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64

	err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return count, nil
}
