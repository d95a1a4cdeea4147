package repositories

import (
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	// FindByPeriod returns a user's transactions inside [start, end),
	// optionally filtered by type.
	FindByPeriod(userID uuid.UUID, start, end time.Time, typeFilter *models.TransactionType) ([]models.Transaction, error)
	// FindTopExpenses returns the period's largest expense transactions
	// ordered by local amount descending, ties broken by occurrence time.
	FindTopExpenses(userID uuid.UUID, start, end time.Time, limit int) ([]models.Transaction, error)
	// FindTopByAmount returns the period's largest transactions of any
	// type ordered by local amount descending.
	FindTopByAmount(userID uuid.UUID, start, end time.Time, limit int) ([]models.Transaction, error)
	// GroupUsersWithMinExpenses returns users with at least minCount
	// expense transactions inside [start, end), most active first.
	GroupUsersWithMinExpenses(minCount int, start, end time.Time) ([]models.EligibleUser, error)
	CountByUserAndPeriod(userID uuid.UUID, start, end time.Time) (int64, error)
}

// InsightRepositoryInterface defines the contract for insight repository operations
type InsightRepositoryInterface interface {
	Create(insight *models.Insight) error
	GetByID(id uuid.UUID, userID uuid.UUID) (*models.Insight, error)
	GetByUserAndPeriod(userID uuid.UUID, period string) (*models.Insight, error)
	ExistsForUserAndPeriod(userID uuid.UUID, period string) (bool, error)
	// ListByUser returns a page of a user's insights ordered by period
	// descending, then creation time descending, with the total count.
	ListByUser(userID uuid.UUID, offset, limit int) ([]models.Insight, int64, error)
}

// InsightQueueRepositoryInterface defines the contract for the insight generation queue
type InsightQueueRepositoryInterface interface {
	Enqueue(userID uuid.UUID, jobName string) error
	FetchPending(limit int) ([]*models.InsightJob, error)
	MarkProcessing(jobID uuid.UUID) error
	MarkFailed(jobID uuid.UUID, errorMessage string) error
	IncrementRetry(jobID uuid.UUID) error
	// Delete removes a job outright; used for completed and malformed jobs
	Delete(jobID uuid.UUID) error
	GetPendingCount() (int64, error)
	GetProcessingCount() (int64, error)
	GetFailedCount() (int64, error)
	GetOldestPendingAge() (*string, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]*models.User, error)
}
