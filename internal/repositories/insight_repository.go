package repositories

import (
	"errors"
	"fmt"
	"strings"

	"finsight/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInsightNotFound      = errors.New("insight not found")
	ErrInsightAlreadyExists = errors.New("insight already exists for this period")
)

// insightRepository implements InsightRepositoryInterface
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository
func NewInsightRepository(db *gorm.DB) InsightRepositoryInterface {
	return &insightRepository{
		db: db,
	}
}

// Create persists a new insight. The (user_id, period) unique index makes
// concurrent duplicate generation lose deterministically.
func (r *insightRepository) Create(insight *models.Insight) error {
	if err := r.db.Create(insight).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrInsightAlreadyExists
		}
		return fmt.Errorf("failed to create insight: %w", err)
	}
	return nil
}

// GetByID retrieves an insight by ID, scoped to its owner
func (r *insightRepository) GetByID(id uuid.UUID, userID uuid.UUID) (*models.Insight, error) {
	var insight models.Insight

	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&insight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsightNotFound
		}
		return nil, fmt.Errorf("failed to get insight: %w", err)
	}

	return &insight, nil
}

// GetByUserAndPeriod retrieves a user's insight for a given period
func (r *insightRepository) GetByUserAndPeriod(userID uuid.UUID, period string) (*models.Insight, error) {
	var insight models.Insight

	err := r.db.Where("user_id = ? AND period = ?", userID, period).First(&insight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsightNotFound
		}
		return nil, fmt.Errorf("failed to get insight by period: %w", err)
	}

	return &insight, nil
}

// ExistsForUserAndPeriod checks whether a user already has an insight for the period
func (r *insightRepository) ExistsForUserAndPeriod(userID uuid.UUID, period string) (bool, error) {
	var count int64

	err := r.db.Model(&models.Insight{}).
		Where("user_id = ? AND period = ?", userID, period).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check insight existence: %w", err)
	}

	return count > 0, nil
}

// ListByUser retrieves a page of a user's insights, newest period first
func (r *insightRepository) ListByUser(userID uuid.UUID, offset, limit int) ([]models.Insight, int64, error) {
	var insights []models.Insight
	var total int64

	if err := r.db.Model(&models.Insight{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count insights: %w", err)
	}

	err := r.db.Where("user_id = ?", userID).
		Order("period DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&insights).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list insights: %w", err)
	}

	return insights, total, nil
}

// isUniqueViolation detects unique constraint failures across the drivers
// we run against (postgres in production, sqlite in tests)
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
