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
	ErrJobNotFound = errors.New("insight job not found")
)

// insightQueueRepository implements InsightQueueRepositoryInterface
type insightQueueRepository struct {
	db *gorm.DB
}

// NewInsightQueueRepository creates a new insight queue repository
func NewInsightQueueRepository(db *gorm.DB) InsightQueueRepositoryInterface {
	return &insightQueueRepository{
		db: db,
	}
}

func (r *insightQueueRepository) Enqueue(userID uuid.UUID, jobName string) error {
	job := &models.InsightJob{
		UserID:  userID,
		JobName: jobName,
		Status:  models.InsightJobStatusPending,
	}

	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to enqueue insight job: %w", err)
	}

	return nil
}

func (r *insightQueueRepository) FetchPending(limit int) ([]*models.InsightJob, error) {
	var jobs []*models.InsightJob

	err := r.db.Where("status = ? AND scheduled_at <= ?", models.InsightJobStatusPending, time.Now()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&jobs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending jobs: %w", err)
	}

	return jobs, nil
}

func (r *insightQueueRepository) MarkProcessing(jobID uuid.UUID) error {
	result := r.db.Model(&models.InsightJob{ID: jobID}).
		Update("status", models.InsightJobStatusProcessing)

	if result.Error != nil {
		return fmt.Errorf("failed to mark job as processing: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

func (r *insightQueueRepository) MarkFailed(jobID uuid.UUID, errorMessage string) error {
	now := time.Now()
	result := r.db.Model(&models.InsightJob{ID: jobID}).
		Updates(map[string]interface{}{
			"status":        models.InsightJobStatusFailed,
			"error_message": errorMessage,
			"processed_at":  now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark job as failed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

func (r *insightQueueRepository) IncrementRetry(jobID uuid.UUID) error {
	job := &models.InsightJob{ID: jobID}
	if err := r.db.First(job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to find insight job: %w", err)
	}

	job.RetryCount++
	job.ScheduledAt = job.CalculateNextScheduledTime()
	job.Status = models.InsightJobStatusPending

	if err := r.db.Save(job).Error; err != nil {
		return fmt.Errorf("failed to increment retry: %w", err)
	}

	return nil
}

// Delete removes a job from the queue. Successful jobs are deleted rather
// than retained; failed jobs stay for inspection.
func (r *insightQueueRepository) Delete(jobID uuid.UUID) error {
	result := r.db.Delete(&models.InsightJob{ID: jobID})

	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

func (r *insightQueueRepository) GetPendingCount() (int64, error) {
	return r.countByStatus(models.InsightJobStatusPending)
}

func (r *insightQueueRepository) GetProcessingCount() (int64, error) {
	return r.countByStatus(models.InsightJobStatusProcessing)
}

func (r *insightQueueRepository) GetFailedCount() (int64, error) {
	return r.countByStatus(models.InsightJobStatusFailed)
}

func (r *insightQueueRepository) countByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.InsightJob{}).
		Where("status = ?", status).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count %s jobs: %w", status, err)
	}

	return count, nil
}

func (r *insightQueueRepository) GetOldestPendingAge() (*string, error) {
	var job models.InsightJob

	err := r.db.Where("status = ?", models.InsightJobStatusPending).
		Order("created_at ASC").
		First(&job).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find oldest pending job: %w", err)
	}

	age := time.Since(job.CreatedAt).String()
	return &age, nil
}
