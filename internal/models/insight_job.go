package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InsightJobNameGenerate = "generate"

	InsightJobStatusPending    = "pending"
	InsightJobStatusProcessing = "processing"
	InsightJobStatusFailed     = "failed"

	// InsightJobMaxRetries is the number of attempts before a job is
	// marked failed and retained for inspection.
	InsightJobMaxRetries = 3
)

// InsightJobBackoffBase is the delay before the first retry; each
// subsequent retry doubles it (5s, 10s, 20s).
var InsightJobBackoffBase = 5 * time.Second

// InsightJob is a queued request to generate an insight for a user.
// Completed jobs are deleted from the queue; failed jobs are retained.
type InsightJob struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_insight_queue_user" json:"userId"`
	JobName      string     `gorm:"type:varchar(50);not null;default:'generate'" json:"jobName"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_insight_queue_status,priority:1" json:"status"`
	RetryCount   int        `gorm:"not null;default:0" json:"retryCount"`
	MaxRetries   int        `gorm:"not null;default:3" json:"maxRetries"`
	ScheduledAt  time.Time  `gorm:"not null;index:idx_insight_queue_status,priority:2" json:"scheduledAt"`
	ProcessedAt  *time.Time `json:"processedAt,omitempty"`
	ErrorMessage string     `gorm:"type:text" json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updatedAt"`
}

func (*InsightJob) TableName() string {
	return "insight_generation_queue"
}

func (j *InsightJob) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.JobName == "" {
		j.JobName = InsightJobNameGenerate
	}
	if j.MaxRetries == 0 {
		j.MaxRetries = InsightJobMaxRetries
	}
	if j.ScheduledAt.IsZero() {
		j.ScheduledAt = time.Now()
	}
	return nil
}

// NextBackoff returns the delay before the next attempt, doubling per retry
func (j *InsightJob) NextBackoff() time.Duration {
	return InsightJobBackoffBase * (1 << uint(j.RetryCount))
}

// CalculateNextScheduledTime returns when the job should next be attempted
func (j *InsightJob) CalculateNextScheduledTime() time.Time {
	return time.Now().Add(j.NextBackoff())
}

func (j *InsightJob) CanRetry() bool {
	return j.RetryCount < j.MaxRetries
}
