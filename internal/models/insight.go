package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Insight is an AI-generated monthly summary of a user's spending.
// At most one insight exists per user and period.
type Insight struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_insights_user_period,priority:1" json:"userId"`
	Period       string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_insights_user_period,priority:2" json:"period"`
	Content      string    `gorm:"type:text" json:"content"`
	LLMModel     string    `gorm:"type:varchar(100)" json:"-"`
	LLMRequestID string    `gorm:"type:varchar(100)" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null" json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Insight
func (i *Insight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return nil
}

// TableName returns the table name for Insight
func (i *Insight) TableName() string {
	return "insights"
}
