package models

import "github.com/google/uuid"

// EligibleUser is a user who recorded enough expense transactions in a
// period to qualify for insight generation, with their expense count.
type EligibleUser struct {
	UserID           uuid.UUID `gorm:"column:user_id" json:"userId"`
	TransactionCount int64     `gorm:"column:transaction_count" json:"transactionCount"`
}
