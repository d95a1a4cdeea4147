package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// TransactionCategory classifies what a transaction was spent on or earned from
type TransactionCategory string

const (
	CategoryDailyExpenses     TransactionCategory = "DAILY_EXPENSES"
	CategoryTransportation    TransactionCategory = "TRANSPORTATION"
	CategoryHousing           TransactionCategory = "HOUSING"
	CategoryEntertainment     TransactionCategory = "ENTERTAINMENT"
	CategoryHealthcare        TransactionCategory = "HEALTHCARE"
	CategoryEducation         TransactionCategory = "EDUCATION"
	CategorySavingsInvestment TransactionCategory = "SAVINGS_INVESTMENT"
	CategoryCharityGifts      TransactionCategory = "CHARITY_GIFTS"
	CategorySalary            TransactionCategory = "SALARY"
	CategoryMiscellaneous     TransactionCategory = "MISCELLANEOUS"
)

// TransactionIntent records whether the spending was planned
type TransactionIntent string

const (
	IntentPlanned    TransactionIntent = "PLANNED"
	IntentImpulse    TransactionIntent = "IMPULSE"
	IntentObligation TransactionIntent = "OBLIGATION"
)

// TransactionEmotion records how the user felt about the transaction
type TransactionEmotion string

const (
	EmotionJoy          TransactionEmotion = "JOY"
	EmotionSatisfaction TransactionEmotion = "SATISFACTION"
	EmotionNeutral      TransactionEmotion = "NEUTRAL"
	EmotionAnxiety      TransactionEmotion = "ANXIETY"
	EmotionRegret       TransactionEmotion = "REGRET"
)

var (
	ErrInvalidTransactionType     = errors.New("invalid transaction type")
	ErrInvalidTransactionCategory = errors.New("invalid transaction category")
	ErrInvalidTransactionIntent   = errors.New("invalid transaction intent")
	ErrInvalidTransactionEmotion  = errors.New("invalid transaction emotion")
	ErrInvalidAmount              = errors.New("transaction amount must be positive")
)

// Transaction represents a single income or expense record.
// AmountLocal is the amount in the user's local currency as an integer;
// AmountUSD carries the converted amount with two decimal places.
type Transaction struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID           `gorm:"type:uuid;not null;index:idx_transactions_user_occurred,priority:1" json:"userId"`
	Type        TransactionType     `gorm:"type:varchar(10);not null" json:"type"`
	AmountLocal int64               `gorm:"not null" json:"amountLocal"`
	AmountUSD   decimal.Decimal     `gorm:"type:decimal(15,2);not null" json:"amountUsd"`
	Category    TransactionCategory `gorm:"type:varchar(30);not null" json:"category"`
	Intent      TransactionIntent   `gorm:"type:varchar(20);not null" json:"intent"`
	Emotion     TransactionEmotion  `gorm:"type:varchar(20);not null" json:"emotion"`
	Note        string              `gorm:"type:varchar(500)" json:"note,omitempty"`
	OccurredAt  time.Time           `gorm:"not null;index:idx_transactions_user_occurred,priority:2" json:"occurredAt"`
	CreatedAt   time.Time           `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time           `gorm:"not null" json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	if t.OccurredAt.IsZero() {
		t.OccurredAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidTransactionCategory(t.Category) {
		return ErrInvalidTransactionCategory
	}

	if !IsValidTransactionIntent(t.Intent) {
		return ErrInvalidTransactionIntent
	}

	if !IsValidTransactionEmotion(t.Emotion) {
		return ErrInvalidTransactionEmotion
	}

	if t.AmountLocal <= 0 || t.AmountUSD.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if len(t.Note) > 500 {
		return errors.New("note too long")
	}

	return nil
}

// IsExpense returns true if the transaction is an expense
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome returns true if the transaction is income
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType TransactionType) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// IsValidTransactionCategory checks if the category is one of the closed set
func IsValidTransactionCategory(category TransactionCategory) bool {
	switch category {
	case CategoryDailyExpenses, CategoryTransportation, CategoryHousing,
		CategoryEntertainment, CategoryHealthcare, CategoryEducation,
		CategorySavingsInvestment, CategoryCharityGifts, CategorySalary,
		CategoryMiscellaneous:
		return true
	default:
		return false
	}
}

// IsValidTransactionIntent checks if the intent is one of the closed set
func IsValidTransactionIntent(intent TransactionIntent) bool {
	switch intent {
	case IntentPlanned, IntentImpulse, IntentObligation:
		return true
	default:
		return false
	}
}

// IsValidTransactionEmotion checks if the emotion is one of the closed set
func IsValidTransactionEmotion(emotion TransactionEmotion) bool {
	switch emotion {
	case EmotionJoy, EmotionSatisfaction, EmotionNeutral, EmotionAnxiety, EmotionRegret:
		return true
	default:
		return false
	}
}

// AllTransactionCategories lists every valid category, in declaration order
func AllTransactionCategories() []TransactionCategory {
	return []TransactionCategory{
		CategoryDailyExpenses, CategoryTransportation, CategoryHousing,
		CategoryEntertainment, CategoryHealthcare, CategoryEducation,
		CategorySavingsInvestment, CategoryCharityGifts, CategorySalary,
		CategoryMiscellaneous,
	}
}

// AllTransactionIntents lists every valid intent
func AllTransactionIntents() []TransactionIntent {
	return []TransactionIntent{IntentPlanned, IntentImpulse, IntentObligation}
}

// AllTransactionEmotions lists every valid emotion
func AllTransactionEmotions() []TransactionEmotion {
	return []TransactionEmotion{EmotionJoy, EmotionSatisfaction, EmotionNeutral, EmotionAnxiety, EmotionRegret}
}
