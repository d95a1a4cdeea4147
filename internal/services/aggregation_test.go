package services

import (
	"testing"
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AggregationTestSuite struct {
	suite.Suite
	userID uuid.UUID
}

func TestAggregationSuite(t *testing.T) {
	suite.Run(t, new(AggregationTestSuite))
}

func (s *AggregationTestSuite) SetupTest() {
	s.userID = uuid.New()
}

func (s *AggregationTestSuite) transaction(txType models.TransactionType, category models.TransactionCategory, amountLocal int64, amountUSD int64) models.Transaction {
	return models.Transaction{
		UserID:      s.userID,
		Type:        txType,
		AmountLocal: amountLocal,
		AmountUSD:   decimal.NewFromInt(amountUSD),
		Category:    category,
		Intent:      models.IntentPlanned,
		Emotion:     models.EmotionNeutral,
		OccurredAt:  time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (s *AggregationTestSuite) TestComputeNetBalance_MixedTransactions_BothCurrencies() {
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeIncome, models.CategorySalary, 10_000_000, 250),
		s.transaction(models.TransactionTypeExpense, models.CategoryDailyExpenses, 4_000_000, 100),
	}

	balance := computeNetBalance("2025-07", transactions)

	s.Equal("2025-07", balance.Period)
	s.Equal(int64(10_000_000), balance.TotalIncome.Local)
	s.Equal(int64(4_000_000), balance.TotalExpense.Local)
	s.Equal(int64(6_000_000), balance.NetBalance.Local)
	s.True(balance.TotalIncome.USD.Equal(decimal.NewFromInt(250)))
	s.True(balance.TotalExpense.USD.Equal(decimal.NewFromInt(100)))
	s.True(balance.NetBalance.USD.Equal(decimal.NewFromInt(150)))
}

func (s *AggregationTestSuite) TestComputeNetBalance_NoTransactions_AllZero() {
	balance := computeNetBalance("2025-07", nil)

	s.Equal(int64(0), balance.TotalIncome.Local)
	s.Equal(int64(0), balance.TotalExpense.Local)
	s.Equal(int64(0), balance.NetBalance.Local)
	s.True(balance.NetBalance.USD.IsZero())
}

func (s *AggregationTestSuite) TestComputeNetBalance_ExpensesOnly_NegativeNet() {
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, models.CategoryHousing, 3_000_000, 75),
	}

	balance := computeNetBalance("2025-07", transactions)

	s.Equal(int64(-3_000_000), balance.NetBalance.Local)
	s.True(balance.NetBalance.USD.Equal(decimal.NewFromInt(-75)))
}

func (s *AggregationTestSuite) TestBuildBreakdown_IncomeNeverContributes() {
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeIncome, models.CategorySalary, 10_000_000, 250),
		s.transaction(models.TransactionTypeExpense, models.CategoryDailyExpenses, 4_000_000, 100),
	}

	breakdown := buildBreakdown("2025-07", transactions, func(tx models.Transaction) string {
		return string(tx.Category)
	})

	s.Len(breakdown.Items, 1)
	s.Equal(string(models.CategoryDailyExpenses), breakdown.Items[0].Key)
	s.Equal(float64(100), breakdown.Items[0].Percentage)
	s.Equal(int64(4_000_000), breakdown.GrandTotalLocal)
}

func (s *AggregationTestSuite) TestBuildBreakdown_PercentagesFromLocalAmounts() {
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, models.CategoryDailyExpenses, 3_000_000, 75),
		s.transaction(models.TransactionTypeExpense, models.CategoryHousing, 1_000_000, 25),
	}

	breakdown := buildBreakdown("2025-07", transactions, func(tx models.Transaction) string {
		return string(tx.Category)
	})

	s.Len(breakdown.Items, 2)
	s.Equal(float64(75), breakdown.Items[0].Percentage)
	s.Equal(float64(25), breakdown.Items[1].Percentage)
}

func (s *AggregationTestSuite) TestBuildBreakdown_RepeatedKeysAccumulate() {
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, models.CategoryDailyExpenses, 1_000_000, 25),
		s.transaction(models.TransactionTypeExpense, models.CategoryHousing, 2_000_000, 50),
		s.transaction(models.TransactionTypeExpense, models.CategoryDailyExpenses, 1_000_000, 25),
	}

	breakdown := buildBreakdown("2025-07", transactions, func(tx models.Transaction) string {
		return string(tx.Category)
	})

	// Items keep first-occurrence order
	s.Len(breakdown.Items, 2)
	s.Equal(string(models.CategoryDailyExpenses), breakdown.Items[0].Key)
	s.Equal(int64(2_000_000), breakdown.Items[0].TotalLocal)
	s.Equal(string(models.CategoryHousing), breakdown.Items[1].Key)
	s.Equal(int64(4_000_000), breakdown.GrandTotalLocal)
}

func (s *AggregationTestSuite) TestBuildBreakdown_NoExpenses_EmptyItemsZeroTotals() {
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeIncome, models.CategorySalary, 10_000_000, 250),
	}

	breakdown := buildBreakdown("2025-07", transactions, func(tx models.Transaction) string {
		return string(tx.Category)
	})

	s.Empty(breakdown.Items)
	s.Equal(int64(0), breakdown.GrandTotalLocal)
	s.True(breakdown.GrandTotalUSD.IsZero())
}

func (s *AggregationTestSuite) TestBuildBreakdown_UnevenSplit_PercentagesSumToHundred() {
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, models.CategoryDailyExpenses, 1, 1),
		s.transaction(models.TransactionTypeExpense, models.CategoryHousing, 1, 1),
		s.transaction(models.TransactionTypeExpense, models.CategoryEducation, 1, 1),
	}

	breakdown := buildBreakdown("2025-07", transactions, func(tx models.Transaction) string {
		return string(tx.Category)
	})

	sum := float64(0)
	for _, item := range breakdown.Items {
		s.InDelta(100.0/3.0, item.Percentage, 1e-9)
		sum += item.Percentage
	}
	s.InDelta(100, sum, 1e-6)
}

func (s *AggregationTestSuite) TestSavingsRatePercent_TypicalMonth() {
	s.Equal(float64(60), savingsRatePercent(10_000_000, 4_000_000))
}

func (s *AggregationTestSuite) TestSavingsRatePercent_NoIncome_Zero() {
	s.Equal(float64(0), savingsRatePercent(0, 4_000_000))
}

func (s *AggregationTestSuite) TestSavingsRatePercent_OverspentMonth_Negative() {
	s.Equal(float64(-50), savingsRatePercent(2_000_000, 3_000_000))
}

func (s *AggregationTestSuite) TestSavingsRatePercent_RoundedToTwoPlaces() {
	s.Equal(33.33, savingsRatePercent(3, 2))
}
