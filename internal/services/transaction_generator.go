package services

import (
	"math/rand"
	"time"

	"finsight/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// localPerUSD approximates the local-currency exchange rate used when
// seeding development data.
const localPerUSD = 25000

type transactionGenerator struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewTransactionGenerator creates a generator of realistic transaction
// data for development seeding.
func NewTransactionGenerator() TransactionGeneratorInterface {
	seed := time.Now().UnixNano()
	return &transactionGenerator{
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(uint64(seed)),
	}
}

// expenseCategories excludes SALARY, which only appears on income
var expenseCategories = []models.TransactionCategory{
	models.CategoryDailyExpenses,
	models.CategoryTransportation,
	models.CategoryHousing,
	models.CategoryEntertainment,
	models.CategoryHealthcare,
	models.CategoryEducation,
	models.CategorySavingsInvestment,
	models.CategoryCharityGifts,
	models.CategoryMiscellaneous,
}

// categoryAmountRanges holds plausible local-currency expense ranges per category
var categoryAmountRanges = map[models.TransactionCategory][2]int64{
	models.CategoryDailyExpenses:     {30_000, 500_000},
	models.CategoryTransportation:    {15_000, 300_000},
	models.CategoryHousing:           {2_000_000, 8_000_000},
	models.CategoryEntertainment:     {50_000, 1_000_000},
	models.CategoryHealthcare:        {100_000, 2_000_000},
	models.CategoryEducation:         {200_000, 3_000_000},
	models.CategorySavingsInvestment: {500_000, 5_000_000},
	models.CategoryCharityGifts:      {50_000, 500_000},
	models.CategoryMiscellaneous:     {20_000, 400_000},
}

// GenerateMonthlyTransactions generates count transactions inside the
// period, with roughly one income transaction per five expenses.
func (g *transactionGenerator) GenerateMonthlyTransactions(userID uuid.UUID, period models.Period, count int) []models.Transaction {
	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, g.GenerateTransaction(userID, period))
	}
	return transactions
}

// GenerateTransaction generates a single transaction inside the period
func (g *transactionGenerator) GenerateTransaction(userID uuid.UUID, period models.Period) models.Transaction {
	if g.rng.Intn(6) == 0 {
		return g.generateIncome(userID, period)
	}
	return g.generateExpense(userID, period)
}

func (g *transactionGenerator) generateIncome(userID uuid.UUID, period models.Period) models.Transaction {
	amountLocal := g.amountBetween(8_000_000, 40_000_000)

	return models.Transaction{
		UserID:      userID,
		Type:        models.TransactionTypeIncome,
		AmountLocal: amountLocal,
		AmountUSD:   toUSD(amountLocal),
		Category:    models.CategorySalary,
		Intent:      models.IntentPlanned,
		Emotion:     models.EmotionSatisfaction,
		Note:        g.faker.JobTitle() + " salary",
		OccurredAt:  g.timestampWithin(period),
	}
}

func (g *transactionGenerator) generateExpense(userID uuid.UUID, period models.Period) models.Transaction {
	category := expenseCategories[g.rng.Intn(len(expenseCategories))]
	bounds := categoryAmountRanges[category]
	amountLocal := g.amountBetween(bounds[0], bounds[1])

	intents := models.AllTransactionIntents()
	emotions := models.AllTransactionEmotions()

	return models.Transaction{
		UserID:      userID,
		Type:        models.TransactionTypeExpense,
		AmountLocal: amountLocal,
		AmountUSD:   toUSD(amountLocal),
		Category:    category,
		Intent:      intents[g.rng.Intn(len(intents))],
		Emotion:     emotions[g.rng.Intn(len(emotions))],
		Note:        g.faker.ProductName(),
		OccurredAt:  g.timestampWithin(period),
	}
}

func (g *transactionGenerator) amountBetween(min, max int64) int64 {
	return min + g.rng.Int63n(max-min+1)
}

func (g *transactionGenerator) timestampWithin(period models.Period) time.Time {
	span := period.End.Sub(period.Start)
	return period.Start.Add(time.Duration(g.rng.Int63n(int64(span))))
}

func toUSD(amountLocal int64) decimal.Decimal {
	return decimal.NewFromInt(amountLocal).Div(decimal.NewFromInt(localPerUSD)).Round(2)
}
