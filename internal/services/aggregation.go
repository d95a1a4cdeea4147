package services

import (
	"math"

	"finsight/internal/dto"
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// sumIncomeAndExpense totals a period's transactions by type in both
// currencies. USD totals are rounded to two decimal places.
func sumIncomeAndExpense(transactions []models.Transaction) (income, expense dto.AmountPair) {
	incomeUSD := decimal.Zero
	expenseUSD := decimal.Zero

	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			income.Local += tx.AmountLocal
			incomeUSD = incomeUSD.Add(tx.AmountUSD)
		case models.TransactionTypeExpense:
			expense.Local += tx.AmountLocal
			expenseUSD = expenseUSD.Add(tx.AmountUSD)
		}
	}

	income.USD = incomeUSD.Round(2)
	expense.USD = expenseUSD.Round(2)
	return income, expense
}

// computeNetBalance derives the net balance summary for a period
func computeNetBalance(period string, transactions []models.Transaction) *dto.NetBalanceResponse {
	income, expense := sumIncomeAndExpense(transactions)

	return &dto.NetBalanceResponse{
		Period:       period,
		TotalIncome:  income,
		TotalExpense: expense,
		NetBalance: dto.AmountPair{
			Local: income.Local - expense.Local,
			USD:   income.USD.Sub(expense.USD).Round(2),
		},
	}
}

// buildBreakdown groups a period's expense transactions by the given
// dimension. Items appear in first-occurrence order, and each percentage
// is the item's share of the local-currency expense total. Income
// transactions never contribute to a breakdown.
func buildBreakdown(period string, transactions []models.Transaction, keyFn func(models.Transaction) string) *dto.BreakdownResponse {
	totals := make(map[string]*dto.BreakdownItem)
	var order []string

	grandTotalLocal := int64(0)
	grandTotalUSD := decimal.Zero

	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}

		key := keyFn(tx)
		item, ok := totals[key]
		if !ok {
			item = &dto.BreakdownItem{Key: key, TotalUSD: decimal.Zero}
			totals[key] = item
			order = append(order, key)
		}

		item.TotalLocal += tx.AmountLocal
		item.TotalUSD = item.TotalUSD.Add(tx.AmountUSD)
		grandTotalLocal += tx.AmountLocal
		grandTotalUSD = grandTotalUSD.Add(tx.AmountUSD)
	}

	items := make([]dto.BreakdownItem, 0, len(order))
	for _, key := range order {
		item := totals[key]
		item.TotalUSD = item.TotalUSD.Round(2)
		if grandTotalLocal > 0 {
			// Percentages stay unrounded so the items always sum to 100
			item.Percentage = float64(item.TotalLocal) / float64(grandTotalLocal) * 100
		}
		items = append(items, *item)
	}

	return &dto.BreakdownResponse{
		Period:          period,
		Items:           items,
		GrandTotalLocal: grandTotalLocal,
		GrandTotalUSD:   grandTotalUSD.Round(2),
	}
}

// savingsRatePercent computes the share of local-currency income kept
// after expenses, rounded to two decimal places. Zero when there is no
// income, so a month of pure spending never yields a negative-infinity
// style artifact.
func savingsRatePercent(incomeLocal, expenseLocal int64) float64 {
	if incomeLocal <= 0 {
		return 0
	}
	return roundPercent(float64(incomeLocal-expenseLocal) / float64(incomeLocal) * 100)
}

func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}
