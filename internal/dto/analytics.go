package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmountPair carries an amount in the user's local currency alongside
// its USD conversion rounded to two decimal places.
type AmountPair struct {
	Local int64           `json:"local"`
	USD   decimal.Decimal `json:"usd"`
}

// NetBalanceResponse is the income/expense/net summary for a period
type NetBalanceResponse struct {
	Period       string     `json:"period"`
	TotalIncome  AmountPair `json:"totalIncome"`
	TotalExpense AmountPair `json:"totalExpense"`
	NetBalance   AmountPair `json:"netBalance"`
}

// BreakdownItem is one dimension value with its expense totals.
// Percentage is the item's share of the period's local expense total.
type BreakdownItem struct {
	Key        string          `json:"key"`
	TotalLocal int64           `json:"totalLocal"`
	TotalUSD   decimal.Decimal `json:"totalUsd"`
	Percentage float64         `json:"percentage"`
}

// BreakdownResponse groups a period's expenses along a single dimension
type BreakdownResponse struct {
	Period          string          `json:"period"`
	Items           []BreakdownItem `json:"items"`
	GrandTotalLocal int64           `json:"grandTotalLocal"`
	GrandTotalUSD   decimal.Decimal `json:"grandTotalUsd"`
}

// SavingsRateResponse reports what share of income was kept in a period
type SavingsRateResponse struct {
	Period             string     `json:"period"`
	SavingsRatePercent float64    `json:"savingsRatePercent"`
	TotalIncome        AmountPair `json:"totalIncome"`
	TotalExpense       AmountPair `json:"totalExpense"`
	SavingsAmount      AmountPair `json:"savingsAmount"`
}

// TopTransactionItem is one of the largest transactions in a period
type TopTransactionItem struct {
	Category    string          `json:"category"`
	Intent      string          `json:"intent"`
	Emotion     string          `json:"emotion"`
	Type        string          `json:"type"`
	AmountLocal int64           `json:"amountLocal"`
	AmountUSD   decimal.Decimal `json:"amountUsd"`
	Note        string          `json:"note,omitempty"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

// TopTransactionsResponse lists the period's largest transactions by local amount
type TopTransactionsResponse struct {
	Period       string               `json:"period"`
	Transactions []TopTransactionItem `json:"transactions"`
}

// AnalyticsSummaryResponse aggregates every analytics metric for one period
type AnalyticsSummaryResponse struct {
	Period            string                   `json:"period"`
	NetBalance        *NetBalanceResponse      `json:"netBalance"`
	SpendingBreakdown *BreakdownResponse       `json:"spendingBreakdown"`
	IntentBreakdown   *BreakdownResponse       `json:"intentBreakdown"`
	EmotionBreakdown  *BreakdownResponse       `json:"emotionBreakdown"`
	SavingsRate       *SavingsRateResponse     `json:"savingsRate"`
	TopTransactions   *TopTransactionsResponse `json:"topTransactions"`
}
