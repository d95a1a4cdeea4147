package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"finsight/internal/config"
	"finsight/internal/dto"
	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/google/uuid"
)

const (
	metricNetBalance        = "netBalance"
	metricSpendingBreakdown = "spendingBreakdown"
	metricIntentBreakdown   = "intentBreakdown"
	metricEmotionBreakdown  = "emotionBreakdown"
	metricSavingsRate       = "savingsRate"
	metricTopTransactions   = "topTransactions"

	// DefaultTopTransactionsLimit is the take used when the caller does
	// not specify one.
	DefaultTopTransactionsLimit = 5
)

// periodScopedMetrics are the keys dropped by InvalidatePeriod. The
// topTransactions entries are take-parameterized and rely on TTL expiry.
var periodScopedMetrics = []string{
	metricNetBalance,
	metricSpendingBreakdown,
	metricIntentBreakdown,
	metricEmotionBreakdown,
	metricSavingsRate,
}

type analyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	cache           CacheStoreInterface
	cacheConfig     config.CacheConfig
	metrics         MetricsRecorderInterface
	logger          InsightLoggerInterface
}

// NewAnalyticsService creates a new analytics service. Every metric is
// served cache-aside: identical requests within the TTL return the same
// serialized result without touching the database.
func NewAnalyticsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	cache CacheStoreInterface,
	cacheConfig config.CacheConfig,
	metrics MetricsRecorderInterface,
	logger InsightLoggerInterface,
) AnalyticsServiceInterface {
	return &analyticsService{
		transactionRepo: transactionRepo,
		cache:           cache,
		cacheConfig:     cacheConfig,
		metrics:         metrics,
		logger:          logger,
	}
}

// cacheKey builds the cache key for a metric. Parameterized metrics
// append their params so different arguments never collide.
func (s *analyticsService) cacheKey(metric string, userID uuid.UUID, period string, params string) string {
	key := fmt.Sprintf("%s%s:%s:%s", s.cacheConfig.KeyPrefix, metric, userID, period)
	if params != "" {
		key += ":" + params
	}
	return key
}

func (s *analyticsService) ttlFor(metric string) time.Duration {
	switch metric {
	case metricNetBalance:
		return s.cacheConfig.NetBalanceTTL
	case metricSpendingBreakdown, metricIntentBreakdown, metricEmotionBreakdown:
		return s.cacheConfig.BreakdownTTL
	case metricSavingsRate:
		return s.cacheConfig.SavingsRateTTL
	case metricTopTransactions:
		return s.cacheConfig.TopTransactionsTTL
	default:
		return s.cacheConfig.DefaultTTL
	}
}

// getOrCompute serves a metric cache-aside: a hit deserializes the stored
// bytes, a miss computes, stores, and returns the fresh value.
func getOrCompute[T any](s *analyticsService, metric, key string, compute func() (*T, error)) (*T, error) {
	if data, ok := s.cache.Get(key); ok {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			s.metrics.IncrementCounter("analytics.cache.hit", map[string]string{"metric": metric})
			return &cached, nil
		}
		// Unreadable entry; drop it and recompute
		s.cache.Delete(key)
	}

	s.metrics.IncrementCounter("analytics.cache.miss", map[string]string{"metric": metric})

	started := time.Now()
	result, err := compute()
	if err != nil {
		return nil, err
	}
	s.metrics.RecordProcessingTime("analytics.computation", time.Since(started))

	if data, err := json.Marshal(result); err == nil {
		s.cache.Set(key, data, s.ttlFor(metric))
	}

	return result, nil
}

func (s *analyticsService) GetNetBalance(ctx context.Context, userID uuid.UUID, period string) (*dto.NetBalanceResponse, error) {
	p := models.ResolvePeriod(period)
	key := s.cacheKey(metricNetBalance, userID, p.Label, "")

	return getOrCompute(s, metricNetBalance, key, func() (*dto.NetBalanceResponse, error) {
		transactions, err := s.transactionRepo.FindByPeriod(userID, p.Start, p.End, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to compute net balance: %w", err)
		}
		return computeNetBalance(p.Label, transactions), nil
	})
}

func (s *analyticsService) GetSpendingBreakdown(ctx context.Context, userID uuid.UUID, period string) (*dto.BreakdownResponse, error) {
	return s.getBreakdown(userID, period, metricSpendingBreakdown, func(tx models.Transaction) string {
		return string(tx.Category)
	})
}

func (s *analyticsService) GetIntentBreakdown(ctx context.Context, userID uuid.UUID, period string) (*dto.BreakdownResponse, error) {
	return s.getBreakdown(userID, period, metricIntentBreakdown, func(tx models.Transaction) string {
		return string(tx.Intent)
	})
}

func (s *analyticsService) GetEmotionBreakdown(ctx context.Context, userID uuid.UUID, period string) (*dto.BreakdownResponse, error) {
	return s.getBreakdown(userID, period, metricEmotionBreakdown, func(tx models.Transaction) string {
		return string(tx.Emotion)
	})
}

func (s *analyticsService) getBreakdown(userID uuid.UUID, period, metric string, keyFn func(models.Transaction) string) (*dto.BreakdownResponse, error) {
	p := models.ResolvePeriod(period)
	key := s.cacheKey(metric, userID, p.Label, "")

	return getOrCompute(s, metric, key, func() (*dto.BreakdownResponse, error) {
		expenseType := models.TransactionTypeExpense
		transactions, err := s.transactionRepo.FindByPeriod(userID, p.Start, p.End, &expenseType)
		if err != nil {
			return nil, fmt.Errorf("failed to compute %s: %w", metric, err)
		}
		return buildBreakdown(p.Label, transactions, keyFn), nil
	})
}

// GetSavingsRate derives from the net balance, which is itself cached, and
// caches the derived result under its own key.
func (s *analyticsService) GetSavingsRate(ctx context.Context, userID uuid.UUID, period string) (*dto.SavingsRateResponse, error) {
	p := models.ResolvePeriod(period)
	key := s.cacheKey(metricSavingsRate, userID, p.Label, "")

	return getOrCompute(s, metricSavingsRate, key, func() (*dto.SavingsRateResponse, error) {
		balance, err := s.GetNetBalance(ctx, userID, p.Label)
		if err != nil {
			return nil, err
		}

		return &dto.SavingsRateResponse{
			Period:             p.Label,
			SavingsRatePercent: savingsRatePercent(balance.TotalIncome.Local, balance.TotalExpense.Local),
			TotalIncome:        balance.TotalIncome,
			TotalExpense:       balance.TotalExpense,
			SavingsAmount:      balance.NetBalance,
		}, nil
	})
}

func (s *analyticsService) GetTopTransactions(ctx context.Context, userID uuid.UUID, period string, take int) (*dto.TopTransactionsResponse, error) {
	if take <= 0 {
		take = DefaultTopTransactionsLimit
	}

	p := models.ResolvePeriod(period)
	key := s.cacheKey(metricTopTransactions, userID, p.Label, fmt.Sprintf("take=%d", take))

	return getOrCompute(s, metricTopTransactions, key, func() (*dto.TopTransactionsResponse, error) {
		transactions, err := s.transactionRepo.FindTopByAmount(userID, p.Start, p.End, take)
		if err != nil {
			return nil, fmt.Errorf("failed to compute top transactions: %w", err)
		}

		items := make([]dto.TopTransactionItem, 0, len(transactions))
		for _, tx := range transactions {
			items = append(items, dto.TopTransactionItem{
				Category:    string(tx.Category),
				Intent:      string(tx.Intent),
				Emotion:     string(tx.Emotion),
				Type:        string(tx.Type),
				AmountLocal: tx.AmountLocal,
				AmountUSD:   tx.AmountUSD,
				Note:        tx.Note,
				OccurredAt:  tx.OccurredAt,
			})
		}

		return &dto.TopTransactionsResponse{
			Period:       p.Label,
			Transactions: items,
		}, nil
	})
}

func (s *analyticsService) GetSummary(ctx context.Context, userID uuid.UUID, period string) (*dto.AnalyticsSummaryResponse, error) {
	p := models.ResolvePeriod(period)

	netBalance, err := s.GetNetBalance(ctx, userID, p.Label)
	if err != nil {
		return nil, err
	}

	spending, err := s.GetSpendingBreakdown(ctx, userID, p.Label)
	if err != nil {
		return nil, err
	}

	intent, err := s.GetIntentBreakdown(ctx, userID, p.Label)
	if err != nil {
		return nil, err
	}

	emotion, err := s.GetEmotionBreakdown(ctx, userID, p.Label)
	if err != nil {
		return nil, err
	}

	savingsRate, err := s.GetSavingsRate(ctx, userID, p.Label)
	if err != nil {
		return nil, err
	}

	top, err := s.GetTopTransactions(ctx, userID, p.Label, DefaultTopTransactionsLimit)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsSummaryResponse{
		Period:            p.Label,
		NetBalance:        netBalance,
		SpendingBreakdown: spending,
		IntentBreakdown:   intent,
		EmotionBreakdown:  emotion,
		SavingsRate:       savingsRate,
		TopTransactions:   top,
	}, nil
}

// InvalidatePeriod drops the period-scoped metric entries for a user so
// the next read recomputes from current data.
func (s *analyticsService) InvalidatePeriod(ctx context.Context, userID uuid.UUID, period string) {
	p := models.ResolvePeriod(period)

	for _, metric := range periodScopedMetrics {
		s.cache.Delete(s.cacheKey(metric, userID, p.Label, ""))
		s.metrics.IncrementCounter("analytics.cache.invalidated", map[string]string{"metric": metric})
	}

	s.logger.LogCacheInvalidation(ctx, userID, p.Label, len(periodScopedMetrics))
}

// InvalidateUser is deliberately a no-op. Per-user entries are period and
// parameter scoped, so a full sweep would need key enumeration; short TTLs
// bound staleness instead.
func (s *analyticsService) InvalidateUser(ctx context.Context, userID uuid.UUID) {
	s.logger.LogCacheInvalidation(ctx, userID, "", 0)
}
