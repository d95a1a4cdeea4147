package services

import (
	"context"
	"time"

	"finsight/internal/dto"
	"finsight/internal/llm"
	"finsight/internal/models"

	"github.com/google/uuid"
)

// AnalyticsServiceInterface defines the contract for analytics operations.
// All results are served cache-aside: computed on miss, byte-identical on hit.
type AnalyticsServiceInterface interface {
	GetNetBalance(ctx context.Context, userID uuid.UUID, period string) (*dto.NetBalanceResponse, error)
	GetSpendingBreakdown(ctx context.Context, userID uuid.UUID, period string) (*dto.BreakdownResponse, error)
	GetIntentBreakdown(ctx context.Context, userID uuid.UUID, period string) (*dto.BreakdownResponse, error)
	GetEmotionBreakdown(ctx context.Context, userID uuid.UUID, period string) (*dto.BreakdownResponse, error)
	GetSavingsRate(ctx context.Context, userID uuid.UUID, period string) (*dto.SavingsRateResponse, error)
	GetTopTransactions(ctx context.Context, userID uuid.UUID, period string, take int) (*dto.TopTransactionsResponse, error)
	GetSummary(ctx context.Context, userID uuid.UUID, period string) (*dto.AnalyticsSummaryResponse, error)
	// InvalidatePeriod drops the period-scoped metric entries for a user
	InvalidatePeriod(ctx context.Context, userID uuid.UUID, period string)
	// InvalidateUser is intentionally a no-op; entries expire via TTL
	InvalidateUser(ctx context.Context, userID uuid.UUID)
}

// InsightServiceInterface defines the contract for insight operations
type InsightServiceInterface interface {
	// Generate builds the prompt from the user's period data, calls the
	// LLM and persists the result.
	Generate(ctx context.Context, userID uuid.UUID, period string) (*models.Insight, error)
	// EnqueueEligibleUsers enqueues a generation job for every user with
	// enough expense activity in the period, returning how many.
	EnqueueEligibleUsers(ctx context.Context, period string) (int, error)
	FindAll(ctx context.Context, userID uuid.UUID, page, take int) (*dto.InsightListResponse, error)
	FindOne(ctx context.Context, userID, insightID uuid.UUID) (*dto.InsightResponse, error)
	FindByPeriod(ctx context.Context, userID uuid.UUID, period string) (*dto.InsightResponse, error)
	GetQueueMetrics() (*dto.QueueMetrics, error)
}

// InsightWorkerInterface defines the contract for the queue consumer
type InsightWorkerInterface interface {
	Start(ctx context.Context)
	ProcessJob(ctx context.Context, job *models.InsightJob) error
}

// SchedulerInterface defines the contract for the monthly generation trigger
type SchedulerInterface interface {
	Start(ctx context.Context)
}

// LLMClientInterface abstracts the text generation provider
type LLMClientInterface interface {
	Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error)
}

// CacheStoreInterface abstracts the analytics cache store
type CacheStoreInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type InsightLoggerInterface interface {
	LogJobReceived(ctx context.Context, jobID, userID uuid.UUID, jobName string)
	LogJobStarted(ctx context.Context, jobID, userID uuid.UUID)
	LogJobCompleted(ctx context.Context, jobID, userID uuid.UUID, durationMs int64)
	LogJobFailed(ctx context.Context, jobID, userID uuid.UUID, errorMsg string, retryCount int)
	LogJobDropped(ctx context.Context, jobID uuid.UUID, reason string)
	LogRetryAttempt(ctx context.Context, jobID, userID uuid.UUID, retryCount, maxRetries int, backoffMs int64)
	LogInsightPersisted(ctx context.Context, insightID, userID uuid.UUID, period string)
	LogGenerationSoftError(ctx context.Context, userID uuid.UUID, period string, errorMsg string)
	LogEligibleUsersFound(ctx context.Context, period string, count int)
	LogCacheInvalidation(ctx context.Context, userID uuid.UUID, period string, keysDropped int)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// TransactionGeneratorInterface generates realistic transaction data for dev seeding
type TransactionGeneratorInterface interface {
	GenerateMonthlyTransactions(userID uuid.UUID, period models.Period, count int) []models.Transaction
	GenerateTransaction(userID uuid.UUID, period models.Period) models.Transaction
}
