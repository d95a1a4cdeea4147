package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type InsightLogger struct {
	logger *slog.Logger
}

func NewInsightLogger(logger *slog.Logger) InsightLoggerInterface {
	return &InsightLogger{
		logger: logger,
	}
}

func (il *InsightLogger) LogJobReceived(ctx context.Context, jobID, userID uuid.UUID, jobName string) {
	il.logger.InfoContext(ctx, "insight job received",
		slog.String("event_type", "insight_job_received"),
		slog.String("job_id", jobID.String()),
		slog.String("user_id", userID.String()),
		slog.String("job_name", jobName),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *InsightLogger) LogJobStarted(ctx context.Context, jobID, userID uuid.UUID) {
	il.logger.InfoContext(ctx, "insight job started",
		slog.String("event_type", "insight_job_started"),
		slog.String("job_id", jobID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *InsightLogger) LogJobCompleted(ctx context.Context, jobID, userID uuid.UUID, durationMs int64) {
	il.logger.InfoContext(ctx, "insight job completed",
		slog.String("event_type", "insight_job_completed"),
		slog.String("job_id", jobID.String()),
		slog.String("user_id", userID.String()),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *InsightLogger) LogJobFailed(ctx context.Context, jobID, userID uuid.UUID, errorMsg string, retryCount int) {
	il.logger.WarnContext(ctx, "insight job failed",
		slog.String("event_type", "insight_job_failed"),
		slog.String("job_id", jobID.String()),
		slog.String("user_id", userID.String()),
		slog.String("error", errorMsg),
		slog.Int("retry_count", retryCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

// LogJobDropped records a malformed job being discarded without processing
func (il *InsightLogger) LogJobDropped(ctx context.Context, jobID uuid.UUID, reason string) {
	il.logger.WarnContext(ctx, "insight job dropped",
		slog.String("event_type", "insight_job_dropped"),
		slog.String("job_id", jobID.String()),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *InsightLogger) LogRetryAttempt(ctx context.Context, jobID, userID uuid.UUID, retryCount, maxRetries int, backoffMs int64) {
	il.logger.InfoContext(ctx, "retry attempt",
		slog.String("event_type", "retry_attempt"),
		slog.String("job_id", jobID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("retry_count", retryCount),
		slog.Int("max_retries", maxRetries),
		slog.Int64("backoff_ms", backoffMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *InsightLogger) LogInsightPersisted(ctx context.Context, insightID, userID uuid.UUID, period string) {
	il.logger.InfoContext(ctx, "insight persisted",
		slog.String("event_type", "insight_persisted"),
		slog.String("insight_id", insightID.String()),
		slog.String("user_id", userID.String()),
		slog.String("period", period),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

// LogGenerationSoftError records an API-level generation error that did not
// stop persistence of the (possibly partial) output.
func (il *InsightLogger) LogGenerationSoftError(ctx context.Context, userID uuid.UUID, period string, errorMsg string) {
	il.logger.ErrorContext(ctx, "insight generation soft error",
		slog.String("event_type", "insight_generation_soft_error"),
		slog.String("user_id", userID.String()),
		slog.String("period", period),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *InsightLogger) LogEligibleUsersFound(ctx context.Context, period string, count int) {
	il.logger.InfoContext(ctx, "eligible users found",
		slog.String("event_type", "eligible_users_found"),
		slog.String("period", period),
		slog.Int("count", count),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *InsightLogger) LogCacheInvalidation(ctx context.Context, userID uuid.UUID, period string, keysDropped int) {
	il.logger.InfoContext(ctx, "analytics cache invalidated",
		slog.String("event_type", "analytics_cache_invalidated"),
		slog.String("user_id", userID.String()),
		slog.String("period", period),
		slog.Int("keys_dropped", keysDropped),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *InsightLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	il.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
