package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

type InsightWorker struct {
	insightService  InsightServiceInterface
	queueRepo       repositories.InsightQueueRepositoryInterface
	insightLogger   InsightLoggerInterface
	metrics         MetricsRecorderInterface
	circuitBreaker  CircuitBreakerInterface
	maxWorkers      int
	pollInterval    time.Duration
	workerSemaphore chan struct{}
	logger          *slog.Logger
}

func NewInsightWorker(
	insightService InsightServiceInterface,
	queueRepo repositories.InsightQueueRepositoryInterface,
	insightLogger InsightLoggerInterface,
	metrics MetricsRecorderInterface,
	circuitBreaker CircuitBreakerInterface,
	maxWorkers int,
	pollInterval time.Duration,
) InsightWorkerInterface {
	return &InsightWorker{
		insightService:  insightService,
		queueRepo:       queueRepo,
		insightLogger:   insightLogger,
		metrics:         metrics,
		circuitBreaker:  circuitBreaker,
		maxWorkers:      maxWorkers,
		pollInterval:    pollInterval,
		workerSemaphore: make(chan struct{}, maxWorkers),
		logger:          slog.Default(),
	}
}

func (w *InsightWorker) Start(ctx context.Context) {
	w.logger.Info("starting insight worker",
		slog.Int("max_workers", w.maxWorkers),
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("insight worker shutting down, waiting for jobs to complete")
			wg.Wait()
			w.logger.Info("insight worker stopped")
			return

		case <-ticker.C:
			jobs, err := w.queueRepo.FetchPending(w.maxWorkers * 2)
			if err != nil {
				w.logger.Error("failed to fetch pending jobs",
					slog.String("error", err.Error()),
				)
				continue
			}

			for _, job := range jobs {
				wg.Add(1)
				go w.processJobAsync(ctx, job, &wg)
			}
		}
	}
}

func (w *InsightWorker) processJobAsync(ctx context.Context, job *models.InsightJob, wg *sync.WaitGroup) {
	defer wg.Done()

	w.workerSemaphore <- struct{}{}
	defer func() { <-w.workerSemaphore }()

	if err := w.ProcessJob(ctx, job); err != nil {
		w.logger.Error("failed to process insight job",
			slog.String("job_id", job.ID.String()),
			slog.String("user_id", job.UserID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (w *InsightWorker) ProcessJob(ctx context.Context, job *models.InsightJob) error {
	startTime := time.Now()

	if w.circuitBreaker.IsOpen() {
		w.metrics.IncrementCounter("circuit_breaker.open", map[string]string{
			"service": "llm",
		})
		return ErrCircuitBreakerOpen
	}

	if job.RetryCount >= job.MaxRetries {
		return w.handleMaxRetriesExceeded(ctx, job)
	}

	// Malformed jobs are discarded without touching the LLM
	if reason := malformedJobReason(job); reason != "" {
		return w.dropJob(ctx, job, reason)
	}

	w.insightLogger.LogJobReceived(ctx, job.ID, job.UserID, job.JobName)

	if err := w.queueRepo.MarkProcessing(job.ID); err != nil {
		return fmt.Errorf("failed to mark job as processing: %w", err)
	}

	w.insightLogger.LogJobStarted(ctx, job.ID, job.UserID)

	period := currentPeriodLabel(time.Now())
	_, err := w.insightService.Generate(ctx, job.UserID, period)
	if err != nil {
		if IsDuplicateInsight(err) {
			// Not a downstream fault and retrying cannot succeed
			return w.failPermanently(ctx, job, err.Error())
		}

		w.circuitBreaker.RecordFailure()
		return w.handleProcessingError(ctx, job, err)
	}

	return w.completeJob(ctx, job, startTime)
}

// malformedJobReason returns a non-empty reason when the job cannot be processed
func malformedJobReason(job *models.InsightJob) string {
	if job.JobName != models.InsightJobNameGenerate {
		return fmt.Sprintf("unknown job name: %s", job.JobName)
	}
	if job.UserID == uuid.Nil {
		return "missing user ID"
	}
	return ""
}

func (w *InsightWorker) dropJob(ctx context.Context, job *models.InsightJob, reason string) error {
	w.insightLogger.LogJobDropped(ctx, job.ID, reason)

	if err := w.queueRepo.Delete(job.ID); err != nil {
		return fmt.Errorf("failed to delete malformed job: %w", err)
	}

	w.metrics.IncrementCounter("insight.job.dropped", nil)
	return nil
}

func (w *InsightWorker) completeJob(ctx context.Context, job *models.InsightJob, startTime time.Time) error {
	// Completed jobs are removed rather than retained
	if err := w.queueRepo.Delete(job.ID); err != nil {
		return fmt.Errorf("failed to remove completed job: %w", err)
	}

	w.circuitBreaker.RecordSuccess()

	duration := time.Since(startTime)
	w.metrics.RecordProcessingTime("insight.generation", duration)
	w.metrics.IncrementCounter("insight.job.completed", nil)

	w.insightLogger.LogJobCompleted(ctx, job.ID, job.UserID, duration.Milliseconds())

	return nil
}

func (w *InsightWorker) handleProcessingError(ctx context.Context, job *models.InsightJob, err error) error {
	if job.CanRetry() {
		backoffMs := job.NextBackoff().Milliseconds()

		w.insightLogger.LogRetryAttempt(ctx, job.ID, job.UserID, job.RetryCount+1, job.MaxRetries, backoffMs)

		if retryErr := w.queueRepo.IncrementRetry(job.ID); retryErr != nil {
			return fmt.Errorf("failed to increment retry: %w", retryErr)
		}

		w.metrics.IncrementCounter("insight.job.retry", nil)

		return err
	}

	return w.handleMaxRetriesExceeded(ctx, job)
}

func (w *InsightWorker) handleMaxRetriesExceeded(ctx context.Context, job *models.InsightJob) error {
	if err := w.failPermanently(ctx, job, ErrMaxRetriesExceeded.Error()); err != nil {
		return err
	}
	return ErrMaxRetriesExceeded
}

// failPermanently marks the job failed; failed jobs stay in the queue
// table for inspection.
func (w *InsightWorker) failPermanently(ctx context.Context, job *models.InsightJob, reason string) error {
	if err := w.queueRepo.MarkFailed(job.ID, reason); err != nil {
		return err
	}

	w.metrics.IncrementCounter("insight.job.failed", nil)
	w.insightLogger.LogJobFailed(ctx, job.ID, job.UserID, reason, job.RetryCount)

	return nil
}

// currentPeriodLabel returns the label of the month containing the given
// time, in UTC. Generation with no explicit period always reads the
// current month.
func currentPeriodLabel(now time.Time) string {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
