package services

import (
	"context"
	"log/slog"
	"time"
)

// monthlyScheduler triggers insight fan-out at midnight UTC on the first
// of every month, covering the month that just ended.
type monthlyScheduler struct {
	insightService InsightServiceInterface
	logger         *slog.Logger
}

func NewMonthlyScheduler(insightService InsightServiceInterface) SchedulerInterface {
	return &monthlyScheduler{
		insightService: insightService,
		logger:         slog.Default(),
	}
}

func (s *monthlyScheduler) Start(ctx context.Context) {
	s.logger.Info("starting monthly insight scheduler")

	for {
		next := nextMonthlyRun(time.Now())
		timer := time.NewTimer(time.Until(next))

		s.logger.Info("next insight generation run scheduled",
			slog.Time("run_at", next),
		)

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("monthly scheduler stopped")
			return

		case <-timer.C:
			period := currentPeriodLabel(time.Now())
			enqueued, err := s.insightService.EnqueueEligibleUsers(ctx, period)
			if err != nil {
				s.logger.Error("failed to enqueue eligible users",
					slog.String("period", period),
					slog.String("error", err.Error()),
				)
				continue
			}

			s.logger.Info("insight generation jobs enqueued",
				slog.String("period", period),
				slog.Int("enqueued", enqueued),
			)
		}
	}
}

// nextMonthlyRun returns midnight UTC on the first of the month after now
func nextMonthlyRun(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}
