package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"finsight/internal/config"
	"finsight/internal/dto"
	"finsight/internal/llm"
	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultInsightPage = 1
	DefaultInsightTake = 3
)

// promptTransaction is the transaction shape serialized into the LLM prompt
type promptTransaction struct {
	Category    string    `json:"category"`
	AmountLocal int64     `json:"amountLocal"`
	AmountUSD   string    `json:"amountUsd"`
	Intent      string    `json:"intent"`
	Emotion     string    `json:"emotion"`
	Note        string    `json:"note,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type insightService struct {
	insightRepo     repositories.InsightRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	queueRepo       repositories.InsightQueueRepositoryInterface
	analytics       AnalyticsServiceInterface
	llmClient       LLMClientInterface
	llmConfig       config.LLMConfig
	insightsConfig  config.InsightsConfig
	metrics         MetricsRecorderInterface
	logger          InsightLoggerInterface
}

// NewInsightService creates a new insight service
func NewInsightService(
	insightRepo repositories.InsightRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	queueRepo repositories.InsightQueueRepositoryInterface,
	analytics AnalyticsServiceInterface,
	llmClient LLMClientInterface,
	llmConfig config.LLMConfig,
	insightsConfig config.InsightsConfig,
	metrics MetricsRecorderInterface,
	logger InsightLoggerInterface,
) InsightServiceInterface {
	return &insightService{
		insightRepo:     insightRepo,
		transactionRepo: transactionRepo,
		queueRepo:       queueRepo,
		analytics:       analytics,
		llmClient:       llmClient,
		llmConfig:       llmConfig,
		insightsConfig:  insightsConfig,
		metrics:         metrics,
		logger:          logger,
	}
}

// Generate builds the prompt from the user's period data, calls the LLM
// and persists the resulting insight. An API-level generation error is
// soft: it is logged but whatever output came back is still persisted.
// The (user_id, period) unique index rejects duplicates.
func (s *insightService) Generate(ctx context.Context, userID uuid.UUID, period string) (*models.Insight, error) {
	p := models.ResolvePeriod(period)

	topExpenses, err := s.transactionRepo.FindTopExpenses(userID, p.Start, p.End, s.insightsConfig.TopTransactionsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top expenses: %w", err)
	}

	balance, err := s.analytics.GetNetBalance(ctx, userID, p.Label)
	if err != nil {
		return nil, fmt.Errorf("failed to load net balance: %w", err)
	}

	input, err := buildInsightInput(p.Label, balance, topExpenses)
	if err != nil {
		return nil, err
	}

	resp, err := s.llmClient.Generate(ctx, llm.GenerateRequest{
		Model:        s.llmConfig.Model,
		Instructions: s.llmConfig.Instructions,
		Input:        input,
	})
	if err != nil {
		s.metrics.IncrementCounter("llm.call", map[string]string{"status": "error"})
		return nil, fmt.Errorf("failed to generate insight: %w", err)
	}

	if resp.Err != "" {
		s.metrics.IncrementCounter("llm.call", map[string]string{"status": "soft_error"})
		s.logger.LogGenerationSoftError(ctx, userID, p.Label, resp.Err)
	} else {
		s.metrics.IncrementCounter("llm.call", map[string]string{"status": "success"})
	}

	insight := &models.Insight{
		UserID:       userID,
		Period:       p.Label,
		Content:      resp.OutputText,
		LLMModel:     resp.Model,
		LLMRequestID: resp.ID,
	}

	if err := s.insightRepo.Create(insight); err != nil {
		return nil, err
	}

	s.logger.LogInsightPersisted(ctx, insight.ID, userID, p.Label)
	return insight, nil
}

// buildInsightInput serializes the user's period data into the prompt body
func buildInsightInput(period string, balance *dto.NetBalanceResponse, topExpenses []models.Transaction) (string, error) {
	prompts := make([]promptTransaction, 0, len(topExpenses))
	for _, tx := range topExpenses {
		prompts = append(prompts, promptTransaction{
			Category:    string(tx.Category),
			AmountLocal: tx.AmountLocal,
			AmountUSD:   tx.AmountUSD.StringFixed(2),
			Intent:      string(tx.Intent),
			Emotion:     string(tx.Emotion),
			Note:        tx.Note,
			OccurredAt:  tx.OccurredAt,
		})
	}

	txJSON, err := json.Marshal(prompts)
	if err != nil {
		return "", fmt.Errorf("failed to serialize transactions for prompt: %w", err)
	}

	return fmt.Sprintf("period: %s, netBalance: %d, transactions: %s", period, balance.NetBalance.Local, txJSON), nil
}

// EnqueueEligibleUsers enqueues a generation job for every user who
// recorded at least the configured minimum of expense transactions in the
// period, most active users first.
func (s *insightService) EnqueueEligibleUsers(ctx context.Context, period string) (int, error) {
	p := models.ResolvePeriod(period)

	eligible, err := s.transactionRepo.GroupUsersWithMinExpenses(s.insightsConfig.MinTransactions, p.Start, p.End)
	if err != nil {
		return 0, fmt.Errorf("failed to find eligible users: %w", err)
	}

	s.logger.LogEligibleUsersFound(ctx, p.Label, len(eligible))

	enqueued := 0
	for _, user := range eligible {
		if err := s.queueRepo.Enqueue(user.UserID, models.InsightJobNameGenerate); err != nil {
			return enqueued, fmt.Errorf("failed to enqueue job for user %s: %w", user.UserID, err)
		}
		s.metrics.IncrementCounter("insight.job.enqueued", nil)
		enqueued++
	}

	return enqueued, nil
}

func (s *insightService) FindAll(ctx context.Context, userID uuid.UUID, page, take int) (*dto.InsightListResponse, error) {
	if page <= 0 {
		page = DefaultInsightPage
	}
	if take <= 0 {
		take = DefaultInsightTake
	}

	offset := (page - 1) * take
	insights, total, err := s.insightRepo.ListByUser(userID, offset, take)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.InsightResponse, 0, len(insights))
	for _, insight := range insights {
		responses = append(responses, toInsightResponse(&insight))
	}

	totalPages := int((total + int64(take) - 1) / int64(take))

	return &dto.InsightListResponse{
		Insights:   responses,
		Total:      total,
		Page:       page,
		Take:       take,
		TotalPages: totalPages,
	}, nil
}

func (s *insightService) FindOne(ctx context.Context, userID, insightID uuid.UUID) (*dto.InsightResponse, error) {
	insight, err := s.insightRepo.GetByID(insightID, userID)
	if err != nil {
		return nil, err
	}

	resp := toInsightResponse(insight)
	return &resp, nil
}

func (s *insightService) FindByPeriod(ctx context.Context, userID uuid.UUID, period string) (*dto.InsightResponse, error) {
	insight, err := s.insightRepo.GetByUserAndPeriod(userID, period)
	if err != nil {
		return nil, err
	}

	resp := toInsightResponse(insight)
	return &resp, nil
}

func (s *insightService) GetQueueMetrics() (*dto.QueueMetrics, error) {
	pending, err := s.queueRepo.GetPendingCount()
	if err != nil {
		return nil, err
	}

	processing, err := s.queueRepo.GetProcessingCount()
	if err != nil {
		return nil, err
	}

	failed, err := s.queueRepo.GetFailedCount()
	if err != nil {
		return nil, err
	}

	oldest, err := s.queueRepo.GetOldestPendingAge()
	if err != nil {
		return nil, err
	}

	return &dto.QueueMetrics{
		PendingCount:    pending,
		ProcessingCount: processing,
		FailedCount:     failed,
		OldestPending:   oldest,
	}, nil
}

func toInsightResponse(insight *models.Insight) dto.InsightResponse {
	return dto.InsightResponse{
		ID:        insight.ID,
		Period:    insight.Period,
		Content:   insight.Content,
		LLMModel:  insight.LLMModel,
		CreatedAt: insight.CreatedAt,
	}
}

// IsDuplicateInsight reports whether the error is a period-uniqueness rejection
func IsDuplicateInsight(err error) bool {
	return errors.Is(err, repositories.ErrInsightAlreadyExists)
}
