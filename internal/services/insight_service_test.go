package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"finsight/internal/config"
	"finsight/internal/dto"
	"finsight/internal/llm"
	"finsight/internal/models"
	"finsight/internal/repositories"
	"finsight/internal/repositories/repository_mocks"
	"finsight/internal/services"
	"finsight/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InsightServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	insightService  services.InsightServiceInterface
	insightRepo     *repository_mocks.MockInsightRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	queueRepo       *repository_mocks.MockInsightQueueRepositoryInterface
	analytics       *service_mocks.MockAnalyticsServiceInterface
	llmClient       *service_mocks.MockLLMClientInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	insightLogger   *service_mocks.MockInsightLoggerInterface
}

func TestInsightServiceSuite(t *testing.T) {
	suite.Run(t, new(InsightServiceTestSuite))
}

func (s *InsightServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.insightRepo = repository_mocks.NewMockInsightRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.queueRepo = repository_mocks.NewMockInsightQueueRepositoryInterface(s.ctrl)
	s.analytics = service_mocks.NewMockAnalyticsServiceInterface(s.ctrl)
	s.llmClient = service_mocks.NewMockLLMClientInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.insightLogger = service_mocks.NewMockInsightLoggerInterface(s.ctrl)

	s.insightService = services.NewInsightService(
		s.insightRepo,
		s.transactionRepo,
		s.queueRepo,
		s.analytics,
		s.llmClient,
		config.LLMConfig{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Instructions: "You are a personal finance coach.",
		},
		config.InsightsConfig{
			MinTransactions:      5,
			TopTransactionsLimit: 10,
		},
		s.metrics,
		s.insightLogger,
	)
}

func (s *InsightServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InsightServiceTestSuite) periodBounds(label string) (time.Time, time.Time) {
	p := models.ResolvePeriod(label)
	return p.Start, p.End
}

func (s *InsightServiceTestSuite) netBalance(period string) *dto.NetBalanceResponse {
	return &dto.NetBalanceResponse{
		Period: period,
		TotalIncome: dto.AmountPair{
			Local: 10_000_000,
			USD:   decimal.NewFromInt(250),
		},
		TotalExpense: dto.AmountPair{
			Local: 4_000_000,
			USD:   decimal.NewFromInt(100),
		},
		NetBalance: dto.AmountPair{
			Local: 6_000_000,
			USD:   decimal.NewFromInt(150),
		},
	}
}

// Test: Generate - Successful Response - Persists Insight
func (s *InsightServiceTestSuite) TestInsightService_Generate_SuccessfulResponse_PersistsInsight() {
	userID := uuid.New()
	period := "2025-07"
	start, end := s.periodBounds(period)

	topExpenses := []models.Transaction{
		{
			UserID:      userID,
			Type:        models.TransactionTypeExpense,
			AmountLocal: 2_000_000,
			AmountUSD:   decimal.NewFromInt(50),
			Category:    models.CategoryHousing,
			Intent:      models.IntentObligation,
			Emotion:     models.EmotionNeutral,
			Note:        gofakeit.Sentence(3),
			OccurredAt:  start.Add(24 * time.Hour),
		},
	}

	s.transactionRepo.EXPECT().FindTopExpenses(userID, start, end, 10).Return(topExpenses, nil).Times(1)
	s.analytics.EXPECT().GetNetBalance(gomock.Any(), userID, period).Return(s.netBalance(period), nil).Times(1)
	s.llmClient.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
			s.Equal("gpt-4o-mini", req.Model)
			s.Contains(req.Input, "period: 2025-07")
			s.Contains(req.Input, "netBalance: 6000000")
			s.Contains(req.Input, string(models.CategoryHousing))
			return &llm.GenerateResponse{
				ID:         "resp_123",
				Model:      "gpt-4o-mini",
				OutputText: "You saved 60% of your income this month.",
			}, nil
		},
	).Times(1)
	s.metrics.EXPECT().IncrementCounter("llm.call", map[string]string{"status": "success"}).Times(1)
	s.insightRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(insight *models.Insight) error {
		s.Equal(userID, insight.UserID)
		s.Equal(period, insight.Period)
		s.Equal("You saved 60% of your income this month.", insight.Content)
		s.Equal("gpt-4o-mini", insight.LLMModel)
		s.Equal("resp_123", insight.LLMRequestID)
		insight.ID = uuid.New()
		return nil
	}).Times(1)
	s.insightLogger.EXPECT().LogInsightPersisted(gomock.Any(), gomock.Any(), userID, period).Times(1)

	insight, err := s.insightService.Generate(s.ctx, userID, period)

	s.NoError(err)
	s.NotNil(insight)
	s.Equal("You saved 60% of your income this month.", insight.Content)
}

// Test: Generate - API-Level Soft Error - Logged but Output Still Persisted
func (s *InsightServiceTestSuite) TestInsightService_Generate_SoftError_StillPersistsInsight() {
	userID := uuid.New()
	period := "2025-07"
	start, end := s.periodBounds(period)

	s.transactionRepo.EXPECT().FindTopExpenses(userID, start, end, 10).Return([]models.Transaction{}, nil).Times(1)
	s.analytics.EXPECT().GetNetBalance(gomock.Any(), userID, period).Return(s.netBalance(period), nil).Times(1)
	s.llmClient.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(&llm.GenerateResponse{
		ID:         "resp_456",
		Model:      "gpt-4o-mini",
		OutputText: "",
		Err:        "output truncated: max_output_tokens",
	}, nil).Times(1)
	s.metrics.EXPECT().IncrementCounter("llm.call", map[string]string{"status": "soft_error"}).Times(1)
	s.insightLogger.EXPECT().LogGenerationSoftError(gomock.Any(), userID, period, "output truncated: max_output_tokens").Times(1)
	s.insightRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	s.insightLogger.EXPECT().LogInsightPersisted(gomock.Any(), gomock.Any(), userID, period).Times(1)

	insight, err := s.insightService.Generate(s.ctx, userID, period)

	s.NoError(err)
	s.NotNil(insight)
}

// Test: Generate - Transport Error - Nothing Persisted
func (s *InsightServiceTestSuite) TestInsightService_Generate_TransportError_NothingPersisted() {
	userID := uuid.New()
	period := "2025-07"
	start, end := s.periodBounds(period)

	s.transactionRepo.EXPECT().FindTopExpenses(userID, start, end, 10).Return([]models.Transaction{}, nil).Times(1)
	s.analytics.EXPECT().GetNetBalance(gomock.Any(), userID, period).Return(s.netBalance(period), nil).Times(1)
	s.llmClient.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)
	s.metrics.EXPECT().IncrementCounter("llm.call", map[string]string{"status": "error"}).Times(1)

	insight, err := s.insightService.Generate(s.ctx, userID, period)

	s.Error(err)
	s.Nil(insight)
}

// Test: Generate - Duplicate Period - Returns Uniqueness Error
func (s *InsightServiceTestSuite) TestInsightService_Generate_DuplicatePeriod_ReturnsAlreadyExists() {
	userID := uuid.New()
	period := "2025-07"
	start, end := s.periodBounds(period)

	s.transactionRepo.EXPECT().FindTopExpenses(userID, start, end, 10).Return([]models.Transaction{}, nil).Times(1)
	s.analytics.EXPECT().GetNetBalance(gomock.Any(), userID, period).Return(s.netBalance(period), nil).Times(1)
	s.llmClient.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(&llm.GenerateResponse{
		ID:         "resp_789",
		Model:      "gpt-4o-mini",
		OutputText: "Another insight.",
	}, nil).Times(1)
	s.metrics.EXPECT().IncrementCounter("llm.call", map[string]string{"status": "success"}).Times(1)
	s.insightRepo.EXPECT().Create(gomock.Any()).Return(repositories.ErrInsightAlreadyExists).Times(1)

	insight, err := s.insightService.Generate(s.ctx, userID, period)

	s.Nil(insight)
	s.True(services.IsDuplicateInsight(err))
}

// Test: EnqueueEligibleUsers - Users Above Threshold - All Enqueued
func (s *InsightServiceTestSuite) TestInsightService_EnqueueEligibleUsers_UsersAboveThreshold_AllEnqueued() {
	period := "2025-07"
	start, end := s.periodBounds(period)

	eligible := []models.EligibleUser{
		{UserID: uuid.New(), TransactionCount: 42},
		{UserID: uuid.New(), TransactionCount: 17},
		{UserID: uuid.New(), TransactionCount: 5},
	}

	s.transactionRepo.EXPECT().GroupUsersWithMinExpenses(5, start, end).Return(eligible, nil).Times(1)
	s.insightLogger.EXPECT().LogEligibleUsersFound(gomock.Any(), period, 3).Times(1)
	for _, user := range eligible {
		s.queueRepo.EXPECT().Enqueue(user.UserID, models.InsightJobNameGenerate).Return(nil).Times(1)
	}
	s.metrics.EXPECT().IncrementCounter("insight.job.enqueued", nil).Times(3)

	enqueued, err := s.insightService.EnqueueEligibleUsers(s.ctx, period)

	s.NoError(err)
	s.Equal(3, enqueued)
}

// Test: EnqueueEligibleUsers - No Eligible Users - Nothing Enqueued
func (s *InsightServiceTestSuite) TestInsightService_EnqueueEligibleUsers_NoEligibleUsers_NothingEnqueued() {
	period := "2025-07"
	start, end := s.periodBounds(period)

	s.transactionRepo.EXPECT().GroupUsersWithMinExpenses(5, start, end).Return([]models.EligibleUser{}, nil).Times(1)
	s.insightLogger.EXPECT().LogEligibleUsersFound(gomock.Any(), period, 0).Times(1)

	enqueued, err := s.insightService.EnqueueEligibleUsers(s.ctx, period)

	s.NoError(err)
	s.Equal(0, enqueued)
}

// Test: FindAll - Defaults Applied When Page and Take Are Zero
func (s *InsightServiceTestSuite) TestInsightService_FindAll_ZeroPageAndTake_DefaultsApplied() {
	userID := uuid.New()

	insights := []models.Insight{
		{ID: uuid.New(), UserID: userID, Period: "2025-07", Content: gofakeit.Sentence(10)},
		{ID: uuid.New(), UserID: userID, Period: "2025-06", Content: gofakeit.Sentence(10)},
	}

	s.insightRepo.EXPECT().ListByUser(userID, 0, 3).Return(insights, int64(7), nil).Times(1)

	resp, err := s.insightService.FindAll(s.ctx, userID, 0, 0)

	s.NoError(err)
	s.Equal(1, resp.Page)
	s.Equal(3, resp.Take)
	s.Equal(int64(7), resp.Total)
	s.Equal(3, resp.TotalPages)
	s.Len(resp.Insights, 2)
}

// Test: FindAll - Offset Derived From Page
func (s *InsightServiceTestSuite) TestInsightService_FindAll_SecondPage_OffsetApplied() {
	userID := uuid.New()

	s.insightRepo.EXPECT().ListByUser(userID, 10, 10).Return([]models.Insight{}, int64(10), nil).Times(1)

	resp, err := s.insightService.FindAll(s.ctx, userID, 2, 10)

	s.NoError(err)
	s.Equal(2, resp.Page)
	s.Equal(1, resp.TotalPages)
	s.Empty(resp.Insights)
}

// Test: FindOne - Insight Belongs To Another User - Not Found
func (s *InsightServiceTestSuite) TestInsightService_FindOne_OtherUsersInsight_ReturnsNotFound() {
	userID := uuid.New()
	insightID := uuid.New()

	s.insightRepo.EXPECT().GetByID(insightID, userID).Return(nil, repositories.ErrInsightNotFound).Times(1)

	resp, err := s.insightService.FindOne(s.ctx, userID, insightID)

	s.Nil(resp)
	s.ErrorIs(err, repositories.ErrInsightNotFound)
}

// Test: FindByPeriod - Existing Insight - Returned Without Provider Fields
func (s *InsightServiceTestSuite) TestInsightService_FindByPeriod_ExistingInsight_Returned() {
	userID := uuid.New()

	insight := &models.Insight{
		ID:           uuid.New(),
		UserID:       userID,
		Period:       "2025-07",
		Content:      "A calm month overall.",
		LLMModel:     "gpt-4o-mini",
		LLMRequestID: "resp_abc",
	}

	s.insightRepo.EXPECT().GetByUserAndPeriod(userID, "2025-07").Return(insight, nil).Times(1)

	resp, err := s.insightService.FindByPeriod(s.ctx, userID, "2025-07")

	s.NoError(err)
	s.Equal(insight.ID, resp.ID)
	s.Equal("A calm month overall.", resp.Content)
}

// Test: GetQueueMetrics - Counts Aggregated From Queue
func (s *InsightServiceTestSuite) TestInsightService_GetQueueMetrics_CountsAggregated() {
	oldest := "2m30s"

	s.queueRepo.EXPECT().GetPendingCount().Return(int64(12), nil).Times(1)
	s.queueRepo.EXPECT().GetProcessingCount().Return(int64(3), nil).Times(1)
	s.queueRepo.EXPECT().GetFailedCount().Return(int64(1), nil).Times(1)
	s.queueRepo.EXPECT().GetOldestPendingAge().Return(&oldest, nil).Times(1)

	metrics, err := s.insightService.GetQueueMetrics()

	s.NoError(err)
	s.Equal(int64(12), metrics.PendingCount)
	s.Equal(int64(3), metrics.ProcessingCount)
	s.Equal(int64(1), metrics.FailedCount)
	s.Equal(&oldest, metrics.OldestPending)
}
