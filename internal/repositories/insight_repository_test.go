package repositories

import (
	"testing"

	"finsight/internal/database"
	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestInsightRepository(t *testing.T) {
	suite.Run(t, new(InsightRepositorySuite))
}

type InsightRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo InsightRepositoryInterface
	user *models.User
}

func (s *InsightRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewInsightRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "insight@example.com")
}

func (s *InsightRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *InsightRepositorySuite) newInsight(period string) *models.Insight {
	return &models.Insight{
		UserID:   s.user.ID,
		Period:   period,
		Content:  "You spent most of your money on daily expenses this month.",
		LLMModel: "gpt-4o-mini",
	}
}

func (s *InsightRepositorySuite) TestInsightRepository_Create() {
	insight := s.newInsight("2025-07")

	err := s.repo.Create(insight)
	s.NoError(err)
	s.NotEqual(uuid.Nil, insight.ID)
	s.NotZero(insight.CreatedAt)
}

func (s *InsightRepositorySuite) TestInsightRepository_Create_DuplicatePeriod() {
	s.NoError(s.repo.Create(s.newInsight("2025-07")))

	err := s.repo.Create(s.newInsight("2025-07"))
	s.Equal(ErrInsightAlreadyExists, err)
}

func (s *InsightRepositorySuite) TestInsightRepository_Create_SamePeriodDifferentUsers() {
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	s.NoError(s.repo.Create(s.newInsight("2025-07")))

	insight := s.newInsight("2025-07")
	insight.UserID = other.ID
	s.NoError(s.repo.Create(insight))
}

func (s *InsightRepositorySuite) TestInsightRepository_GetByID() {
	insight := s.newInsight("2025-07")
	s.NoError(s.repo.Create(insight))

	found, err := s.repo.GetByID(insight.ID, s.user.ID)
	s.NoError(err)
	s.Equal(insight.ID, found.ID)
	s.Equal(insight.Content, found.Content)
}

func (s *InsightRepositorySuite) TestInsightRepository_GetByID_ScopedToOwner() {
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	insight := s.newInsight("2025-07")
	s.NoError(s.repo.Create(insight))

	// Another user's ID must not reach this insight
	_, err := s.repo.GetByID(insight.ID, other.ID)
	s.Equal(ErrInsightNotFound, err)
}

func (s *InsightRepositorySuite) TestInsightRepository_GetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New(), s.user.ID)
	s.Equal(ErrInsightNotFound, err)
}

func (s *InsightRepositorySuite) TestInsightRepository_GetByUserAndPeriod() {
	insight := s.newInsight("2025-07")
	s.NoError(s.repo.Create(insight))

	found, err := s.repo.GetByUserAndPeriod(s.user.ID, "2025-07")
	s.NoError(err)
	s.Equal(insight.ID, found.ID)

	_, err = s.repo.GetByUserAndPeriod(s.user.ID, "2025-06")
	s.Equal(ErrInsightNotFound, err)
}

func (s *InsightRepositorySuite) TestInsightRepository_ExistsForUserAndPeriod() {
	s.NoError(s.repo.Create(s.newInsight("2025-07")))

	exists, err := s.repo.ExistsForUserAndPeriod(s.user.ID, "2025-07")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsForUserAndPeriod(s.user.ID, "2025-06")
	s.NoError(err)
	s.False(exists)
}

func (s *InsightRepositorySuite) TestInsightRepository_ListByUser() {
	for _, period := range []string{"2025-05", "2025-07", "2025-06"} {
		s.NoError(s.repo.Create(s.newInsight(period)))
	}

	insights, total, err := s.repo.ListByUser(s.user.ID, 0, 10)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(insights, 3)

	// Newest period first
	s.Equal("2025-07", insights[0].Period)
	s.Equal("2025-06", insights[1].Period)
	s.Equal("2025-05", insights[2].Period)
}

func (s *InsightRepositorySuite) TestInsightRepository_ListByUser_Pagination() {
	for _, period := range []string{"2025-04", "2025-05", "2025-06", "2025-07"} {
		s.NoError(s.repo.Create(s.newInsight(period)))
	}

	insights, total, err := s.repo.ListByUser(s.user.ID, 2, 2)
	s.NoError(err)
	s.Equal(int64(4), total)
	s.Len(insights, 2)
	s.Equal("2025-05", insights[0].Period)
	s.Equal("2025-04", insights[1].Period)
}

func (s *InsightRepositorySuite) TestInsightRepository_ListByUser_Empty() {
	insights, total, err := s.repo.ListByUser(uuid.New(), 0, 10)
	s.NoError(err)
	s.Zero(total)
	s.Empty(insights)
}
