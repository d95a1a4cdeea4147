package handlers

import (
	stderrors "errors"
	"net/http"

	"finsight/internal/dto"
	"finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/repositories"
	"finsight/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InsightsHandler handles insight retrieval and generation HTTP requests
type InsightsHandler struct {
	insightService services.InsightServiceInterface
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightService services.InsightServiceInterface) *InsightsHandler {
	return &InsightsHandler{insightService: insightService}
}

// ListInsights returns the user's insights, newest first
// @Summary List insights
// @Description Paginated list of the authenticated user's insights, newest first
// @Tags Insights
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param take query int false "Page size" default(3)
// @Success 200 {object} dto.InsightListResponse "Page of insights"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights [get]
func (h *InsightsHandler) ListInsights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	page := getIntParam(c, "page", services.DefaultInsightPage)
	take := getIntParam(c, "take", services.DefaultInsightTake)

	insights, err := h.insightService.FindAll(c.Request().Context(), userID, page, take)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: insights})
}

// GetInsight returns a single insight owned by the user
// @Summary Get insight
// @Description Fetch a single insight by ID, scoped to the authenticated user
// @Tags Insights
// @Security BearerAuth
// @Produce json
// @Param id path string true "Insight ID (UUID)"
// @Success 200 {object} dto.InsightResponse "The insight"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid insight ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "INSIGHT_001 - Insight not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights/{id} [get]
func (h *InsightsHandler) GetInsight(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	insightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid insight ID format"))
	}

	insight, err := h.insightService.FindOne(c.Request().Context(), userID, insightID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrInsightNotFound) {
			return SendError(c, errors.InsightNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: insight})
}

// GetInsightByPeriod returns the user's insight for a specific month
// @Summary Get insight by period
// @Description Fetch the authenticated user's insight for a given month
// @Tags Insights
// @Security BearerAuth
// @Produce json
// @Param period path string true "Period (YYYY-MM)"
// @Success 200 {object} dto.InsightResponse "The insight"
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_001 - Invalid period format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "INSIGHT_001 - Insight not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights/period/{period} [get]
func (h *InsightsHandler) GetInsightByPeriod(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period := c.Param("period")
	if !periodParamPattern.MatchString(period) {
		return SendError(c, errors.AnalyticsInvalidPeriod)
	}

	insight, err := h.insightService.FindByPeriod(c.Request().Context(), userID, period)
	if err != nil {
		if stderrors.Is(err, repositories.ErrInsightNotFound) {
			return SendError(c, errors.InsightNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: insight})
}

// GenerateInsights enqueues generation jobs for all eligible users
// @Summary Enqueue insight generation
// @Description Enqueue a generation job for every user with enough activity in the period. Admin only.
// @Tags Insights
// @Security BearerAuth
// @Produce json
// @Param period query string false "Period (YYYY-MM), defaults to current month"
// @Success 202 {object} dto.GenerateManyResponse "Number of jobs enqueued"
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_001 - Invalid period format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Admin access required"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights/generate [post]
func (h *InsightsHandler) GenerateInsights(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if !getIsAdminFromContext(c) {
		return SendError(c, errors.AuthInsufficientPermission, errors.WithDetails("Admin access required"))
	}

	period, ok := periodParam(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidPeriod)
	}

	enqueued, err := h.insightService.EnqueueEligibleUsers(c.Request().Context(), period)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusAccepted, SuccessResponse{
		Data: dto.GenerateManyResponse{
			Enqueued: enqueued,
			Period:   models.ResolvePeriod(period).Label,
		},
		Message: "Insight generation enqueued",
	})
}

// GetQueueMetrics returns live counts for the insight generation queue
// @Summary Queue metrics
// @Description Pending, processing and failed job counts for the insight queue. Admin only.
// @Tags Insights
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.QueueMetrics "Queue metrics"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Admin access required"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights/queue/metrics [get]
func (h *InsightsHandler) GetQueueMetrics(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if !getIsAdminFromContext(c) {
		return SendError(c, errors.AuthInsufficientPermission, errors.WithDetails("Admin access required"))
	}

	metrics, err := h.insightService.GetQueueMetrics()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: metrics})
}
