package handlers

import (
	"net/http"
	"regexp"

	"finsight/internal/errors"
	"finsight/internal/services"

	"github.com/labstack/echo/v4"
)

var periodParamPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// AnalyticsHandler handles monthly analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// periodParam reads and validates the optional period query parameter.
// An empty period resolves to the current month downstream.
func periodParam(c echo.Context) (string, bool) {
	period := c.QueryParam("period")
	if period == "" {
		return "", true
	}
	return period, periodParamPattern.MatchString(period)
}

// GetNetBalance returns income, expense and net totals for a period
// @Summary Net balance
// @Description Income, expense and net totals for a month in both currencies
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param period query string false "Period (YYYY-MM), defaults to current month"
// @Success 200 {object} dto.NetBalanceResponse "Net balance for the period"
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_001 - Invalid period format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/net-balance [get]
func (h *AnalyticsHandler) GetNetBalance(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, ok := periodParam(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidPeriod)
	}

	balance, err := h.analyticsService.GetNetBalance(c.Request().Context(), userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: balance})
}

// GetSpendingBreakdown returns per-category expense totals for a period
// @Summary Spending breakdown
// @Description Expense totals grouped by category with percentage shares
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param period query string false "Period (YYYY-MM), defaults to current month"
// @Success 200 {object} dto.BreakdownResponse "Category breakdown for the period"
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_001 - Invalid period format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/spending-breakdown [get]
func (h *AnalyticsHandler) GetSpendingBreakdown(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, ok := periodParam(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidPeriod)
	}

	breakdown, err := h.analyticsService.GetSpendingBreakdown(c.Request().Context(), userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: breakdown})
}

// GetIntentBreakdown returns per-intent expense totals for a period
// @Summary Intent breakdown
// @Description Expense totals grouped by purchase intent with percentage shares
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param period query string false "Period (YYYY-MM), defaults to current month"
// @Success 200 {object} dto.BreakdownResponse "Intent breakdown for the period"
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_001 - Invalid period format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/intent-breakdown [get]
func (h *AnalyticsHandler) GetIntentBreakdown(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, ok := periodParam(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidPeriod)
	}

	breakdown, err := h.analyticsService.GetIntentBreakdown(c.Request().Context(), userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: breakdown})
}

// GetEmotionBreakdown returns per-emotion expense totals for a period
// @Summary Emotion breakdown
// @Description Expense totals grouped by recorded emotion with percentage shares
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param period query string false "Period (YYYY-MM), defaults to current month"
// @Success 200 {object} dto.BreakdownResponse "Emotion breakdown for the period"
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_001 - Invalid period format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/emotion-breakdown [get]
func (h *AnalyticsHandler) GetEmotionBreakdown(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, ok := periodParam(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidPeriod)
	}

	breakdown, err := h.analyticsService.GetEmotionBreakdown(c.Request().Context(), userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: breakdown})
}

// GetSavingsRate returns the savings rate for a period
// @Summary Savings rate
// @Description Share of local-currency income kept after expenses
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param period query string false "Period (YYYY-MM), defaults to current month"
// @Success 200 {object} dto.SavingsRateResponse "Savings rate for the period"
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_001 - Invalid period format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/savings-rate [get]
func (h *AnalyticsHandler) GetSavingsRate(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, ok := periodParam(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidPeriod)
	}

	rate, err := h.analyticsService.GetSavingsRate(c.Request().Context(), userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: rate})
}

// GetTopTransactions returns the largest transactions of a period
// @Summary Top transactions
// @Description Largest transactions of a month by local amount
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param period query string false "Period (YYYY-MM), defaults to current month"
// @Param take query int false "Number of transactions to return (1-50)" default(5)
// @Success 200 {object} dto.TopTransactionsResponse "Top transactions for the period"
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_001 - Invalid period or ANALYTICS_002 - Invalid take"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/top-transactions [get]
func (h *AnalyticsHandler) GetTopTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, ok := periodParam(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidPeriod)
	}

	take := getIntParam(c, "take", services.DefaultTopTransactionsLimit)
	if take < 1 || take > 50 {
		return SendError(c, errors.AnalyticsInvalidTake)
	}

	top, err := h.analyticsService.GetTopTransactions(c.Request().Context(), userID, period, take)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: top})
}

// GetSummary returns all analytics metrics for a period in one response
// @Summary Analytics summary
// @Description Net balance, breakdowns, savings rate and top transactions in one call
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param period query string false "Period (YYYY-MM), defaults to current month"
// @Success 200 {object} dto.AnalyticsSummaryResponse "Combined analytics for the period"
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_001 - Invalid period format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, ok := periodParam(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidPeriod)
	}

	summary, err := h.analyticsService.GetSummary(c.Request().Context(), userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}
