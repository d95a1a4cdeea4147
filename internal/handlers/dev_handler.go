package handlers

import (
	"net/http"
	"strings"

	"finsight/internal/models"
	"finsight/internal/repositories"
	"finsight/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	analytics       services.AnalyticsServiceInterface
	tokenService    services.TokenServiceInterface
	generator       services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	analytics services.AnalyticsServiceInterface,
	tokenService services.TokenServiceInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		analytics:       analytics,
		tokenService:    tokenService,
		generator:       services.NewTransactionGenerator(),
	}
}

// SeedTransactions generates realistic test transactions for the authenticated user
//
// Method: POST /api/v1/dev/seed-transactions
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - period: Month to seed in YYYY-MM format (default: current month)
//   - count: Number of transactions to generate (default: 50, max: 500)
//
// Success Response: 200 OK
//   - message: Success message
//   - transactions_created: Number of transactions created
func (h *DevHandler) SeedTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	period, ok := periodParam(c)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "period must be in YYYY-MM format")
	}

	count := getIntParam(c, "count", 50)
	if count < 1 {
		count = 1
	}
	if count > 500 {
		count = 500
	}

	p := models.ResolvePeriod(period)
	transactions := h.generator.GenerateMonthlyTransactions(userID, p, count)

	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to persist generated transactions")
	}

	// Seeded months must not serve stale cached analytics
	h.analytics.InvalidatePeriod(c.Request().Context(), userID, p.Label)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "test data generated successfully",
		"transactions_created": len(transactions),
		"user_id":              userID,
		"period":               p.Label,
	})
}

// IssueToken mints an access token for a user, creating the user if needed
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Query parameters:
//   - email: User email (required)
//   - role: "user" or "admin" (default: "user", applied only on creation)
//
// Success Response: 200 OK
//   - access_token: Signed JWT
//   - expires_at: Token expiry in RFC3339
//   - user_id: The user's UUID
func (h *DevHandler) IssueToken(c echo.Context) error {
	email := strings.TrimSpace(c.QueryParam("email"))
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	role := c.QueryParam("role")
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be user or admin")
	}

	user, err := h.userRepo.GetByEmail(email)
	if err != nil {
		if err != repositories.ErrUserNotFound {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to look up user")
		}

		user = &models.User{
			ID:        uuid.New(),
			Email:     email,
			FirstName: "Dev",
			LastName:  "User",
			Role:      role,
		}
		if err := h.userRepo.Create(user); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create user")
		}
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"access_token": token,
		"expires_at":   expiresAt,
		"user_id":      user.ID,
		"role":         user.Role,
	})
}
