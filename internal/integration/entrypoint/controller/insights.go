package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grove/backend/internal/application/usecase/insights"
	"github.com/grove/backend/internal/integration/entrypoint/dto"
)

// InsightsController handles the derived read-side endpoints.
type InsightsController struct {
	spendingUseCase *insights.GetSpendingSummaryUseCase
	progressUseCase *insights.GetGoalProgressUseCase
}

// NewInsightsController creates a new insights controller instance.
func NewInsightsController(
	spendingUseCase *insights.GetSpendingSummaryUseCase,
	progressUseCase *insights.GetGoalProgressUseCase,
) *InsightsController {
	return &InsightsController{
		spendingUseCase: spendingUseCase,
		progressUseCase: progressUseCase,
	}
}

// Spending handles GET /insights/spending requests.
func (c *InsightsController) Spending(ctx *gin.Context) {
	output, err := c.spendingUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSpendingSummaryResponse(output))
}

// Goals handles GET /insights/goals requests.
func (c *InsightsController) Goals(ctx *gin.Context) {
	output, err := c.progressUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalProgressListResponse(output))
}
