package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/grove/backend/internal/application/usecase/checkin"
	domainerror "github.com/grove/backend/internal/domain/error"
	"github.com/grove/backend/internal/integration/entrypoint/dto"
)

// CheckInController handles check-in and logging endpoints, both goal-scoped
// and the legacy root-level variants.
type CheckInController struct {
	checkInUseCase     *checkin.CheckInNoSpendUseCase
	acknowledgeUseCase *checkin.AcknowledgeSpendUseCase
	purchaseUseCase    *checkin.LogPurchaseUseCase
	savingsUseCase     *checkin.LogSavingsUseCase
}

// NewCheckInController creates a new check-in controller instance.
func NewCheckInController(
	checkInUseCase *checkin.CheckInNoSpendUseCase,
	acknowledgeUseCase *checkin.AcknowledgeSpendUseCase,
	purchaseUseCase *checkin.LogPurchaseUseCase,
	savingsUseCase *checkin.LogSavingsUseCase,
) *CheckInController {
	return &CheckInController{
		checkInUseCase:     checkInUseCase,
		acknowledgeUseCase: acknowledgeUseCase,
		purchaseUseCase:    purchaseUseCase,
		savingsUseCase:     savingsUseCase,
	}
}

// CheckInGoal handles POST /goals/:id/check-in requests.
func (c *CheckInController) CheckInGoal(ctx *gin.Context) {
	c.checkIn(ctx, ctx.Param("id"))
}

// CheckInRoot handles POST /check-in requests against the legacy root streak.
func (c *CheckInController) CheckInRoot(ctx *gin.Context) {
	c.checkIn(ctx, "")
}

func (c *CheckInController) checkIn(ctx *gin.Context, goalID string) {
	var req dto.CheckInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	switch req.Result {
	case dto.CheckInResultNoSpend:
		output, err := c.checkInUseCase.Execute(ctx.Request.Context(), checkin.CheckInNoSpendInput{GoalID: goalID})
		if err != nil {
			handleDomainError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.ToUserDataResponse(output.Data))
	case dto.CheckInResultAcknowledgeSpend:
		output, err := c.acknowledgeUseCase.Execute(ctx.Request.Context(), checkin.AcknowledgeSpendInput{GoalID: goalID})
		if err != nil {
			handleDomainError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.ToUserDataResponse(output.Data))
	}
}

// LogPurchaseGoal handles POST /goals/:id/purchases requests.
func (c *CheckInController) LogPurchaseGoal(ctx *gin.Context) {
	c.logPurchase(ctx, ctx.Param("id"))
}

// LogPurchaseRoot handles POST /purchases requests against the legacy root
// purchase list.
func (c *CheckInController) LogPurchaseRoot(ctx *gin.Context) {
	c.logPurchase(ctx, "")
}

func (c *CheckInController) logPurchase(ctx *gin.Context, goalID string) {
	var req dto.LogPurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidEntryAmount),
		})
		return
	}

	input := checkin.LogPurchaseInput{
		GoalID:   goalID,
		Amount:   decimal.NewFromFloat(req.Amount),
		Category: req.Category,
	}
	output, err := c.purchaseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserDataResponse(output.Data))
}

// LogSavings handles POST /goals/:id/savings requests.
func (c *CheckInController) LogSavings(ctx *gin.Context) {
	var req dto.LogSavingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidEntryAmount),
		})
		return
	}

	input := checkin.LogSavingsInput{
		GoalID: ctx.Param("id"),
		Amount: decimal.NewFromFloat(req.Amount),
	}
	output, err := c.savingsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserDataResponse(output.Data))
}
