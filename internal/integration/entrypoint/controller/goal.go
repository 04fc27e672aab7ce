package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/grove/backend/internal/application/usecase/goal"
	"github.com/grove/backend/internal/domain/entity"
	domainerror "github.com/grove/backend/internal/domain/error"
	"github.com/grove/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GoalListResponse{Goals: dto.ToGoalResponses(output.Goals)})
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.CreateGoalInput{
		Type:          entity.GoalType(req.Type),
		Name:          req.Name,
		CategoryLabel: req.CategoryLabel,
		EndDate:       entity.LocalDate(req.EndDate),
		Period:        entity.BudgetPeriod(req.Period),
	}
	if req.TargetAmount != nil {
		input.TargetAmount = decimal.NewFromFloat(*req.TargetAmount)
	}
	if req.LimitAmount != nil {
		input.LimitAmount = decimal.NewFromFloat(*req.LimitAmount)
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	input := goal.GetGoalInput{GoalID: ctx.Param("id")}
	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests. Deleting an ID that no longer
// exists returns the unchanged state.
func (c *GoalController) Delete(ctx *gin.Context) {
	input := goal.DeleteGoalInput{GoalID: ctx.Param("id")}
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserDataResponse(output.Data))
}
