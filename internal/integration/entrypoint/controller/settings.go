package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grove/backend/internal/application/usecase/onboarding"
	"github.com/grove/backend/internal/application/usecase/settings"
	"github.com/grove/backend/internal/domain/entity"
	domainerror "github.com/grove/backend/internal/domain/error"
	"github.com/grove/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles onboarding and settings endpoints.
type SettingsController struct {
	completeUseCase *onboarding.CompleteOnboardingUseCase
	timesUseCase    *onboarding.SetCheckInTimesUseCase
	profileUseCase  *settings.UpdateProfileUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	completeUseCase *onboarding.CompleteOnboardingUseCase,
	timesUseCase *onboarding.SetCheckInTimesUseCase,
	profileUseCase *settings.UpdateProfileUseCase,
) *SettingsController {
	return &SettingsController{
		completeUseCase: completeUseCase,
		timesUseCase:    timesUseCase,
		profileUseCase:  profileUseCase,
	}
}

// CompleteOnboarding handles POST /onboarding/complete requests.
func (c *SettingsController) CompleteOnboarding(ctx *gin.Context) {
	output, err := c.completeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserDataResponse(output.Data))
}

// SetCheckInTimes handles PUT /onboarding/check-in-times requests.
func (c *SettingsController) SetCheckInTimes(ctx *gin.Context) {
	var req dto.SetCheckInTimesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := onboarding.SetCheckInTimesInput{
		Times: entity.CheckInTimes{
			Morning:    req.Morning,
			Evening:    req.Evening,
			CustomTime: req.CustomTime,
		},
	}
	output, err := c.timesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserDataResponse(output.Data))
}

// UpdateProfile handles PATCH /settings/profile requests.
func (c *SettingsController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := settings.UpdateProfileInput{
		UserName: req.UserName,
	}
	if req.Appearance != nil {
		appearance := entity.Appearance(*req.Appearance)
		input.Appearance = &appearance
	}
	output, err := c.profileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserDataResponse(output.Data))
}
