package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/application/usecase/settings"
	"github.com/grove/backend/internal/integration/entrypoint/dto"
)

// UserDataController handles whole-record endpoints: state load, reset and
// export.
type UserDataController struct {
	loadUseCase   *bootstrap.LoadUserDataUseCase
	resetUseCase  *bootstrap.ResetUserDataUseCase
	exportUseCase *settings.ExportDataUseCase
}

// NewUserDataController creates a new user data controller instance.
func NewUserDataController(
	loadUseCase *bootstrap.LoadUserDataUseCase,
	resetUseCase *bootstrap.ResetUserDataUseCase,
	exportUseCase *settings.ExportDataUseCase,
) *UserDataController {
	return &UserDataController{
		loadUseCase:   loadUseCase,
		resetUseCase:  resetUseCase,
		exportUseCase: exportUseCase,
	}
}

// GetState handles GET /state requests: the app-start load-and-migrate path.
func (c *UserDataController) GetState(ctx *gin.Context) {
	output, err := c.loadUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserDataResponse(output.Data))
}

// Reset handles POST /state/reset requests: the user-initiated clear.
func (c *UserDataController) Reset(ctx *gin.Context) {
	output, err := c.resetUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserDataResponse(output.Data))
}

// Export handles GET /export requests, returning the persisted JSON verbatim
// for download/share.
func (c *UserDataController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="grove-data.json"`)
	ctx.Data(http.StatusOK, "application/json", output.JSON)
}
