package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/grove/backend/internal/domain/error"
	"github.com/grove/backend/internal/integration/entrypoint/dto"
)

// handleDomainError maps domain errors to HTTP responses. Validation failures
// are 400, missing goals on reads are 404, anything else is 500.
func handleDomainError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		status := http.StatusBadRequest
		if goalErr.Code == domainerror.ErrCodeGoalNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
