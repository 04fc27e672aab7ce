// Package settings contains the settings-screen use cases.
package settings

import (
	"context"
	"strings"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
	domainerror "github.com/grove/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a settings update. Nil fields
// are left untouched.
type UpdateProfileInput struct {
	UserName   *string
	Appearance *entity.Appearance
}

// UpdateProfileOutput represents the output of a settings update.
type UpdateProfileOutput struct {
	Data *entity.UserData
}

// UpdateProfileUseCase applies partial updates to the user's display name and
// theme preference.
type UpdateProfileUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(repo adapter.RecordRepository, clock adapter.Clock) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{repo: repo, clock: clock}
}

// Execute applies the update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	if input.UserName != nil && strings.TrimSpace(*input.UserName) == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidUserName,
			"user name must not be empty",
			domainerror.ErrInvalidUserName,
		)
	}
	if input.Appearance != nil && !entity.IsValidAppearance(*input.Appearance) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAppearance,
			"appearance must be 'system', 'light' or 'dark'",
			domainerror.ErrInvalidAppearance,
		)
	}

	data := bootstrap.LoadState(ctx, uc.repo, uc.clock).Clone()
	if input.UserName != nil {
		data.UserName = strings.TrimSpace(*input.UserName)
	}
	if input.Appearance != nil {
		data.Appearance = *input.Appearance
	}
	bootstrap.SaveState(ctx, uc.repo, data)
	return &UpdateProfileOutput{Data: data}, nil
}
