package onboarding

import (
	"context"
	"regexp"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
	domainerror "github.com/grove/backend/internal/domain/error"
)

var customTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// SetCheckInTimesInput represents the input for choosing reminder slots.
type SetCheckInTimesInput struct {
	Times entity.CheckInTimes
}

// SetCheckInTimesOutput represents the output of choosing reminder slots.
type SetCheckInTimesOutput struct {
	Data *entity.UserData
}

// SetCheckInTimesUseCase stores the preferred daily check-in slots. Reminder
// delivery itself is outside this system; only the preference persists.
type SetCheckInTimesUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewSetCheckInTimesUseCase creates a new SetCheckInTimesUseCase instance.
func NewSetCheckInTimesUseCase(repo adapter.RecordRepository, clock adapter.Clock) *SetCheckInTimesUseCase {
	return &SetCheckInTimesUseCase{repo: repo, clock: clock}
}

// Execute stores the check-in times.
func (uc *SetCheckInTimesUseCase) Execute(ctx context.Context, input SetCheckInTimesInput) (*SetCheckInTimesOutput, error) {
	if input.Times.CustomTime != "" && !customTimePattern.MatchString(input.Times.CustomTime) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidCustomTime,
			"custom check-in time must be HH:MM",
			domainerror.ErrInvalidCustomTime,
		)
	}

	data := bootstrap.LoadState(ctx, uc.repo, uc.clock).Clone()
	data.CheckInTimes = input.Times
	bootstrap.SaveState(ctx, uc.repo, data)
	return &SetCheckInTimesOutput{Data: data}, nil
}
