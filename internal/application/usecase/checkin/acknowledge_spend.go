package checkin

import (
	"context"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
)

// AcknowledgeSpendInput represents the input for a "yes, I spent" answer
// given without an amount. An empty GoalID targets the legacy root record.
type AcknowledgeSpendInput struct {
	GoalID string
}

// AcknowledgeSpendOutput represents the output of the acknowledgement.
type AcknowledgeSpendOutput struct {
	Data *entity.UserData
}

// AcknowledgeSpendUseCase stamps today's check-in date without logging a
// purchase; the purchase itself follows as a separate explicit action, or not
// at all.
type AcknowledgeSpendUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewAcknowledgeSpendUseCase creates a new AcknowledgeSpendUseCase instance.
func NewAcknowledgeSpendUseCase(repo adapter.RecordRepository, clock adapter.Clock) *AcknowledgeSpendUseCase {
	return &AcknowledgeSpendUseCase{repo: repo, clock: clock}
}

// Execute performs the acknowledgement.
func (uc *AcknowledgeSpendUseCase) Execute(ctx context.Context, input AcknowledgeSpendInput) (*AcknowledgeSpendOutput, error) {
	data := bootstrap.LoadState(ctx, uc.repo, uc.clock)
	today := entity.Today(uc.clock.Now())

	if input.GoalID == "" {
		data = data.AcknowledgeSpend(today)
	} else {
		data = data.AcknowledgeSpendForGoal(input.GoalID, today)
	}

	bootstrap.SaveState(ctx, uc.repo, data)
	return &AcknowledgeSpendOutput{Data: data}, nil
}
