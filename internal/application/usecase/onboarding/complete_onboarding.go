// Package onboarding contains the onboarding-flow use cases.
package onboarding

import (
	"context"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
)

// CompleteOnboardingOutput represents the output of finishing onboarding.
type CompleteOnboardingOutput struct {
	Data *entity.UserData
}

// CompleteOnboardingUseCase marks the onboarding flow as done, the last step
// of the welcome sequence.
type CompleteOnboardingUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewCompleteOnboardingUseCase creates a new CompleteOnboardingUseCase instance.
func NewCompleteOnboardingUseCase(repo adapter.RecordRepository, clock adapter.Clock) *CompleteOnboardingUseCase {
	return &CompleteOnboardingUseCase{repo: repo, clock: clock}
}

// Execute marks onboarding complete. Running it again is harmless.
func (uc *CompleteOnboardingUseCase) Execute(ctx context.Context) (*CompleteOnboardingOutput, error) {
	data := bootstrap.LoadState(ctx, uc.repo, uc.clock).Clone()
	data.OnboardingComplete = true
	bootstrap.SaveState(ctx, uc.repo, data)
	return &CompleteOnboardingOutput{Data: data}, nil
}
