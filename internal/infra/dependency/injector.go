// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/application/usecase/checkin"
	"github.com/grove/backend/internal/application/usecase/goal"
	"github.com/grove/backend/internal/application/usecase/insights"
	"github.com/grove/backend/internal/application/usecase/onboarding"
	"github.com/grove/backend/internal/application/usecase/settings"
	"github.com/grove/backend/internal/infra/server/router"
	"github.com/grove/backend/internal/integration/entrypoint/controller"
)

// Injector holds all application dependencies.
type Injector struct {
	Router *router.Router
}

// NewInjector wires controllers and use cases on top of whichever record
// repository and clock the caller provides. Tests pass fakes here.
func NewInjector(repo adapter.RecordRepository, clock adapter.Clock, storageHealthChecker func() bool) *Injector {
	// Create bootstrap use cases
	loadUseCase := bootstrap.NewLoadUserDataUseCase(repo, clock)
	resetUseCase := bootstrap.NewResetUserDataUseCase(repo, clock)

	// Create onboarding and settings use cases
	completeOnboardingUseCase := onboarding.NewCompleteOnboardingUseCase(repo, clock)
	setCheckInTimesUseCase := onboarding.NewSetCheckInTimesUseCase(repo, clock)
	updateProfileUseCase := settings.NewUpdateProfileUseCase(repo, clock)
	exportDataUseCase := settings.NewExportDataUseCase(repo, clock)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(repo, clock)
	createGoalUseCase := goal.NewCreateGoalUseCase(repo, clock)
	getGoalUseCase := goal.NewGetGoalUseCase(repo, clock)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(repo, clock)

	// Create check-in use cases
	checkInNoSpendUseCase := checkin.NewCheckInNoSpendUseCase(repo, clock)
	acknowledgeSpendUseCase := checkin.NewAcknowledgeSpendUseCase(repo, clock)
	logPurchaseUseCase := checkin.NewLogPurchaseUseCase(repo, clock)
	logSavingsUseCase := checkin.NewLogSavingsUseCase(repo, clock)

	// Create insights use cases
	spendingSummaryUseCase := insights.NewGetSpendingSummaryUseCase(repo, clock)
	goalProgressUseCase := insights.NewGetGoalProgressUseCase(repo, clock)

	// Create controllers
	healthController := controller.NewHealthController(storageHealthChecker)
	userDataController := controller.NewUserDataController(loadUseCase, resetUseCase, exportDataUseCase)
	goalController := controller.NewGoalController(listGoalsUseCase, createGoalUseCase, getGoalUseCase, deleteGoalUseCase)
	checkInController := controller.NewCheckInController(
		checkInNoSpendUseCase,
		acknowledgeSpendUseCase,
		logPurchaseUseCase,
		logSavingsUseCase,
	)
	insightsController := controller.NewInsightsController(spendingSummaryUseCase, goalProgressUseCase)
	settingsController := controller.NewSettingsController(
		completeOnboardingUseCase,
		setCheckInTimesUseCase,
		updateProfileUseCase,
	)

	return &Injector{
		Router: router.NewRouter(
			healthController,
			userDataController,
			goalController,
			checkInController,
			insightsController,
			settingsController,
		),
	}
}
