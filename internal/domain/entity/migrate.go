package entity

import "time"

// Names given to the goal synthesized from pre-multi-goal records.
const (
	legacyGoalName          = "No unnecessary spending"
	legacyGoalCategoryLabel = "unnecessary spending"
)

// MigrateToGoals upgrades a record from the legacy single-streak shape to the
// multi-goal shape. Records that already carry a goals array are returned
// unchanged, so running the migration twice is a no-op and goals are never
// duplicated. Legacy records with non-trivial data (a streak, purchases or a
// recorded check-in) yield exactly one no-spend goal copying the legacy fields
// verbatim; trivial legacy records yield an empty goals list. The legacy root
// fields are retained either way for backward compatibility.
func MigrateToGoals(data *UserData, now time.Time) *UserData {
	if data.goalsPresent {
		return data
	}

	migrated := data.Clone()
	migrated.goalsPresent = true

	hasLegacyData := data.CurrentStreak != 0 ||
		data.BestStreak != 0 ||
		len(data.Purchases) > 0 ||
		!data.LastCheckInDate.IsZero()
	if !hasLegacyData {
		migrated.Goals = GoalList{}
		return migrated
	}

	createdAt := data.StartDate
	if createdAt.IsZero() {
		createdAt = now
	}
	legacy := &NoSpendGoal{
		ID:              NewGoalID(),
		Name:            legacyGoalName,
		GoalType:        GoalTypeNoSpend,
		CreatedAt:       createdAt,
		CategoryLabel:   legacyGoalCategoryLabel,
		CurrentStreak:   data.CurrentStreak,
		BestStreak:      data.BestStreak,
		LastCheckInDate: data.LastCheckInDate,
		Purchases:       append([]PurchaseEntry(nil), data.Purchases...),
	}
	migrated.Goals = GoalList{legacy}
	return migrated
}
