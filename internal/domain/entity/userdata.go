package entity

import (
	"encoding/json"
	"time"
)

// Appearance selects the theme the front end renders with.
type Appearance string

const (
	AppearanceSystem Appearance = "system"
	AppearanceLight  Appearance = "light"
	AppearanceDark   Appearance = "dark"
)

// IsValidAppearance validates the appearance value.
func IsValidAppearance(a Appearance) bool {
	return a == AppearanceSystem || a == AppearanceLight || a == AppearanceDark
}

// CheckInTimes holds the user's preferred daily check-in reminder slots.
type CheckInTimes struct {
	Morning    bool   `json:"morning"`
	Evening    bool   `json:"evening"`
	CustomTime string `json:"customTime,omitempty"` // HH:MM, empty when unset
}

// UserData is the root aggregate: the single owned record per device. The
// legacy root-level streak fields predate the goals list; after migration they
// are retained for backward compatibility but goals are the source of truth.
// Transitions return copies rather than mutating in place.
type UserData struct {
	OnboardingComplete bool            `json:"onboardingComplete"`
	UserName           string          `json:"userName"`
	CheckInTimes       CheckInTimes    `json:"checkInTimes"`
	CurrentStreak      int             `json:"currentStreak"`
	BestStreak         int             `json:"bestStreak"`
	MonthlyNoSpendDays int             `json:"monthlyNoSpendDays"`
	LastCheckInDate    LocalDate       `json:"lastCheckInDate"`
	Purchases          []PurchaseEntry `json:"purchases"`
	StartDate          time.Time       `json:"startDate"`
	Goals              GoalList        `json:"goals"`
	Appearance         Appearance      `json:"appearance,omitempty"`

	// goalsPresent records whether the decoded record carried a goals array.
	// There is no schema version field; the migration infers the schema
	// structurally from this flag.
	goalsPresent bool
}

// NewUserData returns the first-launch defaults.
func NewUserData(now time.Time) *UserData {
	return &UserData{
		UserName: "Friend",
		CheckInTimes: CheckInTimes{
			Evening: true,
		},
		Purchases:    []PurchaseEntry{},
		StartDate:    now,
		Goals:        GoalList{},
		Appearance:   AppearanceSystem,
		goalsPresent: true,
	}
}

// HasGoalsField reports whether the record carries a goals array, i.e. whether
// it is already in the multi-goal shape.
func (u *UserData) HasGoalsField() bool {
	return u.goalsPresent
}

// Clone returns a deep copy of the record.
func (u *UserData) Clone() *UserData {
	c := *u
	c.Purchases = append([]PurchaseEntry(nil), u.Purchases...)
	c.Goals = u.Goals.Clone()
	return &c
}

// ReplaceGoal returns a copy of the record with the goal of the given ID
// swapped for the result of updater. Goals with other IDs are untouched.
// When no goal matches, the copy is semantically identical to the input.
func (u *UserData) ReplaceGoal(goalID string, updater func(Goal) Goal) *UserData {
	c := u.Clone()
	for i, g := range c.Goals {
		if g.GoalID() == goalID {
			c.Goals[i] = updater(g)
		}
	}
	return c
}

// AppendGoal returns a copy of the record with the goal appended.
func (u *UserData) AppendGoal(g Goal) *UserData {
	c := u.Clone()
	c.Goals = append(c.Goals, g)
	return c
}

// RemoveGoal returns a copy of the record without the goal of the given ID.
// Unknown IDs leave the copy unchanged.
func (u *UserData) RemoveGoal(goalID string) *UserData {
	c := u.Clone()
	goals := make(GoalList, 0, len(c.Goals))
	for _, g := range c.Goals {
		if g.GoalID() != goalID {
			goals = append(goals, g)
		}
	}
	c.Goals = goals
	return c
}

// UnmarshalJSON decodes the record and notes whether the goals key was
// present as an array, which is what the migration dispatches on.
func (u *UserData) UnmarshalJSON(data []byte) error {
	type alias UserData
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*u = UserData(a)

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	raw, ok := probe["goals"]
	u.goalsPresent = ok && len(raw) > 0 && raw[0] == '['
	return nil
}
