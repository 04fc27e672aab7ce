package entity

// Milestone is the discrete growth tier a streak maps to. The boundary values
// (3, 7, 14, 30) are user-visible milestone moments and must not drift.
type Milestone string

const (
	MilestoneReadyToGrow   Milestone = "ready_to_grow"
	MilestoneGrowingStrong Milestone = "growing_strong"
	MilestoneSapling       Milestone = "sapling"
	MilestoneTakingRoot    Milestone = "taking_root"
	MilestoneFlourishing   Milestone = "flourishing"
	MilestoneMightyOak     Milestone = "mighty_oak"
)

// MilestoneForStreak classifies a streak into its growth tier.
func MilestoneForStreak(streak int) Milestone {
	switch {
	case streak >= 30:
		return MilestoneMightyOak
	case streak >= 14:
		return MilestoneFlourishing
	case streak >= 7:
		return MilestoneTakingRoot
	case streak >= 3:
		return MilestoneSapling
	case streak == 0:
		return MilestoneReadyToGrow
	default:
		return MilestoneGrowingStrong
	}
}

var milestoneMessages = map[Milestone]string{
	MilestoneReadyToGrow:   "Ready to grow",
	MilestoneGrowingStrong: "Growing strong!",
	MilestoneSapling:       "Sapling!",
	MilestoneTakingRoot:    "Taking root!",
	MilestoneFlourishing:   "Flourishing!",
	MilestoneMightyOak:     "Mighty oak!",
}

// Message returns the display text shown next to the streak graphic.
func (m Milestone) Message() string {
	return milestoneMessages[m]
}
