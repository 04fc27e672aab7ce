package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grove/backend/internal/domain/entity"
)

// CheckInTimesDTO mirrors the stored reminder-slot preferences.
type CheckInTimesDTO struct {
	Morning    bool   `json:"morning"`
	Evening    bool   `json:"evening"`
	CustomTime string `json:"custom_time,omitempty"`
}

// PurchaseEntryResponse represents one logged purchase.
type PurchaseEntryResponse struct {
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category,omitempty"`
}

// SavingEntryResponse represents one logged savings contribution.
type SavingEntryResponse struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// UserDataResponse represents the full client state.
type UserDataResponse struct {
	OnboardingComplete bool                    `json:"onboarding_complete"`
	UserName           string                  `json:"user_name"`
	CheckInTimes       CheckInTimesDTO         `json:"check_in_times"`
	CurrentStreak      int                     `json:"current_streak"`
	BestStreak         int                     `json:"best_streak"`
	MonthlyNoSpendDays int                     `json:"monthly_no_spend_days"`
	LastCheckInDate    *string                 `json:"last_check_in_date"`
	Purchases          []PurchaseEntryResponse `json:"purchases"`
	StartDate          time.Time               `json:"start_date"`
	Goals              []GoalResponse          `json:"goals"`
	Appearance         string                  `json:"appearance,omitempty"`
}

// ToUserDataResponse converts a domain UserData record to its API shape.
func ToUserDataResponse(u *entity.UserData) UserDataResponse {
	return UserDataResponse{
		OnboardingComplete: u.OnboardingComplete,
		UserName:           u.UserName,
		CheckInTimes: CheckInTimesDTO{
			Morning:    u.CheckInTimes.Morning,
			Evening:    u.CheckInTimes.Evening,
			CustomTime: u.CheckInTimes.CustomTime,
		},
		CurrentStreak:      u.CurrentStreak,
		BestStreak:         u.BestStreak,
		MonthlyNoSpendDays: u.MonthlyNoSpendDays,
		LastCheckInDate:    toDatePtr(u.LastCheckInDate),
		Purchases:          toPurchaseResponses(u.Purchases),
		StartDate:          u.StartDate,
		Goals:              ToGoalResponses(u.Goals),
		Appearance:         string(u.Appearance),
	}
}

// UpdateProfileRequest represents the request body for a settings update.
type UpdateProfileRequest struct {
	UserName   *string `json:"user_name,omitempty"`
	Appearance *string `json:"appearance,omitempty" binding:"omitempty,oneof=system light dark"`
}

// SetCheckInTimesRequest represents the request body for reminder slots.
type SetCheckInTimesRequest struct {
	Morning    bool   `json:"morning"`
	Evening    bool   `json:"evening"`
	CustomTime string `json:"custom_time,omitempty"`
}

func toDatePtr(d entity.LocalDate) *string {
	if d.IsZero() {
		return nil
	}
	s := string(d)
	return &s
}

func toPurchaseResponses(entries []entity.PurchaseEntry) []PurchaseEntryResponse {
	out := make([]PurchaseEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = PurchaseEntryResponse{
			Date:     string(e.Date),
			Amount:   e.Amount,
			Category: e.Category,
		}
	}
	return out
}

func toSavingResponses(entries []entity.SavingEntry) []SavingEntryResponse {
	out := make([]SavingEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = SavingEntryResponse{
			Date:   string(e.Date),
			Amount: e.Amount,
		}
	}
	return out
}
