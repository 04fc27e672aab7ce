package dto

// Check-in results a client can report for a day.
const (
	CheckInResultNoSpend          = "no_spend"
	CheckInResultAcknowledgeSpend = "acknowledge_spend"
)

// CheckInRequest represents the request body for a daily check-in.
// "no_spend" grows the streak; "acknowledge_spend" only stamps the day,
// deferring the purchase log to an explicit purchases call.
type CheckInRequest struct {
	Result string `json:"result" binding:"required,oneof=no_spend acknowledge_spend"`
}

// LogPurchaseRequest represents the request body for logging a purchase.
type LogPurchaseRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category,omitempty"`
}

// LogSavingsRequest represents the request body for logging a savings
// contribution.
type LogSavingsRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
