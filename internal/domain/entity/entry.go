package entity

import "github.com/shopspring/decimal"

func init() {
	// Legacy records store amounts as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// PurchaseEntry is a single logged purchase. Entries are immutable once
// appended to a goal's (or the root record's) purchase list. Amount is
// positive; validation happens at the input boundary, not here.
type PurchaseEntry struct {
	Date     LocalDate       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category,omitempty"`
}

// SavingEntry is a single logged contribution toward a save-by-date goal.
type SavingEntry struct {
	Date   LocalDate       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}
