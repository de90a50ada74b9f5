package models

// Income represents a single income ledger entry. Dates are ISO calendar-date
// strings (YYYY-MM-DD) so month ranges compare lexicographically.
//
// The partial unique index backs recurring materialization: at most one
// recurring income per (user, source, date) can exist, which makes the
// recurring processor's conditional insert atomic.
type Income struct {
	Base
	UserID      string  `gorm:"type:uuid;not null;index;uniqueIndex:uq_income_recurring,where:is_recurring" json:"user_id"`
	Source      string  `gorm:"not null;uniqueIndex:uq_income_recurring,where:is_recurring" json:"source"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Date        string  `gorm:"not null;uniqueIndex:uq_income_recurring,where:is_recurring" json:"date"`
	Description string  `json:"description"`
	IsRecurring bool    `gorm:"default:false" json:"is_recurring"`
}
