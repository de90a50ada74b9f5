package models

// Expense represents a single expense ledger entry. CreditCardID is a weak
// reference: it is not validated against the credit_cards table.
//
// The partial unique index mirrors the one on Income and keeps recurring
// materialization idempotent under concurrent processing.
type Expense struct {
	Base
	UserID        string  `gorm:"type:uuid;not null;index;uniqueIndex:uq_expense_recurring,where:is_recurring" json:"user_id"`
	Category      string  `gorm:"not null;uniqueIndex:uq_expense_recurring,where:is_recurring" json:"category"`
	Amount        float64 `gorm:"not null" json:"amount"`
	Date          string  `gorm:"not null;uniqueIndex:uq_expense_recurring,where:is_recurring" json:"date"`
	Description   string  `json:"description"`
	PaymentMethod string  `gorm:"default:cash" json:"payment_method"`
	CreditCardID  *string `gorm:"type:uuid" json:"credit_card_id"`
	IsRecurring   bool    `gorm:"default:false" json:"is_recurring"`
}
