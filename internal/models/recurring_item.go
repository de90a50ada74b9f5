package models

// RecurringItemType discriminates which ledger a template materializes into.
type RecurringItemType string

const (
	RecurringItemTypeIncome  RecurringItemType = "income"
	RecurringItemTypeExpense RecurringItemType = "expense"
)

// RecurringItem is a monthly template. It never appears in the ledgers
// itself; the processor materializes it into Income or Expense rows.
// Income templates use Source, expense templates use Category.
type RecurringItem struct {
	Base
	UserID        string            `gorm:"type:uuid;not null;index" json:"user_id"`
	ItemType      RecurringItemType `gorm:"not null" json:"item_type"`
	Category      *string           `json:"category"`
	Source        *string           `json:"source"`
	Amount        float64           `gorm:"not null" json:"amount"`
	Description   string            `json:"description"`
	PaymentMethod *string           `json:"payment_method"`
	CreditCardID  *string           `gorm:"type:uuid" json:"credit_card_id"`
	DayOfMonth    int               `gorm:"not null;default:1" json:"day_of_month"`
	IsActive      bool              `gorm:"default:true" json:"is_active"`
}
