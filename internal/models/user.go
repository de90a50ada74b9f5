package models

// User represents a registered account holder. The password hash is never
// serialized in API responses.
type User struct {
	Base
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `json:"name"`
	Password string `gorm:"not null" json:"-"`

	Incomes        []Income        `gorm:"foreignKey:UserID" json:"-"`
	Expenses       []Expense       `gorm:"foreignKey:UserID" json:"-"`
	Budgets        []Budget        `gorm:"foreignKey:UserID" json:"-"`
	CreditCards    []CreditCard    `gorm:"foreignKey:UserID" json:"-"`
	RecurringItems []RecurringItem `gorm:"foreignKey:UserID" json:"-"`
}
