package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CategoryBudgets maps an expense category to its spending limit. It is
// stored as a JSON text column.
type CategoryBudgets map[string]float64

// Value implements driver.Valuer.
func (cb CategoryBudgets) Value() (driver.Value, error) {
	if cb == nil {
		return "{}", nil
	}
	data, err := json.Marshal(cb)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (cb *CategoryBudgets) Scan(value interface{}) error {
	if value == nil {
		*cb = CategoryBudgets{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, cb)
	case string:
		return json.Unmarshal([]byte(v), cb)
	default:
		return fmt.Errorf("unsupported type for CategoryBudgets: %T", value)
	}
}

// Budget represents a monthly spending plan, unique per (user, month, year).
// Upserts overwrite the totals in place while keeping id and created_at.
type Budget struct {
	Base
	UserID          string          `gorm:"type:uuid;not null;uniqueIndex:uq_budget_month" json:"user_id"`
	Month           int             `gorm:"not null;uniqueIndex:uq_budget_month" json:"month"`
	Year            int             `gorm:"not null;uniqueIndex:uq_budget_month" json:"year"`
	TotalBudget     float64         `gorm:"not null" json:"total_budget"`
	CategoryBudgets CategoryBudgets `gorm:"type:text" json:"category_budgets"`
}
