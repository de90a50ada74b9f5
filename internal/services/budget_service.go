package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/months"
)

// Alert is a single budget warning surfaced to the user.
type Alert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Alert severity tiers.
const (
	AlertTypeWarning = "warning"
	AlertTypeDanger  = "danger"
)

// AlertReport summarizes budget utilization for a month.
type AlertReport struct {
	Alerts     []Alert `json:"alerts"`
	TotalSpent float64 `json:"total_spent"`
	Budget     float64 `json:"budget"`
	Percentage float64 `json:"percentage"`
}

// budgetService handles monthly budget plans and utilization alerts.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// UpsertBudget creates a budget for (user, month, year) or overwrites the
// totals of an existing one, preserving its id and created_at.
func (s *budgetService) UpsertBudget(userID string, month, year int, totalBudget float64, categoryBudgets models.CategoryBudgets) (*models.Budget, error) {
	if !months.IsValid(year, month) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month and year are required")
	}
	if categoryBudgets == nil {
		categoryBudgets = models.CategoryBudgets{}
	}

	var existing models.Budget
	err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).First(&existing).Error
	if err == nil {
		updates := map[string]interface{}{
			"total_budget":     totalBudget,
			"category_budgets": categoryBudgets,
		}
		if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		existing.TotalBudget = totalBudget
		existing.CategoryBudgets = categoryBudgets
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	budget := &models.Budget{
		UserID:          userID,
		Month:           month,
		Year:            year,
		TotalBudget:     totalBudget,
		CategoryBudgets: categoryBudgets,
	}
	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// GetBudget returns the budget for (user, month, year), or nil when none exists.
func (s *budgetService) GetBudget(userID string, month, year int) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// BudgetAlerts computes the utilization report for a month. Without a budget
// the report is empty with zeroed totals. The overall alert (if any) comes
// first, then category alerts in the order categories first appear in the
// month's expenses.
func (s *budgetService) BudgetAlerts(userID string, month, year int) (*AlertReport, error) {
	budget, err := s.GetBudget(userID, month, year)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return &AlertReport{Alerts: []Alert{}}, nil
	}

	start, end := months.Range(year, month)
	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Limit(maxLedgerRows).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var totalSpent float64
	categorySpending := map[string]float64{}
	var categoryOrder []string
	for _, exp := range expenses {
		totalSpent += exp.Amount
		if _, seen := categorySpending[exp.Category]; !seen {
			categoryOrder = append(categoryOrder, exp.Category)
		}
		categorySpending[exp.Category] += exp.Amount
	}

	percentage := 0.0
	if budget.TotalBudget > 0 {
		percentage = totalSpent / budget.TotalBudget * 100
	}

	alerts := []Alert{}
	if percentage >= 100 {
		alerts = append(alerts, Alert{
			Type:    AlertTypeDanger,
			Message: fmt.Sprintf("You've exceeded your budget! Spent $%.2f of $%.2f", totalSpent, budget.TotalBudget),
		})
	} else if percentage >= 80 {
		alerts = append(alerts, Alert{
			Type:    AlertTypeWarning,
			Message: fmt.Sprintf("You've used %.1f%% of your budget. $%.2f remaining.", percentage, budget.TotalBudget-totalSpent),
		})
	}

	for _, cat := range categoryOrder {
		limit, ok := budget.CategoryBudgets[cat]
		if !ok {
			continue
		}
		spent := categorySpending[cat]
		catPercentage := 0.0
		if limit > 0 {
			catPercentage = spent / limit * 100
		}
		if catPercentage >= 100 {
			alerts = append(alerts, Alert{
				Type:    AlertTypeDanger,
				Message: fmt.Sprintf("%s: Budget exceeded! Spent $%.2f of $%.2f", cat, spent, limit),
			})
		} else if catPercentage >= 80 {
			alerts = append(alerts, Alert{
				Type:    AlertTypeWarning,
				Message: fmt.Sprintf("%s: %.1f%% used. $%.2f remaining.", cat, catPercentage, limit-spent),
			})
		}
	}

	return &AlertReport{
		Alerts:     alerts,
		TotalSpent: totalSpent,
		Budget:     budget.TotalBudget,
		Percentage: percentage,
	}, nil
}
