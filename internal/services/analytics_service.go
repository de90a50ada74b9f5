package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/months"
)

// MonthlySummary aggregates one month of ledger activity.
type MonthlySummary struct {
	TotalIncome       float64            `json:"total_income"`
	TotalExpenses     float64            `json:"total_expenses"`
	NetSavings        float64            `json:"net_savings"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	PaymentBreakdown  map[string]float64 `json:"payment_breakdown"`
	IncomeBreakdown   map[string]float64 `json:"income_breakdown"`
}

// TrendPoint is one month of a multi-month trend series.
type TrendPoint struct {
	Month     int     `json:"month"`
	Year      int     `json:"year"`
	MonthName string  `json:"month_name"`
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	Savings   float64 `json:"savings"`
}

// CategoryTrendReport is a per-month category spending matrix. Each data
// entry maps category names to summed amounts plus a "month_name" tag.
type CategoryTrendReport struct {
	Categories []string                 `json:"categories"`
	Data       []map[string]interface{} `json:"data"`
}

// analyticsService computes derived reports over the ledgers.
type analyticsService struct {
	db *gorm.DB

	// now is swappable in tests.
	now func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db, now: time.Now}
}

// MonthlySummary totals the month's income and expenses and groups expenses
// by category and payment method, and income by source.
func (s *analyticsService) MonthlySummary(userID string, month, year int) (*MonthlySummary, error) {
	if !months.IsValid(year, month) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month and year are required")
	}

	incomes, expenses, err := s.monthLedger(userID, month, year)
	if err != nil {
		return nil, err
	}

	summary := &MonthlySummary{
		CategoryBreakdown: map[string]float64{},
		PaymentBreakdown:  map[string]float64{},
		IncomeBreakdown:   map[string]float64{},
	}

	for _, inc := range incomes {
		summary.TotalIncome += inc.Amount
		summary.IncomeBreakdown[inc.Source] += inc.Amount
	}
	for _, exp := range expenses {
		summary.TotalExpenses += exp.Amount
		summary.CategoryBreakdown[exp.Category] += exp.Amount
		summary.PaymentBreakdown[exp.PaymentMethod] += exp.Amount
	}
	summary.NetSavings = summary.TotalIncome - summary.TotalExpenses

	return summary, nil
}

// Trends returns per-month totals for the last numMonths months, oldest
// first. Months are stepped by subtracting i*30 days from the current date,
// matching the published API output; near month boundaries this can skip or
// repeat a month relative to true calendar stepping.
func (s *analyticsService) Trends(userID string, numMonths int) ([]TrendPoint, error) {
	if numMonths < 1 {
		numMonths = 1
	}

	now := s.now().UTC()
	trends := make([]TrendPoint, 0, numMonths)

	for i := numMonths - 1; i >= 0; i-- {
		target := now.AddDate(0, 0, -i*30)
		month := int(target.Month())
		year := target.Year()

		incomes, expenses, err := s.monthLedger(userID, month, year)
		if err != nil {
			return nil, err
		}

		var totalIncome, totalExpenses float64
		for _, inc := range incomes {
			totalIncome += inc.Amount
		}
		for _, exp := range expenses {
			totalExpenses += exp.Amount
		}

		trends = append(trends, TrendPoint{
			Month:     month,
			Year:      year,
			MonthName: months.Abbr(month),
			Income:    totalIncome,
			Expenses:  totalExpenses,
			Savings:   totalIncome - totalExpenses,
		})
	}

	return trends, nil
}

// CategoryTrends returns per-month category spending for the last numMonths
// months using the same month stepping as Trends. Categories are the union of
// everything seen, in first-seen order.
func (s *analyticsService) CategoryTrends(userID string, numMonths int) (*CategoryTrendReport, error) {
	if numMonths < 1 {
		numMonths = 1
	}

	now := s.now().UTC()
	seen := map[string]bool{}
	categories := []string{}
	data := make([]map[string]interface{}, 0, numMonths)

	for i := numMonths - 1; i >= 0; i-- {
		target := now.AddDate(0, 0, -i*30)
		month := int(target.Month())
		year := target.Year()

		start, end := months.Range(year, month)
		var expenses []models.Expense
		if err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
			Limit(maxLedgerRows).Find(&expenses).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		totals := map[string]interface{}{"month_name": months.Abbr(month)}
		for _, exp := range expenses {
			if !seen[exp.Category] {
				seen[exp.Category] = true
				categories = append(categories, exp.Category)
			}
			if current, ok := totals[exp.Category].(float64); ok {
				totals[exp.Category] = current + exp.Amount
			} else {
				totals[exp.Category] = exp.Amount
			}
		}
		data = append(data, totals)
	}

	return &CategoryTrendReport{Categories: categories, Data: data}, nil
}

// monthLedger fetches one calendar month of income and expense rows.
func (s *analyticsService) monthLedger(userID string, month, year int) ([]models.Income, []models.Expense, error) {
	start, end := months.Range(year, month)

	var incomes []models.Income
	if err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Limit(maxLedgerRows).Find(&incomes).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Limit(maxLedgerRows).Find(&expenses).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return incomes, expenses, nil
}
