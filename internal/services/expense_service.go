package services

import (
	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/months"
)

// expenseService handles the expense ledger.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a new expense entry for the user. CreditCardID is a
// weak reference and is stored as given.
func (s *expenseService) CreateExpense(userID string, in ExpenseInput) (*models.Expense, error) {
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	expense := &models.Expense{
		UserID:        userID,
		Category:      in.Category,
		Amount:        in.Amount,
		Date:          in.Date,
		Description:   in.Description,
		PaymentMethod: paymentMethod,
		CreditCardID:  in.CreditCardID,
		IsRecurring:   in.IsRecurring,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// ListExpenses returns the user's expenses, newest date first, optionally
// restricted to a calendar month and/or a category.
func (s *expenseService) ListExpenses(userID string, month, year int, category string) ([]models.Expense, error) {
	query := s.db.Where("user_id = ?", userID)

	if months.IsValid(year, month) {
		start, end := months.Range(year, month)
		query = query.Where("date >= ? AND date <= ?", start, end)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var expenses []models.Expense
	if err := query.Order("date DESC").Limit(maxLedgerRows).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// DeleteExpense removes an expense entry if it belongs to the user.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	result := s.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}
