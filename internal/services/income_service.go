package services

import (
	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/months"
)

// incomeService handles the income ledger.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome records a new income entry for the user.
func (s *incomeService) CreateIncome(userID string, in IncomeInput) (*models.Income, error) {
	income := &models.Income{
		UserID:      userID,
		Source:      in.Source,
		Amount:      in.Amount,
		Date:        in.Date,
		Description: in.Description,
		IsRecurring: in.IsRecurring,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// ListIncomes returns the user's income entries, newest date first. When both
// month and year are given the result is restricted to that calendar month.
func (s *incomeService) ListIncomes(userID string, month, year int) ([]models.Income, error) {
	query := s.db.Where("user_id = ?", userID)

	if months.IsValid(year, month) {
		start, end := months.Range(year, month)
		query = query.Where("date >= ? AND date <= ?", start, end)
	}

	var incomes []models.Income
	if err := query.Order("date DESC").Limit(maxLedgerRows).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return incomes, nil
}

// DeleteIncome removes an income entry if it belongs to the user.
func (s *incomeService) DeleteIncome(userID, incomeID string) error {
	result := s.db.Where("id = ? AND user_id = ?", incomeID, userID).Delete(&models.Income{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrIncomeNotFound
	}
	return nil
}
