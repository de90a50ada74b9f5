package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/logger"
	"ledgerly/internal/models"
	"ledgerly/internal/months"
)

// recurringService handles recurring templates and their monthly
// materialization into the ledgers.
type recurringService struct {
	db *gorm.DB
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB) RecurringServicer {
	return &recurringService{db: db}
}

// CreateRecurringItem stores a new monthly template for the user.
func (s *recurringService) CreateRecurringItem(userID string, in RecurringItemInput) (*models.RecurringItem, error) {
	dayOfMonth := in.DayOfMonth
	if dayOfMonth == 0 {
		dayOfMonth = 1
	}

	item := &models.RecurringItem{
		UserID:        userID,
		ItemType:      in.ItemType,
		Category:      in.Category,
		Source:        in.Source,
		Amount:        in.Amount,
		Description:   in.Description,
		PaymentMethod: in.PaymentMethod,
		CreditCardID:  in.CreditCardID,
		DayOfMonth:    dayOfMonth,
		IsActive:      true,
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// ListRecurringItems returns the user's templates in insertion order.
func (s *recurringService) ListRecurringItems(userID string) ([]models.RecurringItem, error) {
	var items []models.RecurringItem
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Limit(maxListRows).Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// DeleteRecurringItem removes a template if it belongs to the user.
func (s *recurringService) DeleteRecurringItem(userID, itemID string) error {
	result := s.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.RecurringItem{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrRecurringItemNotFound
	}
	return nil
}

// ProcessMonth materializes the user's active templates into ledger rows for
// the given month and returns how many rows were actually created.
//
// Each template lands on min(day_of_month, last day of the month). The insert
// runs with ON CONFLICT DO NOTHING against the partial unique index on
// (user_id, source-or-category, date) for recurring rows, so repeated or
// concurrent runs for the same month never create duplicates; only inserts
// that actually landed count as processed.
func (s *recurringService) ProcessMonth(userID string, month, year int) (int, error) {
	if !months.IsValid(year, month) {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "month and year are required")
	}

	var items []models.RecurringItem
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).
		Limit(maxListRows).Find(&items).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	lastDay := months.LastDay(year, month)
	processed := 0

	for _, item := range items {
		day := item.DayOfMonth
		if day > lastDay {
			day = lastDay
		}
		date := months.Date(year, month, day)

		var result *gorm.DB
		switch item.ItemType {
		case models.RecurringItemTypeIncome:
			income := &models.Income{
				UserID:      userID,
				Source:      strValue(item.Source),
				Amount:      item.Amount,
				Date:        date,
				Description: item.Description,
				IsRecurring: true,
			}
			result = s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(income)
		case models.RecurringItemTypeExpense:
			expense := &models.Expense{
				UserID:        userID,
				Category:      strValue(item.Category),
				Amount:        item.Amount,
				Date:          date,
				Description:   item.Description,
				PaymentMethod: strValueOr(item.PaymentMethod, "cash"),
				CreditCardID:  item.CreditCardID,
				IsRecurring:   true,
			}
			result = s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(expense)
		default:
			logger.Get().Warnw("skipping recurring item with unknown type",
				"item_id", item.ID, "item_type", item.ItemType)
			continue
		}

		if result.Error != nil {
			return processed, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected > 0 {
			processed++
		}
	}

	logger.Get().Infow("processed recurring items",
		"user_id", userID,
		"month", month,
		"year", year,
		"templates", len(items),
		"created", processed,
	)
	return processed, nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strValueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
