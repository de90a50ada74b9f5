package services

import (
	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
)

// creditCardService handles stored credit cards.
type creditCardService struct {
	db *gorm.DB
}

// NewCreditCardService creates a new CreditCardServicer.
func NewCreditCardService(db *gorm.DB) CreditCardServicer {
	return &creditCardService{db: db}
}

// CreateCreditCard stores a new card for the user.
func (s *creditCardService) CreateCreditCard(userID, name, lastFourDigits, cardType string) (*models.CreditCard, error) {
	if cardType == "" {
		cardType = "Visa"
	}

	card := &models.CreditCard{
		UserID:         userID,
		Name:           name,
		LastFourDigits: lastFourDigits,
		CardType:       cardType,
	}

	if err := s.db.Create(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// ListCreditCards returns the user's cards in insertion order.
func (s *creditCardService) ListCreditCards(userID string) ([]models.CreditCard, error) {
	var cards []models.CreditCard
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Limit(maxListRows).Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cards, nil
}

// DeleteCreditCard removes a card if it belongs to the user.
func (s *creditCardService) DeleteCreditCard(userID, cardID string) error {
	result := s.db.Where("id = ? AND user_id = ?", cardID, userID).Delete(&models.CreditCard{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCreditCardNotFound
	}
	return nil
}
