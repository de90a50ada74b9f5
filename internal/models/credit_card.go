package models

// CreditCard represents a stored card used to tag expenses. Only display
// metadata is kept; there is no balance tracking.
type CreditCard struct {
	Base
	UserID         string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string `gorm:"not null" json:"name"`
	LastFourDigits string `gorm:"size:4" json:"last_four_digits"`
	CardType       string `gorm:"default:Visa" json:"card_type"`
}
