package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/services"
)

// CreditCardHandler handles stored credit card requests
type CreditCardHandler struct {
	creditCardService services.CreditCardServicer
}

// NewCreditCardHandler creates a new CreditCardHandler
func NewCreditCardHandler(creditCardService services.CreditCardServicer) *CreditCardHandler {
	return &CreditCardHandler{creditCardService: creditCardService}
}

// CreateCreditCardRequest represents the request payload for storing a card
type CreateCreditCardRequest struct {
	Name           string `json:"name" binding:"required"`
	LastFourDigits string `json:"last_four_digits" binding:"required,len=4,numeric"`
	CardType       string `json:"card_type"`
}

// CreateCreditCard stores a new card for the authenticated user.
func (h *CreditCardHandler) CreateCreditCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.creditCardService.CreateCreditCard(userID, req.Name, req.LastFourDigits, req.CardType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// ListCreditCards lists the user's stored cards.
func (h *CreditCardHandler) ListCreditCards(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cards, err := h.creditCardService.ListCreditCards(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// DeleteCreditCard deletes one of the user's stored cards.
func (h *CreditCardHandler) DeleteCreditCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.creditCardService.DeleteCreditCard(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credit card deleted"})
}
