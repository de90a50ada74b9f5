package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/services"
)

// RecurringHandler handles recurring template requests
type RecurringHandler struct {
	recurringService services.RecurringServicer
}

// NewRecurringHandler creates a new RecurringHandler
func NewRecurringHandler(recurringService services.RecurringServicer) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// CreateRecurringItemRequest represents the request payload for creating a
// monthly template. Income templates use source, expense templates category.
type CreateRecurringItemRequest struct {
	ItemType      string   `json:"item_type" binding:"required,item_type"`
	Category      *string  `json:"category"`
	Source        *string  `json:"source"`
	Amount        *float64 `json:"amount" binding:"required"`
	Description   string   `json:"description"`
	PaymentMethod *string  `json:"payment_method"`
	CreditCardID  *string  `json:"credit_card_id"`
	DayOfMonth    int      `json:"day_of_month" binding:"omitempty,min=1,max=31"`
}

// CreateRecurringItem stores a new template for the authenticated user.
func (h *RecurringHandler) CreateRecurringItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRecurringItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.recurringService.CreateRecurringItem(userID, services.RecurringItemInput{
		ItemType:      models.RecurringItemType(req.ItemType),
		Category:      req.Category,
		Source:        req.Source,
		Amount:        *req.Amount,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		CreditCardID:  req.CreditCardID,
		DayOfMonth:    req.DayOfMonth,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListRecurringItems lists the user's templates.
func (h *RecurringHandler) ListRecurringItems(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.recurringService.ListRecurringItems(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// DeleteRecurringItem deletes one of the user's templates.
func (h *RecurringHandler) DeleteRecurringItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recurringService.DeleteRecurringItem(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recurring item deleted"})
}

// ProcessRecurringItems materializes the user's active templates into ledger
// rows for the given month. Safe to call repeatedly.
func (h *RecurringHandler) ProcessRecurringItems(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, year, err := parseMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	processed, err := h.recurringService.ProcessMonth(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Processed %d recurring items", processed),
		"processed": processed,
	})
}
