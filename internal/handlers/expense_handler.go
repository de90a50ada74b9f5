package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/services"
)

// ExpenseHandler handles expense ledger requests
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
// Amount is a pointer so an explicit zero passes required validation.
type CreateExpenseRequest struct {
	Category      string   `json:"category" binding:"required"`
	Amount        *float64 `json:"amount" binding:"required"`
	Date          string   `json:"date" binding:"required,calendar_date"`
	Description   string   `json:"description"`
	PaymentMethod string   `json:"payment_method"`
	CreditCardID  *string  `json:"credit_card_id"`
	IsRecurring   bool     `json:"is_recurring"`
}

// CreateExpense records a new expense entry for the authenticated user.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(userID, services.ExpenseInput{
		Category:      req.Category,
		Amount:        *req.Amount,
		Date:          req.Date,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		CreditCardID:  req.CreditCardID,
		IsRecurring:   req.IsRecurring,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// ListExpenses lists the user's expenses, optionally filtered by month/year
// and category.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, year, err := parseOptionalMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(userID, month, year, c.Query("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// DeleteExpense deletes one of the user's expense entries.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
