package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/services"
)

// IncomeHandler handles income ledger requests
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeRequest represents the request payload for recording income.
// Amount is a pointer so an explicit zero passes required validation.
type CreateIncomeRequest struct {
	Source      string   `json:"source" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	Date        string   `json:"date" binding:"required,calendar_date"`
	Description string   `json:"description"`
	IsRecurring bool     `json:"is_recurring"`
}

// CreateIncome records a new income entry for the authenticated user.
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.incomeService.CreateIncome(userID, services.IncomeInput{
		Source:      req.Source,
		Amount:      *req.Amount,
		Date:        req.Date,
		Description: req.Description,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, income)
}

// ListIncomes lists the user's income entries, optionally filtered by
// month and year.
func (h *IncomeHandler) ListIncomes(c *gin.Context) {
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

	incomes, err := h.incomeService.ListIncomes(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, incomes)
}

// DeleteIncome deletes one of the user's income entries.
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncome(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted"})
}
