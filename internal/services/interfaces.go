package services

import (
	"ledgerly/internal/models"
)

// List caps mirror the API contract: ledger queries return at most 1000 rows,
// card and template listings at most 100.
const (
	maxLedgerRows = 1000
	maxListRows   = 100
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// IncomeInput holds the fields for creating an income entry.
type IncomeInput struct {
	Source      string
	Amount      float64
	Date        string
	Description string
	IsRecurring bool
}

// IncomeServicer defines the contract for income ledger logic.
type IncomeServicer interface {
	CreateIncome(userID string, in IncomeInput) (*models.Income, error)
	ListIncomes(userID string, month, year int) ([]models.Income, error)
	DeleteIncome(userID, incomeID string) error
}

// ExpenseInput holds the fields for creating an expense entry.
type ExpenseInput struct {
	Category      string
	Amount        float64
	Date          string
	Description   string
	PaymentMethod string
	CreditCardID  *string
	IsRecurring   bool
}

// ExpenseServicer defines the contract for expense ledger logic.
type ExpenseServicer interface {
	CreateExpense(userID string, in ExpenseInput) (*models.Expense, error)
	ListExpenses(userID string, month, year int, category string) ([]models.Expense, error)
	DeleteExpense(userID, expenseID string) error
}

// CreditCardServicer defines the contract for credit card logic.
type CreditCardServicer interface {
	CreateCreditCard(userID, name, lastFourDigits, cardType string) (*models.CreditCard, error)
	ListCreditCards(userID string) ([]models.CreditCard, error)
	DeleteCreditCard(userID, cardID string) error
}

// RecurringItemInput holds the fields for creating a recurring template.
type RecurringItemInput struct {
	ItemType      models.RecurringItemType
	Category      *string
	Source        *string
	Amount        float64
	Description   string
	PaymentMethod *string
	CreditCardID  *string
	DayOfMonth    int
}

// RecurringServicer defines the contract for recurring templates and their
// monthly materialization.
type RecurringServicer interface {
	CreateRecurringItem(userID string, in RecurringItemInput) (*models.RecurringItem, error)
	ListRecurringItems(userID string) ([]models.RecurringItem, error)
	DeleteRecurringItem(userID, itemID string) error
	ProcessMonth(userID string, month, year int) (int, error)
}

// BudgetServicer defines the contract for budget plans and alerts.
type BudgetServicer interface {
	UpsertBudget(userID string, month, year int, totalBudget float64, categoryBudgets models.CategoryBudgets) (*models.Budget, error)
	GetBudget(userID string, month, year int) (*models.Budget, error)
	BudgetAlerts(userID string, month, year int) (*AlertReport, error)
}

// AnalyticsServicer defines the contract for derived reporting.
type AnalyticsServicer interface {
	MonthlySummary(userID string, month, year int) (*MonthlySummary, error)
	Trends(userID string, numMonths int) ([]TrendPoint, error)
	CategoryTrends(userID string, numMonths int) (*CategoryTrendReport, error)
}
