package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"ledgerly/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestIncome creates an income entry on the given date.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID, source string, amount float64, date string) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID: userID,
		Source: source,
		Amount: amount,
		Date:   date,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestExpense creates a cash expense entry on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, category string, amount float64, date string) *models.Expense {
	t.Helper()
	return CreateTestExpenseWithPayment(t, db, userID, category, amount, date, "cash")
}

// CreateTestExpenseWithPayment creates an expense entry with the given payment method.
func CreateTestExpenseWithPayment(t *testing.T, db *gorm.DB, userID, category string, amount float64, date, paymentMethod string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:        userID,
		Category:      category,
		Amount:        amount,
		Date:          date,
		PaymentMethod: paymentMethod,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestCreditCard creates a stored card.
func CreateTestCreditCard(t *testing.T, db *gorm.DB, userID string) *models.CreditCard {
	t.Helper()

	card := &models.CreditCard{
		UserID:         userID,
		Name:           fmt.Sprintf("Test Card %d", nextID()),
		LastFourDigits: "4242",
		CardType:       "Visa",
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test credit card: %v", err)
	}
	return card
}

// CreateTestRecurringExpense creates an active monthly expense template.
func CreateTestRecurringExpense(t *testing.T, db *gorm.DB, userID, category string, amount float64, dayOfMonth int) *models.RecurringItem {
	t.Helper()

	item := &models.RecurringItem{
		UserID:     userID,
		ItemType:   models.RecurringItemTypeExpense,
		Category:   &category,
		Amount:     amount,
		DayOfMonth: dayOfMonth,
		IsActive:   true,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test recurring expense: %v", err)
	}
	return item
}

// CreateTestRecurringIncome creates an active monthly income template.
func CreateTestRecurringIncome(t *testing.T, db *gorm.DB, userID, source string, amount float64, dayOfMonth int) *models.RecurringItem {
	t.Helper()

	item := &models.RecurringItem{
		UserID:     userID,
		ItemType:   models.RecurringItemTypeIncome,
		Source:     &source,
		Amount:     amount,
		DayOfMonth: dayOfMonth,
		IsActive:   true,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test recurring income: %v", err)
	}
	return item
}

// CreateTestBudget creates a budget for the given month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string, month, year int, totalBudget float64, categoryBudgets models.CategoryBudgets) *models.Budget {
	t.Helper()

	if categoryBudgets == nil {
		categoryBudgets = models.CategoryBudgets{}
	}
	budget := &models.Budget{
		UserID:          userID,
		Month:           month,
		Year:            year,
		TotalBudget:     totalBudget,
		CategoryBudgets: categoryBudgets,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
