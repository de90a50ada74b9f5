package services

import (
	"testing"

	"ledgerly/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)
		card := testutil.CreateTestCreditCard(t, db, user.ID)

		expense, err := svc.CreateExpense(user.ID, ExpenseInput{
			Category:      "groceries",
			Amount:        84.50,
			Date:          "2024-12-05",
			Description:   "weekly shop",
			PaymentMethod: "credit_card",
			CreditCardID:  &card.ID,
		})
		testutil.AssertNoError(t, err)

		if expense.ID == "" {
			t.Fatal("expected non-empty expense ID")
		}
		if expense.PaymentMethod != "credit_card" {
			t.Errorf("expected payment method credit_card, got %s", expense.PaymentMethod)
		}
		if expense.CreditCardID == nil || *expense.CreditCardID != card.ID {
			t.Error("expected credit_card_id to be stored")
		}
	})

	t.Run("payment_method_defaults_to_cash", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, ExpenseInput{
			Category: "transport",
			Amount:   2.75,
			Date:     "2024-12-05",
		})
		testutil.AssertNoError(t, err)

		if expense.PaymentMethod != "cash" {
			t.Errorf("expected default payment method cash, got %s", expense.PaymentMethod)
		}
	})
}

func TestListExpenses(t *testing.T) {
	t.Run("month_and_category_filters", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpense(t, db, user.ID, "groceries", 50, "2024-12-01")
		testutil.CreateTestExpense(t, db, user.ID, "groceries", 60, "2024-12-15")
		testutil.CreateTestExpense(t, db, user.ID, "transport", 20, "2024-12-10")
		testutil.CreateTestExpense(t, db, user.ID, "groceries", 40, "2024-11-20")

		expenses, err := svc.ListExpenses(user.ID, 12, 2024, "groceries")
		testutil.AssertNoError(t, err)

		if len(expenses) != 2 {
			t.Fatalf("expected 2 grocery expenses in December, got %d", len(expenses))
		}
		if expenses[0].Date != "2024-12-15" || expenses[1].Date != "2024-12-01" {
			t.Errorf("expected dates [2024-12-15, 2024-12-01], got [%s, %s]", expenses[0].Date, expenses[1].Date)
		}
	})

	t.Run("category_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpense(t, db, user.ID, "rent", 1200, "2024-11-01")
		testutil.CreateTestExpense(t, db, user.ID, "rent", 1200, "2024-12-01")
		testutil.CreateTestExpense(t, db, user.ID, "groceries", 60, "2024-12-01")

		expenses, err := svc.ListExpenses(user.ID, 0, 0, "rent")
		testutil.AssertNoError(t, err)
		if len(expenses) != 2 {
			t.Fatalf("expected 2 rent expenses across all months, got %d", len(expenses))
		}
	})

	t.Run("owner_scoping", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpense(t, db, user1.ID, "groceries", 50, "2024-12-01")
		testutil.CreateTestExpense(t, db, user2.ID, "groceries", 99, "2024-12-01")

		expenses, err := svc.ListExpenses(user1.ID, 12, 2024, "")
		testutil.AssertNoError(t, err)
		if len(expenses) != 1 {
			t.Fatalf("expected 1 expense for user1, got %d", len(expenses))
		}
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Run("deletes_own_record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense := testutil.CreateTestExpense(t, db, user.ID, "groceries", 50, "2024-12-01")

		testutil.AssertNoError(t, svc.DeleteExpense(user.ID, expense.ID))

		expenses, err := svc.ListExpenses(user.ID, 12, 2024, "")
		testutil.AssertNoError(t, err)
		if len(expenses) != 0 {
			t.Errorf("expected empty list after delete, got %d rows", len(expenses))
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteExpense(user.ID, "00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("cannot_delete_other_users_record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		owner := testutil.CreateTestUser(t, db)
		attacker := testutil.CreateTestUser(t, db)

		expense := testutil.CreateTestExpense(t, db, owner.ID, "groceries", 50, "2024-12-01")

		err := svc.DeleteExpense(attacker.ID, expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}
