package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/middleware"
	"ledgerly/internal/models"
	"ledgerly/internal/services"
	"ledgerly/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

const testUserID = "11111111-1111-1111-1111-111111111111"

// injectUserID simulates the auth middleware for handler tests.
func injectUserID(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Errorf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
	var resp ErrorResponse
	parseJSON(t, w, &resp)
	if resp.Error.Code != code {
		t.Errorf("expected error code %s, got %s (message: %s)", code, resp.Error.Code, resp.Error.Message)
	}
}

// Function-field mocks. Unset fields panic, which surfaces unexpected calls
// as test failures.

type mockUserService struct {
	createUserFn     func(email, password, name string) (*models.User, error)
	getUserByEmailFn func(email string) (*models.User, error)
	getUserByIDFn    func(id string) (*models.User, error)
	verifyPasswordFn func(user *models.User, password string) bool
}

func (m *mockUserService) CreateUser(email, password, name string) (*models.User, error) {
	return m.createUserFn(email, password, name)
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	return m.getUserByEmailFn(email)
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	return m.getUserByIDFn(id)
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	return m.verifyPasswordFn(user, password)
}

type mockIncomeService struct {
	createIncomeFn func(userID string, in services.IncomeInput) (*models.Income, error)
	listIncomesFn  func(userID string, month, year int) ([]models.Income, error)
	deleteIncomeFn func(userID, incomeID string) error
}

func (m *mockIncomeService) CreateIncome(userID string, in services.IncomeInput) (*models.Income, error) {
	return m.createIncomeFn(userID, in)
}

func (m *mockIncomeService) ListIncomes(userID string, month, year int) ([]models.Income, error) {
	return m.listIncomesFn(userID, month, year)
}

func (m *mockIncomeService) DeleteIncome(userID, incomeID string) error {
	return m.deleteIncomeFn(userID, incomeID)
}

type mockExpenseService struct {
	createExpenseFn func(userID string, in services.ExpenseInput) (*models.Expense, error)
	listExpensesFn  func(userID string, month, year int, category string) ([]models.Expense, error)
	deleteExpenseFn func(userID, expenseID string) error
}

func (m *mockExpenseService) CreateExpense(userID string, in services.ExpenseInput) (*models.Expense, error) {
	return m.createExpenseFn(userID, in)
}

func (m *mockExpenseService) ListExpenses(userID string, month, year int, category string) ([]models.Expense, error) {
	return m.listExpensesFn(userID, month, year, category)
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID string) error {
	return m.deleteExpenseFn(userID, expenseID)
}

type mockCreditCardService struct {
	createCreditCardFn func(userID, name, lastFourDigits, cardType string) (*models.CreditCard, error)
	listCreditCardsFn  func(userID string) ([]models.CreditCard, error)
	deleteCreditCardFn func(userID, cardID string) error
}

func (m *mockCreditCardService) CreateCreditCard(userID, name, lastFourDigits, cardType string) (*models.CreditCard, error) {
	return m.createCreditCardFn(userID, name, lastFourDigits, cardType)
}

func (m *mockCreditCardService) ListCreditCards(userID string) ([]models.CreditCard, error) {
	return m.listCreditCardsFn(userID)
}

func (m *mockCreditCardService) DeleteCreditCard(userID, cardID string) error {
	return m.deleteCreditCardFn(userID, cardID)
}

type mockRecurringService struct {
	createRecurringItemFn func(userID string, in services.RecurringItemInput) (*models.RecurringItem, error)
	listRecurringItemsFn  func(userID string) ([]models.RecurringItem, error)
	deleteRecurringItemFn func(userID, itemID string) error
	processMonthFn        func(userID string, month, year int) (int, error)
}

func (m *mockRecurringService) CreateRecurringItem(userID string, in services.RecurringItemInput) (*models.RecurringItem, error) {
	return m.createRecurringItemFn(userID, in)
}

func (m *mockRecurringService) ListRecurringItems(userID string) ([]models.RecurringItem, error) {
	return m.listRecurringItemsFn(userID)
}

func (m *mockRecurringService) DeleteRecurringItem(userID, itemID string) error {
	return m.deleteRecurringItemFn(userID, itemID)
}

func (m *mockRecurringService) ProcessMonth(userID string, month, year int) (int, error) {
	return m.processMonthFn(userID, month, year)
}

type mockBudgetService struct {
	upsertBudgetFn func(userID string, month, year int, totalBudget float64, categoryBudgets models.CategoryBudgets) (*models.Budget, error)
	getBudgetFn    func(userID string, month, year int) (*models.Budget, error)
	budgetAlertsFn func(userID string, month, year int) (*services.AlertReport, error)
}

func (m *mockBudgetService) UpsertBudget(userID string, month, year int, totalBudget float64, categoryBudgets models.CategoryBudgets) (*models.Budget, error) {
	return m.upsertBudgetFn(userID, month, year, totalBudget, categoryBudgets)
}

func (m *mockBudgetService) GetBudget(userID string, month, year int) (*models.Budget, error) {
	return m.getBudgetFn(userID, month, year)
}

func (m *mockBudgetService) BudgetAlerts(userID string, month, year int) (*services.AlertReport, error) {
	return m.budgetAlertsFn(userID, month, year)
}

type mockAnalyticsService struct {
	monthlySummaryFn func(userID string, month, year int) (*services.MonthlySummary, error)
	trendsFn         func(userID string, numMonths int) ([]services.TrendPoint, error)
	categoryTrendsFn func(userID string, numMonths int) (*services.CategoryTrendReport, error)
}

func (m *mockAnalyticsService) MonthlySummary(userID string, month, year int) (*services.MonthlySummary, error) {
	return m.monthlySummaryFn(userID, month, year)
}

func (m *mockAnalyticsService) Trends(userID string, numMonths int) ([]services.TrendPoint, error) {
	return m.trendsFn(userID, numMonths)
}

func (m *mockAnalyticsService) CategoryTrends(userID string, numMonths int) (*services.CategoryTrendReport, error) {
	return m.categoryTrendsFn(userID, numMonths)
}
