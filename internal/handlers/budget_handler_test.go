package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/models"
	"ledgerly/internal/services"
)

func setupBudgetRouter(svc *mockBudgetService) *gin.Engine {
	handler := NewBudgetHandler(svc)
	router := gin.New()
	group := router.Group("/budgets", injectUserID(testUserID))
	group.POST("", handler.UpsertBudget)
	group.GET("", handler.GetBudget)
	group.GET("/alerts", handler.GetBudgetAlerts)
	return router
}

func TestUpsertBudgetHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router := setupBudgetRouter(&mockBudgetService{
			upsertBudgetFn: func(userID string, month, year int, totalBudget float64, categoryBudgets models.CategoryBudgets) (*models.Budget, error) {
				if month != 12 || year != 2024 || totalBudget != 2000 {
					t.Errorf("unexpected arguments: %d/%d %f", month, year, totalBudget)
				}
				if categoryBudgets["groceries"] != 400 {
					t.Errorf("expected category budgets to be forwarded, got %v", categoryBudgets)
				}
				budget := &models.Budget{UserID: userID, Month: month, Year: year, TotalBudget: totalBudget, CategoryBudgets: categoryBudgets}
				budget.ID = "budget-1"
				return budget, nil
			},
		})

		w := doRequest(router, http.MethodPost, "/budgets", gin.H{
			"month":            12,
			"year":             2024,
			"total_budget":     2000,
			"category_budgets": gin.H{"groceries": 400},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp models.Budget
		parseJSON(t, w, &resp)
		if resp.ID != "budget-1" {
			t.Errorf("expected budget ID in response, got %s", resp.ID)
		}
	})

	t.Run("month_out_of_range", func(t *testing.T) {
		router := setupBudgetRouter(&mockBudgetService{})

		w := doRequest(router, http.MethodPost, "/budgets", gin.H{
			"month":        13,
			"year":         2024,
			"total_budget": 2000,
		})

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestGetBudgetHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router := setupBudgetRouter(&mockBudgetService{
			getBudgetFn: func(userID string, month, year int) (*models.Budget, error) {
				budget := &models.Budget{UserID: userID, Month: month, Year: year, TotalBudget: 2000}
				budget.ID = "budget-1"
				return budget, nil
			},
		})

		w := doRequest(router, http.MethodGet, "/budgets?month=12&year=2024", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("absent_renders_null", func(t *testing.T) {
		router := setupBudgetRouter(&mockBudgetService{
			getBudgetFn: func(userID string, month, year int) (*models.Budget, error) {
				return nil, nil
			},
		})

		w := doRequest(router, http.MethodGet, "/budgets?month=12&year=2024", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "null" {
			t.Errorf("expected null body, got %s", w.Body.String())
		}
	})

	t.Run("missing_month", func(t *testing.T) {
		router := setupBudgetRouter(&mockBudgetService{})

		w := doRequest(router, http.MethodGet, "/budgets?year=2024", nil)
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestGetBudgetAlertsHandler(t *testing.T) {
	router := setupBudgetRouter(&mockBudgetService{
		budgetAlertsFn: func(userID string, month, year int) (*services.AlertReport, error) {
			return &services.AlertReport{
				Alerts:     []services.Alert{{Type: services.AlertTypeWarning, Message: "You've used 85.0% of your budget. $150.00 remaining."}},
				TotalSpent: 850,
				Budget:     1000,
				Percentage: 85,
			}, nil
		},
	})

	w := doRequest(router, http.MethodGet, "/budgets/alerts?month=12&year=2024", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp services.AlertReport
	parseJSON(t, w, &resp)
	if len(resp.Alerts) != 1 || resp.Alerts[0].Type != services.AlertTypeWarning {
		t.Errorf("unexpected alerts: %+v", resp.Alerts)
	}
	if resp.Percentage != 85 {
		t.Errorf("expected percentage 85, got %f", resp.Percentage)
	}
}
