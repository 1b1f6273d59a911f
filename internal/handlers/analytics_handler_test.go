package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "masroof/internal/errors"
	"masroof/internal/services"
)

// --- mock analytics service ---

type mockAnalyticsService struct {
	remainingLimitFn   func(category string) (*services.RemainingLimit, error)
	categoryAnalysisFn func(category string) (*services.CategoryAnalysis, error)
	cycleAnalysisFn    func(cycleID uint) (*services.CycleAnalysis, error)
	cycleHistoryFn     func(limit int) ([]services.CycleSummary, error)
}

func (m *mockAnalyticsService) RemainingLimit(category string) (*services.RemainingLimit, error) {
	if m.remainingLimitFn != nil {
		return m.remainingLimitFn(category)
	}
	return &services.RemainingLimit{}, nil
}

func (m *mockAnalyticsService) CategoryAnalysis(category string) (*services.CategoryAnalysis, error) {
	if m.categoryAnalysisFn != nil {
		return m.categoryAnalysisFn(category)
	}
	return &services.CategoryAnalysis{}, nil
}

func (m *mockAnalyticsService) CycleAnalysis(cycleID uint) (*services.CycleAnalysis, error) {
	if m.cycleAnalysisFn != nil {
		return m.cycleAnalysisFn(cycleID)
	}
	return &services.CycleAnalysis{}, nil
}

func (m *mockAnalyticsService) CycleHistory(limit int) ([]services.CycleSummary, error) {
	if m.cycleHistoryFn != nil {
		return m.cycleHistoryFn(limit)
	}
	return []services.CycleSummary{}, nil
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

func setupAnalyticsRouter(handler *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/categories/:category/remaining", handler.GetRemainingLimit)
	r.GET("/categories/:category/analysis", handler.GetCategoryAnalysis)
	r.GET("/cycles/:id/analysis", handler.GetCycleAnalysis)
	r.GET("/cycles/history", handler.GetCycleHistory)
	return r
}

func TestAnalyticsHandler_GetRemainingLimit(t *testing.T) {
	t.Run("returns 200 with remaining", func(t *testing.T) {
		var capturedCategory string
		svc := &mockAnalyticsService{
			remainingLimitFn: func(category string) (*services.RemainingLimit, error) {
				capturedCategory = category
				return &services.RemainingLimit{
					MainCategory:   category,
					CategoryLimit:  500,
					TotalSpent:     150,
					RemainingLimit: 350,
				}, nil
			},
		}
		handler := NewAnalyticsHandler(svc)
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/categories/Health/remaining", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if capturedCategory != "Health" {
			t.Errorf("expected category Health passed through, got %q", capturedCategory)
		}
		result := parseJSON(t, rec)
		if result["remaining_limit"] != 350.0 {
			t.Errorf("expected remaining 350, got %v", result["remaining_limit"])
		}
	})

	t.Run("returns 404 without limit", func(t *testing.T) {
		svc := &mockAnalyticsService{
			remainingLimitFn: func(string) (*services.RemainingLimit, error) {
				return nil, apperrors.ErrNoCategoryLimit
			},
		}
		handler := NewAnalyticsHandler(svc)
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/categories/Transport/remaining", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NO_CATEGORY_LIMIT")
	})
}

func TestAnalyticsHandler_GetCategoryAnalysis(t *testing.T) {
	t.Run("returns 200 with totals", func(t *testing.T) {
		svc := &mockAnalyticsService{
			categoryAnalysisFn: func(category string) (*services.CategoryAnalysis, error) {
				return &services.CategoryAnalysis{
					MainCategory: category,
					TotalSpent:   120,
					InvoiceCount: 2,
					AverageSpent: 60,
				}, nil
			},
		}
		handler := NewAnalyticsHandler(svc)
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/categories/Groceries/analysis", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["total_spent"] != 120.0 {
			t.Errorf("expected total 120, got %v", result["total_spent"])
		}
		if result["invoice_count"] != 2.0 {
			t.Errorf("expected count 2, got %v", result["invoice_count"])
		}
	})
}

func TestAnalyticsHandler_GetCycleAnalysis(t *testing.T) {
	t.Run("returns 200 with report", func(t *testing.T) {
		svc := &mockAnalyticsService{
			cycleAnalysisFn: func(cycleID uint) (*services.CycleAnalysis, error) {
				return &services.CycleAnalysis{
					CycleID:              cycleID,
					StartDate:            time.Now().AddDate(0, 0, -5),
					IsActive:             true,
					TotalSpent:           150,
					TotalBudget:          180,
					RemainingBudget:      30,
					BudgetPercentageUsed: 83.3,
					TransactionCount:     2,
					AverageTransaction:   75,
					CategoryBreakdown: []services.CategoryBreakdown{
						{Category: "Health", Spent: 90, PercentageOfTotal: 60},
						{Category: "Groceries", Spent: 60, PercentageOfTotal: 40},
					},
					TopMerchants: []services.MerchantSpend{
						{Merchant: "Al Nahdi", Spent: 90},
					},
				}, nil
			},
		}
		handler := NewAnalyticsHandler(svc)
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/cycles/1/analysis", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["budget_percentage_used"] != 83.3 {
			t.Errorf("expected 83.3%% used, got %v", result["budget_percentage_used"])
		}
		breakdown := result["category_breakdown"].([]interface{})
		if len(breakdown) != 2 {
			t.Errorf("expected 2 breakdown entries, got %d", len(breakdown))
		}
	})

	t.Run("returns 404 when cycle missing", func(t *testing.T) {
		svc := &mockAnalyticsService{
			cycleAnalysisFn: func(uint) (*services.CycleAnalysis, error) {
				return nil, apperrors.ErrCycleNotFound
			},
		}
		handler := NewAnalyticsHandler(svc)
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/cycles/999/analysis", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CYCLE_NOT_FOUND")
	})

	t.Run("returns 400 on invalid id", func(t *testing.T) {
		handler := NewAnalyticsHandler(&mockAnalyticsService{})
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/cycles/abc/analysis", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAnalyticsHandler_GetCycleHistory(t *testing.T) {
	t.Run("returns 200 with cycles", func(t *testing.T) {
		svc := &mockAnalyticsService{
			cycleHistoryFn: func(int) ([]services.CycleSummary, error) {
				return []services.CycleSummary{
					{ID: 2, StartDate: time.Now().AddDate(0, 0, -5), IsActive: true, TotalSpent: 65},
					{ID: 1, StartDate: time.Now().AddDate(0, -3, 0), TotalSpent: 45},
				}, nil
			},
		}
		handler := NewAnalyticsHandler(svc)
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/cycles/history", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		cycles := result["cycles"].([]interface{})
		if len(cycles) != 2 {
			t.Errorf("expected 2 cycles, got %d", len(cycles))
		}
	})

	t.Run("passes limit through", func(t *testing.T) {
		var capturedLimit int
		svc := &mockAnalyticsService{
			cycleHistoryFn: func(limit int) ([]services.CycleSummary, error) {
				capturedLimit = limit
				return []services.CycleSummary{}, nil
			},
		}
		handler := NewAnalyticsHandler(svc)
		r := setupAnalyticsRouter(handler)

		doRequest(r, "GET", "/cycles/history?limit=3", "")

		if capturedLimit != 3 {
			t.Errorf("expected limit 3, got %d", capturedLimit)
		}
	})

	t.Run("returns 400 on invalid limit", func(t *testing.T) {
		handler := NewAnalyticsHandler(&mockAnalyticsService{})
		r := setupAnalyticsRouter(handler)

		rec := doRequest(r, "GET", "/cycles/history?limit=zero", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
