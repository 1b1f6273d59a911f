package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"masroof/internal/handlers"
	"masroof/internal/logger"
	"masroof/internal/middleware"
	"masroof/internal/models"
	"masroof/internal/services"
	"masroof/internal/validator"
)

const testWebhookKey = "test-webhook-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Invoice{},
		&models.CategoryRule{},
		&models.BudgetCycle{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	ruleService := services.NewRuleService(db)
	invoiceService := services.NewInvoiceService(db, ruleService)
	cycleService := services.NewCycleService(db)
	analyticsService := services.NewAnalyticsService(db)

	// Handlers
	smsHandler := handlers.NewSMSHandler(invoiceService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	ruleHandler := handlers.NewRuleHandler(ruleService)
	cycleHandler := handlers.NewCycleHandler(cycleService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.POST("/sms", middleware.WebhookAuthMiddleware(testWebhookKey), smsHandler.ReceiveSMS)

	invoices := v1.Group("/invoices")
	invoices.GET("", invoiceHandler.GetInvoices)
	invoices.GET("/:id", invoiceHandler.GetInvoice)
	invoices.PATCH("/:id", invoiceHandler.UpdateClassification)
	invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)

	rules := v1.Group("/rules")
	rules.POST("", ruleHandler.CreateRule)
	rules.GET("", ruleHandler.GetRules)
	rules.GET("/:id", ruleHandler.GetRule)
	rules.PUT("/:id", ruleHandler.UpdateRule)
	rules.DELETE("/:id", ruleHandler.DeleteRule)

	categories := v1.Group("/categories")
	categories.GET("", ruleHandler.GetCategories)
	categories.GET("/:category/limit", ruleHandler.GetCategoryLimit)
	categories.GET("/:category/remaining", analyticsHandler.GetRemainingLimit)
	categories.GET("/:category/analysis", analyticsHandler.GetCategoryAnalysis)

	cycles := v1.Group("/cycles")
	cycles.POST("", cycleHandler.StartCycle)
	cycles.GET("/current", cycleHandler.GetCurrentCycle)
	cycles.GET("/history", analyticsHandler.GetCycleHistory)
	cycles.GET("/:id/analysis", analyticsHandler.GetCycleAnalysis)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// sendSMS posts a message to the webhook and returns the stored invoice ID.
func (app *testApp) sendSMS(t *testing.T, message string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"message":%q}`, message)
	rec := app.request("POST", "/api/v1/sms", body, testWebhookKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("sms ingestion failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	invoice := result["invoice"].(map[string]interface{})
	return invoice["id"].(float64)
}

// createRule creates a classification rule and returns its ID.
func (app *testApp) createRule(t *testing.T, keywords, mainCategory string, limit float64) float64 {
	t.Helper()
	body := fmt.Sprintf(
		`{"merchant_keywords":%q,"classification":"Expense","main_category":%q,"sub_category":"General","category_limit":%g}`,
		keywords, mainCategory, limit)
	rec := app.request("POST", "/api/v1/rules", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("rule creation failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	rule := result["rule"].(map[string]interface{})
	return rule["id"].(float64)
}
