package services

import (
	"time"

	"masroof/internal/models"
	"masroof/internal/pagination"
)

// InvoiceServicer defines the contract for SMS ingestion and invoice records.
type InvoiceServicer interface {
	IngestSMS(message string) (*models.Invoice, error)
	ListInvoices(page pagination.PageRequest) (*pagination.PageResponse[models.Invoice], error)
	GetInvoiceByID(id uint) (*models.Invoice, error)
	UpdateClassification(id uint, classification, mainCategory, subCategory string, createRule bool) (*models.Invoice, error)
	DeleteInvoice(id uint) error
}

// RuleServicer defines the contract for classification rule management.
type RuleServicer interface {
	CreateRule(keywords, classification, mainCategory, subCategory string, limit *float64) (*models.CategoryRule, error)
	ListRules() ([]models.CategoryRule, error)
	GetRuleByID(id uint) (*models.CategoryRule, error)
	UpdateRule(id uint, keywords, classification, mainCategory, subCategory string, limit *float64) (*models.CategoryRule, error)
	DeleteRule(id uint) error
	Categories() ([]string, error)
	CategoryLimit(category string) (*CategoryLimit, error)
}

// CycleServicer defines the contract for budget cycle transitions.
type CycleServicer interface {
	StartNewCycle(startDate string) (*models.BudgetCycle, error)
	CurrentCycle() (*CurrentCycle, error)
	GetCycle(id uint) (*models.BudgetCycle, error)
}

// AnalyticsServicer defines the contract for spend aggregation.
type AnalyticsServicer interface {
	RemainingLimit(category string) (*RemainingLimit, error)
	CategoryAnalysis(category string) (*CategoryAnalysis, error)
	CycleAnalysis(cycleID uint) (*CycleAnalysis, error)
	CycleHistory(limit int) ([]CycleSummary, error)
}

// CategoryLimit is the configured spending limit of a main category.
type CategoryLimit struct {
	MainCategory  string  `json:"main_category"`
	CategoryLimit float64 `json:"category_limit"`
}

// RemainingLimit reports how much of a category's limit is left.
// Spend is summed across all time, not the active cycle.
type RemainingLimit struct {
	MainCategory   string  `json:"main_category"`
	CategoryLimit  float64 `json:"category_limit"`
	TotalSpent     float64 `json:"total_spent"`
	RemainingLimit float64 `json:"remaining_limit"`
}

// CategoryAnalysis summarizes all-time spending in a main category.
type CategoryAnalysis struct {
	MainCategory string  `json:"main_category"`
	TotalSpent   float64 `json:"total_spent"`
	InvoiceCount int64   `json:"invoice_count"`
	AverageSpent float64 `json:"average_spent"`
}

// CurrentCycle describes the active budget cycle and its progress through
// the nominal 30-day window.
type CurrentCycle struct {
	ID            uint      `json:"id"`
	StartDate     time.Time `json:"start_date"`
	IsActive      bool      `json:"is_active"`
	DaysElapsed   int       `json:"days_elapsed"`
	DaysRemaining int       `json:"days_remaining"`
}

// CycleSummary is one entry of the cycle history, annotated with the total
// spend recorded inside the cycle's window.
type CycleSummary struct {
	ID         uint       `json:"id"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	IsActive   bool       `json:"is_active"`
	TotalSpent float64    `json:"total_spent"`
}

// CategoryBreakdown is per-category spending inside one cycle.
type CategoryBreakdown struct {
	Category          string   `json:"category"`
	Spent             float64  `json:"spent"`
	Limit             *float64 `json:"limit"`
	PercentageOfTotal float64  `json:"percentage_of_total"`
	PercentageOfLimit *float64 `json:"percentage_of_limit"`
}

// MerchantSpend is one merchant's total inside a cycle.
type MerchantSpend struct {
	Merchant string  `json:"merchant"`
	Spent    float64 `json:"spent"`
}

// CycleAnalysis is the full spending report for one budget cycle.
type CycleAnalysis struct {
	CycleID              uint                `json:"cycle_id"`
	StartDate            time.Time           `json:"start_date"`
	EndDate              *time.Time          `json:"end_date,omitempty"`
	IsActive             bool                `json:"is_active"`
	TotalSpent           float64             `json:"total_spent"`
	TotalBudget          float64             `json:"total_budget"`
	RemainingBudget      float64             `json:"remaining_budget"`
	BudgetPercentageUsed float64             `json:"budget_percentage_used"`
	TransactionCount     int                 `json:"transaction_count"`
	AverageTransaction   float64             `json:"average_transaction"`
	CategoryBreakdown    []CategoryBreakdown `json:"category_breakdown"`
	TopMerchants         []MerchantSpend     `json:"top_merchants"`
}
