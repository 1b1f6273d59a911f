package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"masroof/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestRule creates a classification rule with unique keywords.
func CreateTestRule(t *testing.T, db *gorm.DB, keywords, mainCategory string, limit *float64) *models.CategoryRule {
	t.Helper()

	if keywords == "" {
		keywords = fmt.Sprintf("Merchant %d", nextID())
	}
	rule := &models.CategoryRule{
		MerchantKeywords: keywords,
		Classification:   "Expense",
		MainCategory:     mainCategory,
		SubCategory:      "General",
		CategoryLimit:    limit,
	}
	if err := db.Create(rule).Error; err != nil {
		t.Fatalf("failed to create test rule: %v", err)
	}
	return rule
}

// CreateTestInvoice creates a successfully extracted invoice for the given
// merchant and amount, classified under the given main category.
func CreateTestInvoice(t *testing.T, db *gorm.DB, merchant string, amount float64, mainCategory string) *models.Invoice {
	t.Helper()

	invoice := &models.Invoice{
		Amount:           &amount,
		Merchant:         &merchant,
		RawMessage:       fmt.Sprintf("مبلغ: %.2f SAR\nلدى: %s", amount, merchant),
		ExtractionStatus: models.ExtractionSuccess,
	}
	if mainCategory != "" {
		classification := "Expense"
		subCategory := "General"
		invoice.Classification = &classification
		invoice.MainCategory = &mainCategory
		invoice.SubCategory = &subCategory
	}
	if err := db.Create(invoice).Error; err != nil {
		t.Fatalf("failed to create test invoice: %v", err)
	}
	return invoice
}

// CreateFailedTestInvoice creates an invoice whose extraction failed.
func CreateFailedTestInvoice(t *testing.T, db *gorm.DB) *models.Invoice {
	t.Helper()

	invoice := &models.Invoice{
		RawMessage:       fmt.Sprintf("Your OTP is %d", nextID()),
		ExtractionStatus: models.ExtractionFailed,
	}
	if err := db.Create(invoice).Error; err != nil {
		t.Fatalf("failed to create failed test invoice: %v", err)
	}
	return invoice
}

// CreateTestCycle creates a budget cycle starting at the given time.
func CreateTestCycle(t *testing.T, db *gorm.DB, startDate time.Time, active bool) *models.BudgetCycle {
	t.Helper()

	cycle := &models.BudgetCycle{
		StartDate: startDate,
		IsActive:  active,
	}
	if !active {
		endDate := startDate.AddDate(0, 0, 30)
		cycle.EndDate = &endDate
	}
	if err := db.Create(cycle).Error; err != nil {
		t.Fatalf("failed to create test cycle: %v", err)
	}
	return cycle
}

// SetInvoiceCreatedAt backdates an invoice so it falls inside a specific
// cycle window. GORM stamps CreatedAt on insert, so tests that need rows in
// past windows rewrite it afterwards.
func SetInvoiceCreatedAt(t *testing.T, db *gorm.DB, invoiceID uint, createdAt time.Time) {
	t.Helper()

	if err := db.Model(&models.Invoice{}).Where("id = ?", invoiceID).
		Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("failed to backdate test invoice: %v", err)
	}
}
