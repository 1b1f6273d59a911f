package services

import (
	"errors"
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "masroof/internal/errors"
	"masroof/internal/models"
)

// topMerchantCount is how many merchants a cycle analysis reports.
const topMerchantCount = 5

// defaultHistoryLimit caps cycle history when no limit is given.
const defaultHistoryLimit = 12

// analyticsService computes spend aggregations over invoices, rules, and
// cycles. All operations are read-only scans.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// RemainingLimit reports the unspent portion of a category's limit.
// The sum covers all time, not just the active cycle; cycle-scoped numbers
// come from CycleAnalysis instead.
func (s *analyticsService) RemainingLimit(category string) (*RemainingLimit, error) {
	rule, err := s.firstRuleForCategory(category)
	if err != nil {
		return nil, err
	}
	if rule.CategoryLimit == nil {
		return nil, apperrors.ErrNoCategoryLimit
	}

	totalSpent, err := s.sumForCategory(category)
	if err != nil {
		return nil, err
	}

	return &RemainingLimit{
		MainCategory:   category,
		CategoryLimit:  *rule.CategoryLimit,
		TotalSpent:     totalSpent,
		RemainingLimit: *rule.CategoryLimit - totalSpent,
	}, nil
}

// CategoryAnalysis summarizes all-time spending for a main category.
func (s *analyticsService) CategoryAnalysis(category string) (*CategoryAnalysis, error) {
	totalSpent, err := s.sumForCategory(category)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Invoice{}).
		Where("main_category = ? AND extraction_status = ?", category, models.ExtractionSuccess).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var average float64
	if count > 0 {
		average = totalSpent / float64(count)
	}

	return &CategoryAnalysis{
		MainCategory: category,
		TotalSpent:   totalSpent,
		InvoiceCount: count,
		AverageSpent: average,
	}, nil
}

// CycleAnalysis builds the full spending report for one cycle. The window
// is inclusive on both ends; an active cycle's window ends now.
func (s *analyticsService) CycleAnalysis(cycleID uint) (*CycleAnalysis, error) {
	var cycle models.BudgetCycle
	if err := s.db.First(&cycle, cycleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCycleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	end := time.Now()
	if cycle.EndDate != nil {
		end = *cycle.EndDate
	}

	var invoices []models.Invoice
	if err := s.db.
		Where("created_at >= ? AND created_at <= ? AND extraction_status = ?",
			cycle.StartDate, end, models.ExtractionSuccess).
		Find(&invoices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var totalSpent float64
	for i := range invoices {
		if invoices[i].Amount != nil {
			totalSpent += *invoices[i].Amount
		}
	}

	transactionCount := len(invoices)
	var averageTransaction float64
	if transactionCount > 0 {
		averageTransaction = totalSpent / float64(transactionCount)
	}

	var totalBudget float64
	if err := s.db.Model(&models.CategoryRule{}).
		Select("COALESCE(SUM(category_limit), 0)").
		Scan(&totalBudget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgetPercentageUsed float64
	if totalBudget > 0 {
		budgetPercentageUsed = round1(totalSpent / totalBudget * 100)
	}

	breakdown, err := s.categoryBreakdown(invoices, totalSpent)
	if err != nil {
		return nil, err
	}

	return &CycleAnalysis{
		CycleID:              cycle.ID,
		StartDate:            cycle.StartDate,
		EndDate:              cycle.EndDate,
		IsActive:             cycle.IsActive,
		TotalSpent:           round2(totalSpent),
		TotalBudget:          round2(totalBudget),
		RemainingBudget:      round2(totalBudget - totalSpent),
		BudgetPercentageUsed: budgetPercentageUsed,
		TransactionCount:     transactionCount,
		AverageTransaction:   round2(averageTransaction),
		CategoryBreakdown:    breakdown,
		TopMerchants:         topMerchants(invoices),
	}, nil
}

// categoryBreakdown groups the window's invoices by main category, sorted
// by spend descending. Unclassified invoices group under the empty
// category with no limit.
func (s *analyticsService) categoryBreakdown(invoices []models.Invoice, totalSpent float64) ([]CategoryBreakdown, error) {
	spending := make(map[string]float64)
	for i := range invoices {
		var category string
		if invoices[i].MainCategory != nil {
			category = *invoices[i].MainCategory
		}
		if invoices[i].Amount != nil {
			spending[category] += *invoices[i].Amount
		}
	}

	// First rule per main category (id order) provides the limit.
	var rules []models.CategoryRule
	if err := s.db.Order("id ASC").Find(&rules).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	limits := make(map[string]*float64)
	for i := range rules {
		if _, seen := limits[rules[i].MainCategory]; !seen {
			limits[rules[i].MainCategory] = rules[i].CategoryLimit
		}
	}

	breakdown := make([]CategoryBreakdown, 0, len(spending))
	for category, spent := range spending {
		entry := CategoryBreakdown{
			Category: category,
			Spent:    round2(spent),
			Limit:    limits[category],
		}
		if totalSpent > 0 {
			entry.PercentageOfTotal = round1(spent / totalSpent * 100)
		}
		if entry.Limit != nil && *entry.Limit != 0 {
			pct := round1(spent / *entry.Limit * 100)
			entry.PercentageOfLimit = &pct
		}
		breakdown = append(breakdown, entry)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Spent > breakdown[j].Spent
	})
	return breakdown, nil
}

// topMerchants returns the five highest-spending merchants in the window.
func topMerchants(invoices []models.Invoice) []MerchantSpend {
	spending := make(map[string]float64)
	for i := range invoices {
		if invoices[i].Merchant == nil || *invoices[i].Merchant == "" {
			continue
		}
		if invoices[i].Amount != nil {
			spending[*invoices[i].Merchant] += *invoices[i].Amount
		}
	}

	merchants := make([]MerchantSpend, 0, len(spending))
	for merchant, spent := range spending {
		merchants = append(merchants, MerchantSpend{Merchant: merchant, Spent: round2(spent)})
	}
	sort.SliceStable(merchants, func(i, j int) bool {
		return merchants[i].Spent > merchants[j].Spent
	})

	if len(merchants) > topMerchantCount {
		merchants = merchants[:topMerchantCount]
	}
	return merchants
}

// CycleHistory lists the most recent cycles, newest first, each annotated
// with total spend over its window.
func (s *analyticsService) CycleHistory(limit int) ([]CycleSummary, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var cycles []models.BudgetCycle
	if err := s.db.Order("start_date DESC").Limit(limit).Find(&cycles).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summaries := make([]CycleSummary, 0, len(cycles))
	for i := range cycles {
		end := time.Now()
		if cycles[i].EndDate != nil {
			end = *cycles[i].EndDate
		}

		var totalSpent float64
		if err := s.db.Model(&models.Invoice{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("created_at >= ? AND created_at <= ? AND extraction_status = ?",
				cycles[i].StartDate, end, models.ExtractionSuccess).
			Scan(&totalSpent).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		summaries = append(summaries, CycleSummary{
			ID:         cycles[i].ID,
			StartDate:  cycles[i].StartDate,
			EndDate:    cycles[i].EndDate,
			IsActive:   cycles[i].IsActive,
			TotalSpent: round2(totalSpent),
		})
	}

	return summaries, nil
}

// sumForCategory totals successful invoices in a main category, all time.
func (s *analyticsService) sumForCategory(category string) (float64, error) {
	var total float64
	err := s.db.Model(&models.Invoice{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("main_category = ? AND extraction_status = ?", category, models.ExtractionSuccess).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// firstRuleForCategory finds the first rule for a main category in id order.
func (s *analyticsService) firstRuleForCategory(category string) (*models.CategoryRule, error) {
	var rule models.CategoryRule
	if err := s.db.Where("main_category = ?", category).Order("id ASC").First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoCategoryLimit
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &rule, nil
}

// round2 rounds to 2 decimal places for monetary presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to 1 decimal place for percentages.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
