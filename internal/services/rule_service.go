package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "masroof/internal/errors"
	"masroof/internal/models"
)

// ruleService handles classification rule management.
type ruleService struct {
	db *gorm.DB
}

// NewRuleService creates a new RuleServicer.
func NewRuleService(db *gorm.DB) RuleServicer {
	return &ruleService{db: db}
}

// CreateRule creates a new classification rule.
func (s *ruleService) CreateRule(
	keywords, classification, mainCategory, subCategory string,
	limit *float64,
) (*models.CategoryRule, error) {
	if strings.TrimSpace(keywords) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "merchant keywords are required")
	}
	if classification == "" || mainCategory == "" || subCategory == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "classification, main category, and sub category are required")
	}

	var count int64
	if err := s.db.Model(&models.CategoryRule{}).
		Where("merchant_keywords = ?", keywords).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateRule
	}

	rule := &models.CategoryRule{
		MerchantKeywords: keywords,
		Classification:   classification,
		MainCategory:     mainCategory,
		SubCategory:      subCategory,
		CategoryLimit:    limit,
	}

	if err := s.db.Create(rule).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return rule, nil
}

// ListRules returns every rule in ascending id order. Enumeration order is
// the classifier's tie-break, so it must be stable across calls.
func (s *ruleService) ListRules() ([]models.CategoryRule, error) {
	var rules []models.CategoryRule
	if err := s.db.Order("id ASC").Find(&rules).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rules, nil
}

// GetRuleByID retrieves a rule by ID.
func (s *ruleService) GetRuleByID(id uint) (*models.CategoryRule, error) {
	var rule models.CategoryRule
	if err := s.db.First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &rule, nil
}

// UpdateRule replaces all fields of an existing rule.
func (s *ruleService) UpdateRule(
	id uint,
	keywords, classification, mainCategory, subCategory string,
	limit *float64,
) (*models.CategoryRule, error) {
	rule, err := s.GetRuleByID(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(keywords) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "merchant keywords are required")
	}

	updates := map[string]interface{}{
		"merchant_keywords": keywords,
		"classification":    classification,
		"main_category":     mainCategory,
		"sub_category":      subCategory,
		"category_limit":    limit,
	}
	if err := s.db.Model(rule).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return rule, nil
}

// DeleteRule deletes a rule.
func (s *ruleService) DeleteRule(id uint) error {
	rule, err := s.GetRuleByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(rule).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Categories returns the distinct non-empty main categories across all rules.
func (s *ruleService) Categories() ([]string, error) {
	var categories []string
	if err := s.db.Model(&models.CategoryRule{}).
		Distinct("main_category").
		Where("main_category <> ''").
		Order("main_category ASC").
		Pluck("main_category", &categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// CategoryLimit returns the configured limit for a main category. The rule
// is resolved in enumeration order, matching classification behavior.
func (s *ruleService) CategoryLimit(category string) (*CategoryLimit, error) {
	rule, err := s.ruleForCategory(category)
	if err != nil {
		return nil, err
	}
	if rule.CategoryLimit == nil {
		return nil, apperrors.ErrNoCategoryLimit
	}
	return &CategoryLimit{
		MainCategory:  rule.MainCategory,
		CategoryLimit: *rule.CategoryLimit,
	}, nil
}

// ruleForCategory finds the first rule for a main category in id order.
func (s *ruleService) ruleForCategory(category string) (*models.CategoryRule, error) {
	var rule models.CategoryRule
	if err := s.db.Where("main_category = ?", category).Order("id ASC").First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoCategoryLimit
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &rule, nil
}
