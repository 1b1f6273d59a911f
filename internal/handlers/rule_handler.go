package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "masroof/internal/errors"
	"masroof/internal/services"
)

// RuleHandler handles classification rule requests.
type RuleHandler struct {
	ruleService services.RuleServicer
}

// NewRuleHandler creates a new RuleHandler.
func NewRuleHandler(ruleService services.RuleServicer) *RuleHandler {
	return &RuleHandler{ruleService: ruleService}
}

// RuleRequest represents a rule create or update payload. MerchantKeywords is
// a comma-separated list of substrings matched against merchant names.
type RuleRequest struct {
	MerchantKeywords string   `json:"merchant_keywords" binding:"required"`
	Classification   string   `json:"classification" binding:"required"`
	MainCategory     string   `json:"main_category" binding:"required"`
	SubCategory      string   `json:"sub_category" binding:"required"`
	CategoryLimit    *float64 `json:"category_limit" binding:"omitempty,gt=0"`
}

// CreateRule handles creating a classification rule.
// @Summary     Create classification rule
// @Description Create a new keyword-based classification rule
// @Tags        rules
// @Accept      json
// @Produce     json
// @Param       request body RuleRequest true "Rule details"
// @Success     201 {object} models.CategoryRule "Created rule"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate merchant keywords"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rules [post]
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rule, err := h.ruleService.CreateRule(
		req.MerchantKeywords, req.Classification, req.MainCategory, req.SubCategory, req.CategoryLimit,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rule": rule})
}

// GetRules handles listing all classification rules.
// @Summary     List classification rules
// @Description Get all classification rules in evaluation order
// @Tags        rules
// @Accept      json
// @Produce     json
// @Success     200 {array} models.CategoryRule "Rules"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rules [get]
func (h *RuleHandler) GetRules(c *gin.Context) {
	rules, err := h.ruleService.ListRules()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// GetRule handles retrieving a specific rule.
// @Summary     Get rule by ID
// @Description Get a specific classification rule by ID
// @Tags        rules
// @Accept      json
// @Produce     json
// @Param       id path int true "Rule ID"
// @Success     200 {object} models.CategoryRule "Rule details"
// @Failure     400 {object} ErrorResponse "Invalid rule ID"
// @Failure     404 {object} ErrorResponse "Rule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rules/{id} [get]
func (h *RuleHandler) GetRule(c *gin.Context) {
	ruleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	rule, err := h.ruleService.GetRuleByID(ruleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rule": rule})
}

// UpdateRule handles replacing a rule's fields.
// @Summary     Update classification rule
// @Description Replace a classification rule's fields
// @Tags        rules
// @Accept      json
// @Produce     json
// @Param       id      path int         true "Rule ID"
// @Param       request body RuleRequest true "Updated rule details"
// @Success     200 {object} models.CategoryRule "Updated rule"
// @Failure     400 {object} ErrorResponse "Invalid input or rule ID"
// @Failure     404 {object} ErrorResponse "Rule not found"
// @Failure     409 {object} ErrorResponse "Duplicate merchant keywords"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rules/{id} [put]
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	ruleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rule, err := h.ruleService.UpdateRule(
		ruleID, req.MerchantKeywords, req.Classification, req.MainCategory, req.SubCategory, req.CategoryLimit,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rule": rule})
}

// DeleteRule handles deleting a rule.
// @Summary     Delete classification rule
// @Description Permanently delete a classification rule by ID
// @Tags        rules
// @Accept      json
// @Produce     json
// @Param       id path int true "Rule ID"
// @Success     200 {object} MessageResponse "Rule deleted"
// @Failure     400 {object} ErrorResponse "Invalid rule ID"
// @Failure     404 {object} ErrorResponse "Rule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rules/{id} [delete]
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	ruleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ruleService.DeleteRule(ruleID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rule deleted successfully"})
}

// GetCategories handles listing the distinct main categories.
// @Summary     List main categories
// @Description Get the distinct main categories referenced by classification rules
// @Tags        rules
// @Accept      json
// @Produce     json
// @Success     200 {array} string "Main categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *RuleHandler) GetCategories(c *gin.Context) {
	categories, err := h.ruleService.Categories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategoryLimit handles looking up a category's configured limit.
// @Summary     Get category limit
// @Description Get the configured spending limit for a main category
// @Tags        rules
// @Accept      json
// @Produce     json
// @Param       category path string true "Main category name"
// @Success     200 {object} services.CategoryLimit "Category limit"
// @Failure     404 {object} ErrorResponse "No limit configured for category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{category}/limit [get]
func (h *RuleHandler) GetCategoryLimit(c *gin.Context) {
	limit, err := h.ruleService.CategoryLimit(c.Param("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, limit)
}
