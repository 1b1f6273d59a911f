package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "masroof/internal/errors"
	"masroof/internal/services"
)

// AnalyticsHandler handles spend aggregation requests.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetRemainingLimit handles reporting what is left of a category's limit.
// @Summary     Get remaining category limit
// @Description Get a category's spending limit minus its recorded spend
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Param       category path string true "Main category name"
// @Success     200 {object} services.RemainingLimit "Remaining limit"
// @Failure     404 {object} ErrorResponse "No limit configured for category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{category}/remaining [get]
func (h *AnalyticsHandler) GetRemainingLimit(c *gin.Context) {
	remaining, err := h.analyticsService.RemainingLimit(c.Param("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, remaining)
}

// GetCategoryAnalysis handles summarizing spend in one category.
// @Summary     Get category analysis
// @Description Get total, count, and average spend for a main category
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Param       category path string true "Main category name"
// @Success     200 {object} services.CategoryAnalysis "Category analysis"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{category}/analysis [get]
func (h *AnalyticsHandler) GetCategoryAnalysis(c *gin.Context) {
	analysis, err := h.analyticsService.CategoryAnalysis(c.Param("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetCycleAnalysis handles the full spending report for one cycle.
// @Summary     Get cycle analysis
// @Description Get totals, category breakdown, and top merchants for a budget cycle
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Param       id path int true "Cycle ID"
// @Success     200 {object} services.CycleAnalysis "Cycle analysis"
// @Failure     400 {object} ErrorResponse "Invalid cycle ID"
// @Failure     404 {object} ErrorResponse "Cycle not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cycles/{id}/analysis [get]
func (h *AnalyticsHandler) GetCycleAnalysis(c *gin.Context) {
	cycleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	analysis, err := h.analyticsService.CycleAnalysis(cycleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetCycleHistory handles listing recent cycles with their spend totals.
// @Summary     Get cycle history
// @Description Get recent budget cycles, newest first, each with its total spend
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Param       limit query int false "Maximum cycles to return (default 12)"
// @Success     200 {array} services.CycleSummary "Cycle summaries"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cycles/history [get]
func (h *AnalyticsHandler) GetCycleHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid limit"))
			return
		}
		limit = parsed
	}

	history, err := h.analyticsService.CycleHistory(limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cycles": history})
}
