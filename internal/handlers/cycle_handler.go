package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "masroof/internal/errors"
	"masroof/internal/services"
)

// CycleHandler handles budget cycle requests.
type CycleHandler struct {
	cycleService services.CycleServicer
}

// NewCycleHandler creates a new CycleHandler.
func NewCycleHandler(cycleService services.CycleServicer) *CycleHandler {
	return &CycleHandler{cycleService: cycleService}
}

// StartCycleRequest represents a request to start a new budget cycle.
// StartDate must be a calendar date in YYYY-MM-DD form.
type StartCycleRequest struct {
	StartDate string `json:"start_date" binding:"required,cycle_date"`
}

// StartCycle handles starting a new budget cycle. The previously active
// cycle, if any, is closed in the same transaction.
// @Summary     Start a new budget cycle
// @Description Close the active budget cycle and open a new one starting at the given date
// @Tags        cycles
// @Accept      json
// @Produce     json
// @Param       request body StartCycleRequest true "New cycle start date"
// @Success     201 {object} models.BudgetCycle "Created cycle"
// @Failure     400 {object} ErrorResponse "Invalid start date"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cycles [post]
func (h *CycleHandler) StartCycle(c *gin.Context) {
	var req StartCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cycle, err := h.cycleService.StartNewCycle(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"cycle": cycle})
}

// GetCurrentCycle handles retrieving the active cycle and its progress.
// @Summary     Get current budget cycle
// @Description Get the active budget cycle with days elapsed and remaining
// @Tags        cycles
// @Accept      json
// @Produce     json
// @Success     200 {object} services.CurrentCycle "Active cycle"
// @Failure     404 {object} ErrorResponse "No active cycle"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cycles/current [get]
func (h *CycleHandler) GetCurrentCycle(c *gin.Context) {
	cycle, err := h.cycleService.CurrentCycle()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cycle)
}
