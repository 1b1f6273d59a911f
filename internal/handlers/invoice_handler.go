package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "masroof/internal/errors"
	"masroof/internal/pagination"
	"masroof/internal/services"
)

// InvoiceHandler handles invoice-related requests.
type InvoiceHandler struct {
	invoiceService services.InvoiceServicer
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService services.InvoiceServicer) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// UpdateClassificationRequest represents a human correction to an invoice's
// classification. CreateRule additionally creates a rule for the invoice's
// merchant (a checkbox in the review UI).
type UpdateClassificationRequest struct {
	Classification string `json:"classification" binding:"required"`
	MainCategory   string `json:"main_category" binding:"required"`
	SubCategory    string `json:"sub_category" binding:"required"`
	CreateRule     bool   `json:"create_rule"`
}

// GetInvoices handles listing invoices, newest first.
// @Summary     List invoices
// @Description Get a paginated list of invoices ordered by creation time descending
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Invoice] "Paginated invoices"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /invoices [get]
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.invoiceService.ListInvoices(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetInvoice handles retrieving a specific invoice.
// @Summary     Get invoice by ID
// @Description Get a specific invoice by ID
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       id path int true "Invoice ID"
// @Success     200 {object} models.Invoice "Invoice details"
// @Failure     400 {object} ErrorResponse "Invalid invoice ID"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(invoiceID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// UpdateClassification handles correcting an invoice's classification.
// @Summary     Correct invoice classification
// @Description Update an invoice's classification fields, optionally creating a rule for its merchant
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       id      path int                         true "Invoice ID"
// @Param       request body UpdateClassificationRequest true "Corrected classification"
// @Success     200 {object} models.Invoice "Updated invoice"
// @Failure     400 {object} ErrorResponse "Invalid input or invoice ID"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /invoices/{id} [patch]
func (h *InvoiceHandler) UpdateClassification(c *gin.Context) {
	invoiceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateClassificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	invoice, err := h.invoiceService.UpdateClassification(
		invoiceID, req.Classification, req.MainCategory, req.SubCategory, req.CreateRule,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// DeleteInvoice handles deleting an invoice.
// @Summary     Delete invoice
// @Description Permanently delete an invoice by ID
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       id path int true "Invoice ID"
// @Success     200 {object} MessageResponse "Invoice deleted"
// @Failure     400 {object} ErrorResponse "Invalid invoice ID"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	invoiceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.invoiceService.DeleteInvoice(invoiceID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
