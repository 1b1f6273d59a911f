package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "masroof/internal/errors"
	"masroof/internal/services"
)

// SMSHandler handles the SMS ingestion webhook.
type SMSHandler struct {
	invoiceService services.InvoiceServicer
}

// NewSMSHandler creates a new SMSHandler.
func NewSMSHandler(invoiceService services.InvoiceServicer) *SMSHandler {
	return &SMSHandler{invoiceService: invoiceService}
}

// ReceiveSMSRequest represents an inbound SMS forwarded by the sender app.
type ReceiveSMSRequest struct {
	Message   string     `json:"message" binding:"required"`
	Timestamp *time.Time `json:"timestamp"`
}

// ReceiveSMS handles an inbound SMS message.
// The invoice is persisted whether or not extraction succeeds, so this
// endpoint answers 200 for any well-formed request body.
// @Summary     Ingest an SMS message
// @Description Extract amount and merchant from a bank SMS, classify it, and store the invoice
// @Tags        sms
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string            true "Webhook API key"
// @Param       request   body   ReceiveSMSRequest true "SMS payload"
// @Success     200 {object} models.Invoice "Stored invoice"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sms [post]
func (h *SMSHandler) ReceiveSMS(c *gin.Context) {
	var req ReceiveSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	invoice, err := h.invoiceService.IngestSMS(req.Message)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            "SMS processed",
		"extraction_status": invoice.ExtractionStatus,
		"invoice":           invoice,
	})
}
