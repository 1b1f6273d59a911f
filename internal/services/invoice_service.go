package services

import (
	"errors"

	"gorm.io/gorm"

	"masroof/internal/classifier"
	apperrors "masroof/internal/errors"
	"masroof/internal/logger"
	"masroof/internal/models"
	"masroof/internal/pagination"
	"masroof/internal/sms"
)

// invoiceService handles SMS ingestion and invoice records.
type invoiceService struct {
	db          *gorm.DB
	ruleService RuleServicer
}

// NewInvoiceService creates a new InvoiceServicer.
func NewInvoiceService(db *gorm.DB, ruleService RuleServicer) InvoiceServicer {
	return &invoiceService{db: db, ruleService: ruleService}
}

// IngestSMS extracts amount and merchant from a raw SMS message, classifies
// the merchant against the current rule set, and persists the invoice.
// Every message is stored regardless of extraction outcome; a failed parse
// is recorded on the invoice, never returned as an error.
func (s *invoiceService) IngestSMS(message string) (*models.Invoice, error) {
	result := sms.Extract(message)

	invoice := &models.Invoice{
		Amount:           result.Amount,
		Merchant:         result.Merchant,
		RawMessage:       result.RawMessage,
		ExtractionStatus: result.Status,
	}

	if result.Status == models.ExtractionSuccess {
		// Rules are re-read on every ingestion so that rule changes apply
		// to the next message without a restart.
		rules, err := s.ruleService.ListRules()
		if err != nil {
			return nil, err
		}

		classification := classifier.Classify(*result.Merchant, rules)
		invoice.Classification = classification.Classification
		invoice.MainCategory = classification.MainCategory
		invoice.SubCategory = classification.SubCategory

		if !classification.Resolved() {
			logger.Get().Infow("no classification rule matched", "merchant", *result.Merchant)
		}
	}

	if err := s.db.Create(invoice).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return invoice, nil
}

// ListInvoices retrieves a paginated list of invoices, newest first.
func (s *invoiceService) ListInvoices(page pagination.PageRequest) (*pagination.PageResponse[models.Invoice], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Invoice{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var invoices []models.Invoice
	if err := s.db.Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&invoices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(invoices, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetInvoiceByID retrieves an invoice by ID.
func (s *invoiceService) GetInvoiceByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &invoice, nil
}

// UpdateClassification applies a human correction to an invoice's
// classification fields. When createRule is set and the invoice has a
// merchant, a matching rule is also created so future messages from the
// same merchant classify automatically; an already-existing rule for that
// merchant is not an error.
func (s *invoiceService) UpdateClassification(
	id uint,
	classification, mainCategory, subCategory string,
	createRule bool,
) (*models.Invoice, error) {
	invoice, err := s.GetInvoiceByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"classification": classification,
		"main_category":  mainCategory,
		"sub_category":   subCategory,
	}
	if err := s.db.Model(invoice).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if createRule && invoice.Merchant != nil && *invoice.Merchant != "" {
		_, err := s.ruleService.CreateRule(*invoice.Merchant, classification, mainCategory, subCategory, nil)
		if err != nil && !errors.Is(err, apperrors.ErrDuplicateRule) {
			return nil, err
		}
	}

	return invoice, nil
}

// DeleteInvoice permanently removes an invoice. Invoices are the audit
// trail of inbound messages, so this is an explicit operator action only.
func (s *invoiceService) DeleteInvoice(id uint) error {
	invoice, err := s.GetInvoiceByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(invoice).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
