package models

// ExtractionStatus marks whether amount and merchant were recoverable
// from the raw SMS text.
type ExtractionStatus string

const (
	ExtractionSuccess ExtractionStatus = "success"
	ExtractionFailed  ExtractionStatus = "failed"
)

// Invoice is one ingested SMS notification. The raw message is always
// stored, even when extraction fails, so every inbound text is auditable.
// Amount and Merchant are set together or not at all.
type Invoice struct {
	Base
	Amount           *float64         `json:"amount,omitempty"`
	Merchant         *string          `json:"merchant,omitempty"`
	RawMessage       string           `gorm:"not null" json:"raw_message"`
	ExtractionStatus ExtractionStatus `gorm:"not null" json:"extraction_status"`

	// Classification fields are nil when no rule matched. A human reviewer
	// may correct them after the fact.
	Classification *string `json:"classification,omitempty"`
	MainCategory   *string `json:"main_category,omitempty"`
	SubCategory    *string `json:"sub_category,omitempty"`
}
