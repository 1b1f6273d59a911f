package models

// CategoryRule maps merchant keywords to a spending classification.
// MerchantKeywords is a comma-separated list of match tokens. Rules are
// evaluated in ascending id order and the first match wins, so rule order
// is significant.
type CategoryRule struct {
	Base
	MerchantKeywords string   `gorm:"uniqueIndex;not null" json:"merchant_keywords"`
	Classification   string   `gorm:"not null" json:"classification"`
	MainCategory     string   `gorm:"not null" json:"main_category"`
	SubCategory      string   `gorm:"not null" json:"sub_category"`
	CategoryLimit    *float64 `json:"category_limit,omitempty"`
}
