package models

import "time"

// BudgetCycle is a recurring accounting window used for spend tracking.
// At most one cycle is active at a time; starting a new cycle closes the
// previous one by stamping its end date. A closed cycle never reactivates.
type BudgetCycle struct {
	Base
	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  bool       `gorm:"default:false" json:"is_active"`
}
