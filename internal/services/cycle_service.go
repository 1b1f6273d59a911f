package services

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	apperrors "masroof/internal/errors"
	"masroof/internal/models"
)

// cycleDateLayout is the accepted start date format for new cycles.
const cycleDateLayout = "2006-01-02"

// cycleDays is the nominal length of a budget cycle.
const cycleDays = 30

// cycleService handles budget cycle state transitions.
type cycleService struct {
	db *gorm.DB
	// mu serializes cycle transitions. Deactivate-then-create is a
	// check-then-act sequence; without this, two concurrent starts could
	// both leave an active cycle.
	mu sync.Mutex
}

// NewCycleService creates a new CycleServicer.
func NewCycleService(db *gorm.DB) CycleServicer {
	return &cycleService{db: db}
}

// StartNewCycle closes any active cycle and opens a new one starting at the
// given date. The date is validated before anything is written, so a
// rejected call leaves the prior active cycle untouched.
func (s *cycleService) StartNewCycle(startDate string) (*models.BudgetCycle, error) {
	start, err := time.Parse(cycleDateLayout, startDate)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start_date must be in YYYY-MM-DD format")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cycle := &models.BudgetCycle{
		StartDate: start,
		IsActive:  true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&models.BudgetCycle{}).
			Where("is_active = ?", true).
			Updates(map[string]interface{}{"is_active": false, "end_date": now}).Error; err != nil {
			return err
		}
		return tx.Create(cycle).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return cycle, nil
}

// CurrentCycle returns the active cycle with its progress through the
// nominal 30-day window.
func (s *cycleService) CurrentCycle() (*CurrentCycle, error) {
	var cycle models.BudgetCycle
	if err := s.db.Where("is_active = ?", true).First(&cycle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveCycle
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	daysElapsed := int(time.Since(cycle.StartDate).Hours() / 24)
	daysRemaining := cycleDays - daysElapsed
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	return &CurrentCycle{
		ID:            cycle.ID,
		StartDate:     cycle.StartDate,
		IsActive:      cycle.IsActive,
		DaysElapsed:   daysElapsed,
		DaysRemaining: daysRemaining,
	}, nil
}

// GetCycle retrieves a cycle by ID.
func (s *cycleService) GetCycle(id uint) (*models.BudgetCycle, error) {
	var cycle models.BudgetCycle
	if err := s.db.First(&cycle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCycleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &cycle, nil
}
