package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"visit_tracker/internal/apperrors"
	"visit_tracker/internal/models"
)

// MarkService keeps the "visited today" ticks a vendor sets while working
// through a day. Marks are convenience annotations only; the visit
// lifecycle and the daily agenda never read them.
type MarkService struct {
	db *gorm.DB
}

// NewMarkService creates a new mark service
func NewMarkService(db *gorm.DB) *MarkService {
	return &MarkService{db: db}
}

// Set ticks a client for a vendor on a date. Setting an existing mark is a
// no-op rather than an error.
func (s *MarkService) Set(vendorID, clientID uint, date time.Time) (*models.DailyMark, error) {
	if err := s.db.First(&models.Client{}, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("client", clientID)
		}
		return nil, err
	}

	day := dateOnly(date)
	var mark models.DailyMark
	err := s.db.Where("vendor_id = ? AND client_id = ? AND date = ?", vendorID, clientID, day).
		First(&mark).Error
	if err == nil {
		return &mark, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	mark = models.DailyMark{VendorID: vendorID, ClientID: clientID, Date: day}
	if err := s.db.Create(&mark).Error; err != nil {
		return nil, err
	}
	return &mark, nil
}

// Clear removes a tick. Clearing an absent mark is a no-op.
func (s *MarkService) Clear(vendorID, clientID uint, date time.Time) error {
	day := dateOnly(date)
	return s.db.Where("vendor_id = ? AND client_id = ? AND date = ?", vendorID, clientID, day).
		Delete(&models.DailyMark{}).Error
}

// List returns a vendor's marks for one date.
func (s *MarkService) List(vendorID uint, date time.Time) ([]models.DailyMark, error) {
	day := dateOnly(date)
	var marks []models.DailyMark
	err := s.db.Where("vendor_id = ? AND date = ?", vendorID, day).
		Order("client_id ASC").
		Find(&marks).Error
	if err != nil {
		return nil, err
	}
	return marks, nil
}
