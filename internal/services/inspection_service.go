package services

import (
	"errors"
	"io"
	"time"

	"gorm.io/gorm"

	"visit_tracker/internal/apperrors"
	"visit_tracker/internal/models"
	"visit_tracker/internal/storage"
	"visit_tracker/internal/wear"
)

// InspectionService manages inspection reports: one per visit, seeded with
// a measurement row per component type, freely editable while Draft and
// frozen forever once Submitted.
type InspectionService struct {
	db     *gorm.DB
	photos storage.PhotoStore
}

// NewInspectionService creates a new inspection service
func NewInspectionService(db *gorm.DB, photos storage.PhotoStore) *InspectionService {
	return &InspectionService{db: db, photos: photos}
}

// ReportInput carries the equipment identification for a new report.
type ReportInput struct {
	EquipmentModel  string   `json:"equipment_model" binding:"required"`
	EquipmentSerial string   `json:"equipment_serial"`
	HourMeter       *float64 `json:"hour_meter"`
	Summary         string   `json:"summary"`
}

// MeasurementPatch updates a measurement while the report is a draft.
// Omitted fields keep their values; changed dimensions or readings trigger
// recomputation of the affected sides.
type MeasurementPatch struct {
	Standard      *float64 `json:"standard"`
	RepairLimit   *float64 `json:"repair_limit"`
	MeasuredLeft  *float64 `json:"measured_left"`
	MeasuredRight *float64 `json:"measured_right"`
}

// CreateReport opens a draft report for a visit, seeding one measurement
// per component type with its default standard/limit pair.
func (s *InspectionService) CreateReport(visitID uint, input ReportInput) (*models.InspectionReport, error) {
	var visit models.Visit
	if err := s.db.First(&visit, visitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("visit", visitID)
		}
		return nil, err
	}
	if visit.InspectionReportID != nil {
		return nil, apperrors.NewConflict("visit %d already has inspection report %d", visitID, *visit.InspectionReportID)
	}

	report := models.InspectionReport{
		VisitID:         visitID,
		EquipmentModel:  input.EquipmentModel,
		EquipmentSerial: input.EquipmentSerial,
		HourMeter:       input.HourMeter,
		Status:          models.ReportDraft,
		Summary:         input.Summary,
	}
	for _, component := range models.ComponentTypes {
		dims := wear.DefaultsFor(component)
		report.Measurements = append(report.Measurements, models.ComponentMeasurement{
			Component:   component,
			Standard:    dims.Standard,
			RepairLimit: dims.RepairLimit,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		return tx.Model(&visit).Update("inspection_report_id", report.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetReport loads a report with measurements and photos.
func (s *InspectionService) GetReport(reportID uint) (*models.InspectionReport, error) {
	var report models.InspectionReport
	err := s.db.
		Preload("Measurements", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Photos").
		First(&report, reportID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("report", reportID)
		}
		return nil, err
	}
	return &report, nil
}

// UpdateMeasurement patches one measurement of a draft report and
// recomputes the derived wear values for both sides.
func (s *InspectionService) UpdateMeasurement(reportID, measurementID uint, patch MeasurementPatch) (*models.ComponentMeasurement, error) {
	if err := s.requireDraft(reportID); err != nil {
		return nil, err
	}

	var m models.ComponentMeasurement
	if err := s.db.Where("id = ? AND report_id = ?", measurementID, reportID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("measurement", measurementID)
		}
		return nil, err
	}

	if patch.Standard != nil {
		m.Standard = *patch.Standard
	}
	if patch.RepairLimit != nil {
		m.RepairLimit = *patch.RepairLimit
	}
	if patch.MeasuredLeft != nil {
		m.MeasuredLeft = patch.MeasuredLeft
	}
	if patch.MeasuredRight != nil {
		m.MeasuredRight = patch.MeasuredRight
	}

	if err := wear.Recompute(&m); err != nil {
		return nil, err
	}
	if err := s.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateSummary replaces the free-text summary of a draft report.
func (s *InspectionService) UpdateSummary(reportID uint, summary string) error {
	if err := s.requireDraft(reportID); err != nil {
		return err
	}
	return s.db.Model(&models.InspectionReport{Model: gorm.Model{ID: reportID}}).
		Update("summary", summary).Error
}

// AddPhoto stores image bytes through the photo store and records the
// resulting URL tagged by component and side.
func (s *InspectionService) AddPhoto(reportID uint, component models.ComponentType, side models.MeasurementSide, filename string, r io.Reader, caption string) (*models.ReportPhoto, error) {
	if _, ok := models.ParseComponentType(string(component)); !ok {
		return nil, apperrors.NewValidation("unknown component %q", string(component))
	}
	if _, ok := models.ParseMeasurementSide(string(side)); !ok {
		return nil, apperrors.NewValidation("unknown side %q", string(side))
	}
	if err := s.requireDraft(reportID); err != nil {
		return nil, err
	}

	url, err := s.photos.Save(filename, r)
	if err != nil {
		return nil, err
	}

	photo := models.ReportPhoto{
		ReportID:  reportID,
		Component: component,
		Side:      side,
		URL:       url,
		Caption:   caption,
	}
	if err := s.db.Create(&photo).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// RemovePhoto deletes a tagged photo record from a draft report.
func (s *InspectionService) RemovePhoto(reportID, photoID uint) error {
	if err := s.requireDraft(reportID); err != nil {
		return err
	}
	var photo models.ReportPhoto
	if err := s.db.Where("id = ? AND report_id = ?", photoID, reportID).First(&photo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("photo", photoID)
		}
		return err
	}
	return s.db.Delete(&photo).Error
}

// Submit locks the report. It requires at least one measured side across
// the components; afterwards every edit attempt fails with a conflict.
func (s *InspectionService) Submit(reportID uint) (*models.InspectionReport, error) {
	report, err := s.GetReport(reportID)
	if err != nil {
		return nil, err
	}
	if report.Status == models.ReportSubmitted {
		return nil, apperrors.NewConflict("report %d is already submitted", reportID)
	}

	measured := false
	for _, m := range report.Measurements {
		if m.MeasuredLeft != nil || m.MeasuredRight != nil {
			measured = true
			break
		}
	}
	if !measured {
		return nil, apperrors.NewConflict("report %d has no measured side to submit", reportID)
	}

	now := time.Now().UTC()
	report.Status = models.ReportSubmitted
	report.SubmittedAt = &now
	if err := s.db.Model(report).Updates(map[string]any{
		"status":       models.ReportSubmitted,
		"submitted_at": now,
	}).Error; err != nil {
		return nil, err
	}
	return report, nil
}

// requireDraft loads the report header and rejects edits once submitted.
func (s *InspectionService) requireDraft(reportID uint) error {
	var report models.InspectionReport
	if err := s.db.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("report", reportID)
		}
		return err
	}
	if report.Status == models.ReportSubmitted {
		return apperrors.NewConflict("report %d is submitted and immutable", reportID)
	}
	return nil
}
