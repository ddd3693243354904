package models

import (
	"time"

	"gorm.io/gorm"
)

// ReportStatus is the inspection report lifecycle. The transition is
// one-way: a submitted report and everything under it is immutable.
type ReportStatus string

const (
	ReportDraft     ReportStatus = "DRAFT"
	ReportSubmitted ReportStatus = "SUBMITTED"
)

// InspectionReport aggregates the per-component wear measurements and
// tagged photos taken during one technical inspection visit.
type InspectionReport struct {
	gorm.Model

	VisitID         uint         `json:"visit_id" gorm:"uniqueIndex"`
	EquipmentModel  string       `json:"equipment_model"`
	EquipmentSerial string       `json:"equipment_serial"`
	HourMeter       *float64     `json:"hour_meter"`
	Status          ReportStatus `json:"status" gorm:"type:varchar(16);default:DRAFT"`
	SubmittedAt     *time.Time   `json:"submitted_at"`
	Summary         string       `json:"summary"`

	Measurements []ComponentMeasurement `gorm:"foreignKey:ReportID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"measurements,omitempty"`
	Photos       []ReportPhoto          `gorm:"foreignKey:ReportID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"photos,omitempty"`
}
