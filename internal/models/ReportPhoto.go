package models

import (
	"gorm.io/gorm"
)

// ReportPhoto is a stored photo URL tagged by component and side.
// Upload mechanics live behind the photo store; the report only keeps the
// durable URL and its tags.
type ReportPhoto struct {
	gorm.Model

	ReportID  uint            `json:"report_id" gorm:"index"`
	Component ComponentType   `json:"component" gorm:"type:varchar(16)"`
	Side      MeasurementSide `json:"side" gorm:"type:varchar(8)"`
	URL       string          `json:"url"`
	Caption   string          `json:"caption"`
}
