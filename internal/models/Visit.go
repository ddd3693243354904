package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// VisitStatus is derived from the check-in/check-out timestamps and is
// never persisted, so the stored record and the displayed status cannot
// drift apart.
type VisitStatus string

const (
	VisitScheduled  VisitStatus = "SCHEDULED"
	VisitInProgress VisitStatus = "IN_PROGRESS"
	VisitCompleted  VisitStatus = "COMPLETED"
)

// Visit is one dated occurrence of a vendor meeting a client, tracked
// through check-in and check-out. Coordinates and the resolved address are
// optional enrichment; their absence never blocks the lifecycle.
type Visit struct {
	gorm.Model

	ClientID      uint      `json:"client_id" gorm:"index"`
	VendorID      uint      `json:"vendor_id" gorm:"index"`
	ScheduledDate time.Time `json:"scheduled_date" gorm:"index"`

	CheckInAt      *time.Time `json:"check_in_at"`
	CheckInLat     *float64   `json:"check_in_lat"`
	CheckInLng     *float64   `json:"check_in_lng"`
	CheckInAddress *string    `json:"check_in_address"`

	CheckOutAt      *time.Time `json:"check_out_at"`
	CheckOutLat     *float64   `json:"check_out_lat"`
	CheckOutLng     *float64   `json:"check_out_lng"`
	CheckOutAddress *string    `json:"check_out_address"`

	Notes              string `json:"notes"`
	InspectionReportID *uint  `json:"inspection_report_id"`

	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// Status computes the lifecycle state from timestamp presence.
func (v *Visit) Status() VisitStatus {
	switch {
	case v.CheckInAt == nil:
		return VisitScheduled
	case v.CheckOutAt == nil:
		return VisitInProgress
	default:
		return VisitCompleted
	}
}

// DurationMinutes returns the whole-minute span between check-in and
// check-out, or nil while the visit is not completed.
func (v *Visit) DurationMinutes() *int {
	if v.CheckInAt == nil || v.CheckOutAt == nil {
		return nil
	}
	mins := int(math.Round(v.CheckOutAt.Sub(*v.CheckInAt).Minutes()))
	return &mins
}
