package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyMark is a vendor's non-authoritative "visited today" tick for a
// client on a given date. It is pure presentation convenience: the visit
// lifecycle and the daily agenda never consult it.
type DailyMark struct {
	gorm.Model

	VendorID uint      `json:"vendor_id" gorm:"index:idx_mark_vendor_date"`
	ClientID uint      `json:"client_id"`
	Date     time.Time `json:"date" gorm:"index:idx_mark_vendor_date"`
}
