package models

import (
	"gorm.io/gorm"
)

// Route is a vendor's weekly visiting plan.
// A vendor can keep multiple routes but at most one may be active at a time;
// the active one drives the daily agenda.
type Route struct {
	gorm.Model

	Name     string `json:"name" binding:"required"`
	VendorID uint   `json:"vendor_id" gorm:"index"`
	Active   bool   `json:"active" gorm:"default:true"`

	// Associations
	Stops []RouteStop `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"stops,omitempty"`
}
