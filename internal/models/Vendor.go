// internal/models/vendor.go
package models

import (
	"gorm.io/gorm"
)

// Vendor represents a field salesperson who owns routes and performs visits.
type Vendor struct {
	gorm.Model

	Name   string `json:"name" binding:"required"`
	Email  string `gorm:"unique" json:"email"`
	Phone  string `json:"phone"`
	Region string `json:"region"`

	Routes []Route `gorm:"foreignKey:VendorID" json:"routes,omitempty"`
}
