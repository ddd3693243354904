// internal/models/client.go
package models

import (
	"gorm.io/gorm"
)

// Client is a customer site a vendor can schedule and visit.
// Full client CRUD lives outside this core; visits and route stops only
// reference clients by id.
type Client struct {
	gorm.Model

	Name      string `json:"name" binding:"required"`
	TradeName string `json:"trade_name"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
}
