package models

import (
	"gorm.io/gorm"
)

// RouteStop assigns one client to one weekday of a route.
// Position orders the stops within that weekday; values are unique per
// (route, weekday) and a client appears at most once per (route, weekday).
type RouteStop struct {
	gorm.Model

	RouteID  uint    `json:"route_id" gorm:"index:idx_stop_route_day"`
	ClientID uint    `json:"client_id"`
	Weekday  Weekday `json:"weekday" gorm:"type:varchar(16);index:idx_stop_route_day" binding:"required"`
	Position int     `json:"position"`

	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}
