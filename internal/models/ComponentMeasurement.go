package models

import (
	"gorm.io/gorm"
)

// WearCondition is the three-tier classification derived from the wear
// percentage of one measured side.
type WearCondition string

const (
	ConditionOK       WearCondition = "OK"
	ConditionVerify   WearCondition = "VERIFY"
	ConditionCritical WearCondition = "CRITICAL"
)

// ComponentMeasurement holds the measurement triple for one component:
// standard dimension, repair limit and the measured values per side.
// Wear percentage and condition are recomputed whenever standard, limit or
// a side's measured value changes; the two sides are independent.
type ComponentMeasurement struct {
	gorm.Model

	ReportID  uint          `json:"report_id" gorm:"index"`
	Component ComponentType `json:"component" gorm:"type:varchar(16)"`

	Standard    float64 `json:"standard"`
	RepairLimit float64 `json:"repair_limit"`

	MeasuredLeft  *float64 `json:"measured_left"`
	MeasuredRight *float64 `json:"measured_right"`

	WearLeft       *float64       `json:"wear_left"`
	WearRight      *float64       `json:"wear_right"`
	ConditionLeft  *WearCondition `json:"condition_left" gorm:"type:varchar(16)"`
	ConditionRight *WearCondition `json:"condition_right" gorm:"type:varchar(16)"`
}
