// Package wear computes undercarriage component wear from measurement
// triples and classifies each side into OK / VERIFY / CRITICAL.
package wear

import (
	"math"

	"visit_tracker/internal/apperrors"
	"visit_tracker/internal/models"
)

// Thresholds: wear up to 70% is normal service, up to 90% needs a second
// look, beyond that the component is past its repair window.
const (
	verifyThreshold   = 70.0
	criticalThreshold = 90.0
)

// SideAssessment is the derived result for one measured side.
type SideAssessment struct {
	WearPercent float64
	Condition   models.WearCondition
}

// Assess computes the wear percentage and condition for one side.
// A nil measured value yields a nil assessment (the side was not taken).
// standard must exceed limit, otherwise the measurement triple is invalid.
func Assess(standard, limit float64, measured *float64) (*SideAssessment, error) {
	if measured == nil {
		return nil, nil
	}
	totalRange := standard - limit
	if totalRange <= 0 {
		return nil, apperrors.NewValidation(
			"standard dimension (%.2f) must be greater than repair limit (%.2f)", standard, limit)
	}
	worn := standard - *measured
	pct := round2(worn / totalRange * 100)
	return &SideAssessment{WearPercent: pct, Condition: Classify(pct)}, nil
}

// Classify maps a wear percentage onto the three-tier condition scale.
func Classify(wearPercent float64) models.WearCondition {
	switch {
	case wearPercent <= verifyThreshold:
		return models.ConditionOK
	case wearPercent <= criticalThreshold:
		return models.ConditionVerify
	default:
		return models.ConditionCritical
	}
}

// Recompute refreshes both derived sides of a measurement in place.
// Sides are independent: a missing left reading never affects the right.
func Recompute(m *models.ComponentMeasurement) error {
	left, err := Assess(m.Standard, m.RepairLimit, m.MeasuredLeft)
	if err != nil {
		return err
	}
	right, err := Assess(m.Standard, m.RepairLimit, m.MeasuredRight)
	if err != nil {
		return err
	}
	m.WearLeft, m.ConditionLeft = nil, nil
	if left != nil {
		m.WearLeft = &left.WearPercent
		m.ConditionLeft = &left.Condition
	}
	m.WearRight, m.ConditionRight = nil, nil
	if right != nil {
		m.WearRight = &right.WearPercent
		m.ConditionRight = &right.Condition
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
