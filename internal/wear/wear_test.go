package wear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visit_tracker/internal/apperrors"
	"visit_tracker/internal/models"
)

func f(v float64) *float64 { return &v }

func TestAssess_PadBoundaries(t *testing.T) {
	// Pad dimensions: standard 32mm, repair limit 22mm.
	tests := []struct {
		name      string
		measured  float64
		wantWear  float64
		wantClass models.WearCondition
	}{
		{name: "exactly at OK boundary", measured: 25, wantWear: 70.00, wantClass: models.ConditionOK},
		{name: "inside verify band", measured: 24, wantWear: 80.00, wantClass: models.ConditionVerify},
		{name: "at verify upper boundary", measured: 23, wantWear: 90.00, wantClass: models.ConditionVerify},
		{name: "past the repair limit", measured: 20, wantWear: 120.00, wantClass: models.ConditionCritical},
		{name: "brand new", measured: 32, wantWear: 0, wantClass: models.ConditionOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Assess(32, 22, f(tt.measured))
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantWear, got.WearPercent)
			assert.Equal(t, tt.wantClass, got.Condition)
		})
	}
}

func TestAssess_AbsentMeasurement(t *testing.T) {
	got, err := Assess(32, 22, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAssess_InvalidRange(t *testing.T) {
	_, err := Assess(22, 22, f(20))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = Assess(20, 22, f(19))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAssess_RoundsToTwoDecimals(t *testing.T) {
	// standard 32, limit 22, measured 25.333 → worn 6.667 → 66.67%
	got, err := Assess(32, 22, f(25.333))
	require.NoError(t, err)
	assert.Equal(t, 66.67, got.WearPercent)
}

func TestRecompute_SidesAreIndependent(t *testing.T) {
	m := models.ComponentMeasurement{
		Component:    models.ComponentPad,
		Standard:     32,
		RepairLimit:  22,
		MeasuredLeft: f(24),
	}
	require.NoError(t, Recompute(&m))

	require.NotNil(t, m.WearLeft)
	assert.Equal(t, 80.0, *m.WearLeft)
	assert.Equal(t, models.ConditionVerify, *m.ConditionLeft)
	assert.Nil(t, m.WearRight)
	assert.Nil(t, m.ConditionRight)

	// Taking the right side later never disturbs the left result.
	m.MeasuredRight = f(20)
	require.NoError(t, Recompute(&m))
	assert.Equal(t, 80.0, *m.WearLeft)
	assert.Equal(t, 120.0, *m.WearRight)
	assert.Equal(t, models.ConditionCritical, *m.ConditionRight)
}

func TestRecompute_ClearsStaleResults(t *testing.T) {
	m := models.ComponentMeasurement{
		Standard:     32,
		RepairLimit:  22,
		MeasuredLeft: f(24),
	}
	require.NoError(t, Recompute(&m))
	require.NotNil(t, m.WearLeft)

	m.MeasuredLeft = nil
	require.NoError(t, Recompute(&m))
	assert.Nil(t, m.WearLeft)
	assert.Nil(t, m.ConditionLeft)
}

func TestDefaultsFor_CoversEveryComponent(t *testing.T) {
	for _, c := range models.ComponentTypes {
		dims := DefaultsFor(c)
		assert.Greater(t, dims.Standard, dims.RepairLimit, "component %s", c)
	}
}

func TestClassify_Thresholds(t *testing.T) {
	assert.Equal(t, models.ConditionOK, Classify(0))
	assert.Equal(t, models.ConditionOK, Classify(70))
	assert.Equal(t, models.ConditionVerify, Classify(70.01))
	assert.Equal(t, models.ConditionVerify, Classify(90))
	assert.Equal(t, models.ConditionCritical, Classify(90.01))
}
