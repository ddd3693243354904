package wear

import "visit_tracker/internal/models"

// Dimensions is a component's factory standard and its repair limit, in mm.
type Dimensions struct {
	Standard    float64
	RepairLimit float64
}

// componentDefaults seeds a fresh report's measurements. The pairs are
// starting values only; inspectors adjust them per machine model while the
// report is still a draft.
var componentDefaults = map[models.ComponentType]Dimensions{
	models.ComponentTrack:       {Standard: 108.0, RepairLimit: 98.0},
	models.ComponentPad:         {Standard: 32.0, RepairLimit: 22.0},
	models.ComponentLowerRoller: {Standard: 168.0, RepairLimit: 156.0},
	models.ComponentUpperRoller: {Standard: 135.0, RepairLimit: 126.0},
	models.ComponentIdler:       {Standard: 22.0, RepairLimit: 12.0},
	models.ComponentSprocket:    {Standard: 90.0, RepairLimit: 78.0},
}

// DefaultsFor returns the seed dimensions for a component type.
func DefaultsFor(c models.ComponentType) Dimensions {
	return componentDefaults[c]
}
