package models

// ComponentType enumerates the six undercarriage wear parts measured during
// a technical inspection.
type ComponentType string

const (
	ComponentTrack       ComponentType = "TRACK"
	ComponentPad         ComponentType = "PAD"
	ComponentLowerRoller ComponentType = "LOWER_ROLLER"
	ComponentUpperRoller ComponentType = "UPPER_ROLLER"
	ComponentIdler       ComponentType = "IDLER"
	ComponentSprocket    ComponentType = "SPROCKET"
)

// ComponentTypes lists all inspected components in report order.
var ComponentTypes = []ComponentType{
	ComponentTrack,
	ComponentPad,
	ComponentLowerRoller,
	ComponentUpperRoller,
	ComponentIdler,
	ComponentSprocket,
}

// ParseComponentType validates a raw string.
func ParseComponentType(raw string) (ComponentType, bool) {
	for _, c := range ComponentTypes {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// MeasurementSide distinguishes the left and right track frames.
type MeasurementSide string

const (
	SideLeft  MeasurementSide = "LEFT"
	SideRight MeasurementSide = "RIGHT"
)

// ParseMeasurementSide validates a raw string.
func ParseMeasurementSide(raw string) (MeasurementSide, bool) {
	switch MeasurementSide(raw) {
	case SideLeft:
		return SideLeft, true
	case SideRight:
		return SideRight, true
	}
	return "", false
}
