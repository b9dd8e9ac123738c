package input

// Mapping holds the axis and button indices of a gamepad layout.
type Mapping struct {
	Name string

	XAxis, YAxis         int
	Axis2X, Axis2Y       int
	LTrigger, RTrigger   int
	DPadX, DPadY         int
	AButton, BButton     int
	XButton, YButton     int
	LBumper, RBumper     int
	SelectButton         int
	StartButton          int
	HomeButton           int
	LStickBtn, RStickBtn int
}

// XBoxMapping is the XInput layout. Window frontends report standard
// gamepads in this order.
var XBoxMapping = Mapping{
	Name:         "xbox",
	XAxis:        0,
	YAxis:        1,
	LTrigger:     2,
	Axis2X:       3,
	Axis2Y:       4,
	RTrigger:     5,
	DPadX:        6,
	DPadY:        7,
	AButton:      0,
	BButton:      1,
	XButton:      2,
	YButton:      3,
	LBumper:      4,
	RBumper:      5,
	SelectButton: 6,
	StartButton:  7,
	HomeButton:   8,
	LStickBtn:    9,
	RStickBtn:    10,
}

// SwitchMapping is the Nintendo Switch Pro layout. It has no analog
// triggers, so LTrigger and RTrigger are -1.
var SwitchMapping = Mapping{
	Name:         "switch",
	XAxis:        0,
	YAxis:        1,
	Axis2X:       2,
	Axis2Y:       3,
	DPadX:        4,
	DPadY:        5,
	LTrigger:     -1,
	RTrigger:     -1,
	YButton:      0,
	BButton:      1,
	AButton:      2,
	XButton:      3,
	LBumper:      4,
	RBumper:      5,
	SelectButton: 9, // minus
	StartButton:  8, // plus
	HomeButton:   12,
	LStickBtn:    10,
	RStickBtn:    11,
}

// MappingByName returns the named layout, defaulting to XBoxMapping.
func MappingByName(name string) Mapping {
	if name == SwitchMapping.Name {
		return SwitchMapping
	}
	return XBoxMapping
}
