package camera

// Action is a set of logical movement actions held during a tick.
type Action uint8

const (
	MoveForward Action = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
)

// Buttons is the mouse button bitmask sampled for a tick.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
)

// Input is the input snapshot for a single tick. It is sampled once by the caller
// and used for both translation and rotation of that tick.
type Input struct {
	Actions Action
	MouseDX int // relative motion since the previous sample
	MouseDY int // positive is a downward drag
	Buttons Buttons
}

// Held reports whether the action is down.
func (in Input) Held(a Action) bool {
	return in.Actions&a != 0
}

// axis returns 1, 0 or -1 for a pair of opposing actions.
func (in Input) axis(positive, negative Action) float32 {
	var v float32
	if in.Held(positive) {
		v++
	}
	if in.Held(negative) {
		v--
	}
	return v
}

// mouseEffect is what a mouse drag does for a given mode and button state.
type mouseEffect uint8

const (
	effectNone mouseEffect = iota
	effectLook             // pitch += -dy*look, yaw += dx*look
	effectYawAndDepth      // yaw += dx*look, origin.z += dy*move
	effectVerticalPan      // origin.y += dy*move
)

const (
	modeFly = iota
	modeInspect
)

// mouseTable maps mode x buttons to an effect. The button index is the raw Buttons
// value: 0 none, 1 left, 2 right, 3 both. Inspect mode repeats effectLook for every
// held combination.
var mouseTable = [2][4]mouseEffect{
	modeFly: {
		0:                        effectNone,
		ButtonLeft:               effectYawAndDepth,
		ButtonRight:              effectLook,
		ButtonLeft | ButtonRight: effectVerticalPan,
	},
	modeInspect: {
		0:                        effectNone,
		ButtonLeft:               effectLook,
		ButtonRight:              effectLook,
		ButtonLeft | ButtonRight: effectLook,
	},
}

func lookupMouseEffect(inspect bool, b Buttons) mouseEffect {
	mode := modeFly
	if inspect {
		mode = modeInspect
	}
	return mouseTable[mode][b&(ButtonLeft|ButtonRight)]
}

func (e mouseEffect) String() string {
	switch e {
	case effectLook:
		return "look"
	case effectYawAndDepth:
		return "yaw+depth"
	case effectVerticalPan:
		return "vertical-pan"
	default:
		return "none"
	}
}
