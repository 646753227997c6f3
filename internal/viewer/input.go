package viewer

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionSpinYUp
	ActionSpinYDown
	ActionSpinZLeft
	ActionSpinZRight
	ActionSpinXLeft
	ActionSpinXRight
	ActionCameraForward
	ActionCameraBack
	ActionCameraTurnLeft
	ActionCameraTurnRight
	ActionRandomSpin
	ActionReset
	ActionToggleTexture
	ActionToggleWireframe
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:            "none",
	ActionSpinYUp:         "spin-y+",
	ActionSpinYDown:       "spin-y-",
	ActionSpinZLeft:       "spin-z+",
	ActionSpinZRight:      "spin-z-",
	ActionSpinXLeft:       "spin-x+",
	ActionSpinXRight:      "spin-x-",
	ActionCameraForward:   "camera-forward",
	ActionCameraBack:      "camera-back",
	ActionCameraTurnLeft:  "camera-left",
	ActionCameraTurnRight: "camera-right",
	ActionRandomSpin:      "random-spin",
	ActionReset:           "reset",
	ActionToggleTexture:   "toggle-texture",
	ActionToggleWireframe: "toggle-wireframe",
	ActionQuit:            "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Keys lists key names in the order a front end should try them, using
// the lower-case names terminals report ("up", "space", "escape").
var Keys = []string{
	"w", "s", "a", "d", "q", "e",
	"up", "down", "left", "right",
	"space", "r", "t", "x",
	"escape", "ctrl+c",
}

var keyActions = map[string]Action{
	"w":      ActionSpinYUp,
	"s":      ActionSpinYDown,
	"a":      ActionSpinZLeft,
	"d":      ActionSpinZRight,
	"q":      ActionSpinXLeft,
	"e":      ActionSpinXRight,
	"up":     ActionCameraForward,
	"down":   ActionCameraBack,
	"left":   ActionCameraTurnLeft,
	"right":  ActionCameraTurnRight,
	"space":  ActionRandomSpin,
	"r":      ActionReset,
	"t":      ActionToggleTexture,
	"x":      ActionToggleWireframe,
	"escape": ActionQuit,
	"ctrl+c": ActionQuit,
}

// ActionForKey maps a key name to its action.
func ActionForKey(key string) Action {
	return keyActions[key]
}

// Help describes the key bindings for usage output.
const Help = `  W/S         - Spin about Y
  A/D         - Spin about Z
  Q/E         - Spin about X
  Up/Down     - Move camera forward/back
  Left/Right  - Turn camera
  Space       - Random spin
  R           - Reset view
  T           - Toggle texture
  X           - Toggle wireframe
  Esc         - Quit
`
