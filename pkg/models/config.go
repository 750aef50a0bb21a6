package models

// ModifierKeys names a keyboard-modifier combination gating a quad menu.
type ModifierKeys string

const (
	ModifierNone         ModifierKeys = "NONE"
	ModifierAlt          ModifierKeys = "ALT"
	ModifierCtrl         ModifierKeys = "CTRL"
	ModifierShift        ModifierKeys = "SHIFT"
	ModifierCtrlAlt      ModifierKeys = "CTRL+ALT"
	ModifierCtrlShift    ModifierKeys = "CTRL+SHIFT"
	ModifierShiftAlt     ModifierKeys = "SHIFT+ALT"
	ModifierShiftAltCtrl ModifierKeys = "SHIFT+ALT+CTRL"
)

// DefaultModifierKeys is applied when a configured combination is not recognized.
const DefaultModifierKeys = ModifierCtrlShift

// modifierHostNames maps each combination to the host's internal modifier name.
var modifierHostNames = map[ModifierKeys]string{
	ModifierNone:         "nonePressed",
	ModifierAlt:          "altPressed",
	ModifierCtrl:         "controlPressed",
	ModifierShift:        "shiftPressed",
	ModifierCtrlAlt:      "controlAndAltPressed",
	ModifierCtrlShift:    "shiftAndControlPressed",
	ModifierShiftAlt:     "shiftAndAltPressed",
	ModifierShiftAltCtrl: "shiftAndAltAndControlPressed",
}

// HostName returns the host-internal name for the combination, and whether
// the combination is one of the recognized set.
func (m ModifierKeys) HostName() (string, bool) {
	name, ok := modifierHostNames[m]
	return name, ok
}

// QuadPosition names the screen quadrant a quad menu is created in.
type QuadPosition string

const (
	QuadTopLeft     QuadPosition = "TOP_LEFT"
	QuadTopRight    QuadPosition = "TOP_RIGHT"
	QuadBottomRight QuadPosition = "BOTTOM_RIGHT"
	QuadBottomLeft  QuadPosition = "BOTTOM_LEFT"
)

// DefaultQuadPosition is applied when a configured position is not recognized.
const DefaultQuadPosition = QuadTopRight

var quadHostNames = map[QuadPosition]string{
	QuadTopLeft:     "TopLeft",
	QuadTopRight:    "TopRight",
	QuadBottomRight: "BottomRight",
	QuadBottomLeft:  "BottomLeft",
}

// HostName returns the host-internal quadrant name, and whether the position
// is one of the recognized set.
func (p QuadPosition) HostName() (string, bool) {
	name, ok := quadHostNames[p]
	return name, ok
}

// Config holds everything a generator needs. It is immutable for the
// lifetime of the generator that was built from it.
type Config struct {
	// RootDir is the directory whose structure the menus mirror.
	RootDir string

	MainMenuName string
	QuadMenuName string

	ModifierKeys ModifierKeys
	QuadPosition QuadPosition

	// PrintTree requests a one-time diagnostic dump of the scanned tree.
	PrintTree bool
}

// DefaultConfig provides sensible defaults for everything but RootDir.
func DefaultConfig() Config {
	return Config{
		MainMenuName: "Tools Menu",
		QuadMenuName: "Tools Quad Menu",
		ModifierKeys: DefaultModifierKeys,
		QuadPosition: DefaultQuadPosition,
	}
}
