package profiles

import "github.com/dshills/viewprofile/internal/profile"

// Profile names of the mode table.
const (
	ProfileView     = "view"
	ProfileEdit     = "edit"
	ProfileCrop     = "crop"
	ProfileAnnotate = "annotate"
)

// Ortho view modes.
const (
	ModeNav    profile.Mode = "nav"
	ModePan    profile.Mode = "pan"
	ModeZoom   profile.Mode = "zoom"
	ModeSlice  profile.Mode = "slice"
	ModeBricon profile.Mode = "bricon"
	ModePick   profile.Mode = "pick"
)

// Ortho edit modes.
const (
	ModeSel     profile.Mode = "sel"
	ModeDesel   profile.Mode = "desel"
	ModeSelint  profile.Mode = "selint"
	ModeFill    profile.Mode = "fill"
	ModeChsize  profile.Mode = "chsize"
	ModeChthres profile.Mode = "chthres"
	ModeChrad   profile.Mode = "chrad"
)

// Ortho crop mode.
const ModeCrop profile.Mode = "crop"

// Ortho annotate modes.
const (
	ModeLine    profile.Mode = "line"
	ModeArrow   profile.Mode = "arrow"
	ModePoint   profile.Mode = "point"
	ModeRect    profile.Mode = "rect"
	ModeText    profile.Mode = "text"
	ModeEllipse profile.Mode = "ellipse"
	ModeMove    profile.Mode = "move"
)

// Lightbox, plot and 3D modes.
const (
	ModeView         profile.Mode = "view"
	ModePanZoom      profile.Mode = "panzoom"
	ModeVolume       profile.Mode = "volume"
	ModeOverlayRange profile.Mode = "overlayRange"
	ModeRotate       profile.Mode = "rotate"
)

var viewModes = []profile.Mode{ModeNav, ModePan, ModeZoom, ModeSlice, ModeBricon, ModePick}

// withViewModes returns the ortho view modes followed by extra.
func withViewModes(extra ...profile.Mode) []profile.Mode {
	out := make([]profile.Mode, 0, len(viewModes)+len(extra))
	out = append(out, viewModes...)
	return append(out, extra...)
}
