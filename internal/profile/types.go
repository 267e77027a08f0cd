package profile

import (
	"fmt"
	"strings"

	"github.com/dshills/viewprofile/internal/input/event"
)

// Mode names an interaction state of a handler type, such as "nav" or
// "zoom". Modes are scoped to their handler type.
type Mode string

// ViewType identifies a kind of view panel.
type ViewType uint8

const (
	// ViewNone is the zero ViewType.
	ViewNone ViewType = iota
	// ViewOrtho is the three-plane orthographic view.
	ViewOrtho
	// ViewLightBox is the slice grid view.
	ViewLightBox
	// ViewTimeSeries plots voxel intensities over time.
	ViewTimeSeries
	// ViewHistogram plots the intensity histogram.
	ViewHistogram
	// ViewPowerSpectrum plots the power spectrum of a time series.
	ViewPowerSpectrum
	// ViewScene3D is the 3D surface and volume view.
	ViewScene3D
)

var viewNames = map[ViewType]string{
	ViewOrtho:         "ortho",
	ViewLightBox:      "lightbox",
	ViewTimeSeries:    "timeseries",
	ViewHistogram:     "histogram",
	ViewPowerSpectrum: "powerspectrum",
	ViewScene3D:       "scene3d",
}

// String returns the view name.
func (v ViewType) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("ViewType(%d)", v)
}

// ParseViewType returns the ViewType with the given name (case-insensitive).
func ParseViewType(name string) (ViewType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, n := range viewNames {
		if n == name {
			return v, nil
		}
	}
	return ViewNone, fmt.Errorf("%w: view %q", ErrNotFound, name)
}

// ViewTypes returns every known view type in declaration order.
func ViewTypes() []ViewType {
	return []ViewType{ViewOrtho, ViewLightBox, ViewTimeSeries, ViewHistogram, ViewPowerSpectrum, ViewScene3D}
}

// Trigger is a (Mode, event kind) pair, the key of method and redirect
// tables.
type Trigger struct {
	Mode  Mode
	Event event.Kind
}

// On is shorthand for building a Trigger.
func On(mode Mode, kind event.Kind) Trigger {
	return Trigger{Mode: mode, Event: kind}
}

// String returns "mode/Event".
func (t Trigger) String() string {
	return string(t.Mode) + "/" + t.Event.String()
}

// Panel is a view panel that owns a profile. Handlers receive the panel they
// were created for and type-assert it to the canvas they operate on.
type Panel interface {
	ViewType() ViewType
}
