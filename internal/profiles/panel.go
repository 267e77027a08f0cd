package profiles

import (
	"fmt"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/profile"
)

// Wheel and key step factors.
const (
	zoomStep  = 1.25
	sceneStep = 1.1
)

func slicePanel(panel profile.Panel) (*canvas.Slice, error) {
	s, ok := panel.(*canvas.Slice)
	if !ok {
		return nil, fmt.Errorf("%w: want a slice panel, got %T", profile.ErrPanelMismatch, panel)
	}
	return s, nil
}

func plotPanel(panel profile.Panel) (*canvas.Plot, error) {
	p, ok := panel.(*canvas.Plot)
	if !ok {
		return nil, fmt.Errorf("%w: want a plot panel, got %T", profile.ErrPanelMismatch, panel)
	}
	return p, nil
}

func scenePanel(panel profile.Panel) (*canvas.Scene, error) {
	s, ok := panel.(*canvas.Scene)
	if !ok {
		return nil, fmt.Errorf("%w: want a scene panel, got %T", profile.ErrPanelMismatch, panel)
	}
	return s, nil
}

// wheelFactor converts a wheel delta into a multiplicative step.
func wheelFactor(ev *event.Event, step float64) float64 {
	f := 1.0
	for range abs(ev.WheelDelta) {
		f *= step
	}
	if ev.WheelDelta < 0 {
		return 1 / f
	}
	return f
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
