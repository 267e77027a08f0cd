package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
)

func TestCropDragsEdge(t *testing.T) {
	s, c := newOrtho(t, ProfileCrop)
	assert.Equal(t, ModeCrop, s.mode())

	s.mouse(event.LeftMouseDown, key.ModNone, 0.2, 5)
	s.mouse(event.LeftMouseDrag, key.ModNone, 2.5, 5)
	s.mouse(event.LeftMouseUp, key.ModNone, 3.5, 5)
	assert.Equal(t, canvas.Voxel{3, 0, 0}, c.Crop.Lo)
	assert.Equal(t, canvas.Voxel{9, 9, 9}, c.Crop.Hi)
}

func TestCropShiftNavigates(t *testing.T) {
	s, c := newOrtho(t, ProfileCrop)

	s.mouse(event.LeftMouseDown, key.ModShift, 1, 2)
	assert.Equal(t, ModeNav, s.mode())
	s.mouse(event.LeftMouseUp, key.ModShift, 1, 2)
	assert.Equal(t, canvas.Voxel{1, 2, 5}, c.Location)
	assert.Equal(t, canvas.Voxel{}, c.Crop.Lo, "crop box untouched")
}
