package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
	"github.com/dshills/viewprofile/internal/profile"
)

func TestLightBox(t *testing.T) {
	c := canvas.NewSlice(profile.ViewLightBox, canvas.NewImage(10, 10, 10))
	s := newSession(t, c, "")

	s.wheel(key.ModNone, -1)
	assert.Equal(t, 1, c.TopRow)
	s.wheel(key.ModNone, 3)
	assert.Equal(t, 0, c.TopRow)

	s.wheel(key.ModCtrl, 1)
	assert.Equal(t, 3, c.Columns)

	res := s.mouse(event.LeftMouseDown, key.ModNone, 2, 7)
	assert.Equal(t, profile.On(ModeView, event.LeftMouseDrag), res.Invoked)
	assert.Equal(t, canvas.Voxel{2, 7, 5}, c.Location)
}

func TestTimeSeriesVolume(t *testing.T) {
	c := canvas.NewPlot(profile.ViewTimeSeries, canvas.Limits{0, 9}, canvas.Limits{0, 1})
	c.Volumes = 10
	s := newSession(t, c, "")

	s.mouse(event.LeftMouseDown, key.ModCtrl, 1, 0)
	assert.Equal(t, 9, c.Volume)
	s.mouse(event.LeftMouseUp, key.ModCtrl, 1, 0)

	s.mouse(event.LeftMouseDown, key.ModNone, 0.5, 0.5)
	s.mouse(event.LeftMouseDrag, key.ModNone, 0.6, 0.5)
	assert.InDelta(t, -0.9, c.X[0], 1e-9)
	assert.Equal(t, 9, c.Volume)
}

func TestHistogramRange(t *testing.T) {
	c := canvas.NewPlot(profile.ViewHistogram, canvas.Limits{0, 100}, canvas.Limits{0, 1})
	s := newSession(t, c, "")

	s.mouse(event.LeftMouseDown, key.ModCtrl, 0.8, 0.5)
	s.mouse(event.LeftMouseDrag, key.ModCtrl, 0.3, 0.5)
	assert.True(t, c.Dragging)
	s.mouse(event.LeftMouseUp, key.ModCtrl, 0.2, 0.5)
	assert.False(t, c.Dragging)
	assert.Equal(t, canvas.Limits{20, 80}, c.Range)
}

func TestPowerSpectrumZoom(t *testing.T) {
	c := canvas.NewPlot(profile.ViewPowerSpectrum, canvas.Limits{0, 10}, canvas.Limits{0, 10})
	s := newSession(t, c, "")

	res := s.mgr.Dispatch(s.ctx, &event.Event{
		Kind:       event.MouseWheel,
		Position:   event.Point{X: 0.5, Y: 0.5},
		WheelDelta: 1,
	})
	require.True(t, res.Handled())
	assert.InDelta(t, 8.0, c.X.Span(), 1e-9)

	s.keyDown(key.ModCtrl)
	assert.Equal(t, ModePanZoom, s.mode(), "plain plots have no temporary modes")
}

func TestScene3D(t *testing.T) {
	c := canvas.NewScene()
	s := newSession(t, c, "")
	assert.Equal(t, ModeRotate, s.mode())

	s.mouse(event.LeftMouseDown, key.ModNone, 0, 0)
	s.mouse(event.LeftMouseDrag, key.ModNone, 0.5, 0)
	s.mouse(event.LeftMouseUp, key.ModNone, 0.5, 0)
	assert.InDelta(t, 90.0, c.Yaw, 1e-9)

	s.mouse(event.MiddleMouseDown, key.ModNone, 0, 0)
	res := s.mouse(event.MiddleMouseDrag, key.ModNone, 0.1, 0.2)
	s.mouse(event.MiddleMouseUp, key.ModNone, 0.1, 0.2)
	assert.Equal(t, profile.On(ModePan, event.LeftMouseDrag), res.Invoked)
	assert.InDelta(t, 0.1, c.Offset.X, 1e-9)
	assert.InDelta(t, 0.2, c.Offset.Y, 1e-9)

	res = s.mouse(event.LeftMouseDown, key.ModShift, 0.9, 0.9)
	assert.Equal(t, profile.Unhandled, res.Outcome, "pick off the volume finds nothing")
	s.mouse(event.LeftMouseUp, key.ModShift, 0.9, 0.9)

	s.wheel(key.ModCtrl, 1)
	assert.InDelta(t, sceneStep, c.Zoom, 1e-9)

	s.char(key.ModNone, key.KeyRune, 'r')
	assert.Zero(t, c.Yaw)
	assert.Equal(t, 1.0, c.Zoom)
}
