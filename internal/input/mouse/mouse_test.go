package mouse

import (
	"testing"
	"time"

	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/input/key"
)

var evsTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func pt(x, y float64) event.Point {
	return event.Point{X: x, Y: y}
}

func kinds(events []event.Event) []event.Kind {
	out := make([]event.Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func expectKinds(t *testing.T, got []event.Event, want ...event.Kind) {
	t.Helper()
	k := kinds(got)
	if len(k) != len(want) {
		t.Fatalf("kinds = %v, want %v", k, want)
	}
	for i := range want {
		if k[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", k, want)
		}
	}
}

func TestNormalizerLeftGesture(t *testing.T) {
	n := NewNormalizer()

	expectKinds(t, n.Feed(Sample{Position: pt(1, 1)}))
	expectKinds(t, n.Feed(Sample{Position: pt(1, 1), Buttons: HeldLeft}), event.LeftMouseDown)

	if !n.IsDragging() {
		t.Fatal("expected gesture in progress after press")
	}

	evs := n.Feed(Sample{Position: pt(3, 4), Buttons: HeldLeft})
	expectKinds(t, evs, event.LeftMouseDrag)
	if evs[0].DownPosition != pt(1, 1) {
		t.Errorf("DownPosition = %+v, want {1 1}", evs[0].DownPosition)
	}
	if evs[0].LastPosition != pt(1, 1) {
		t.Errorf("LastPosition = %+v, want {1 1}", evs[0].LastPosition)
	}

	evs = n.Feed(Sample{Position: pt(5, 4), Buttons: HeldLeft})
	expectKinds(t, evs, event.LeftMouseDrag)
	if evs[0].LastPosition != pt(3, 4) {
		t.Errorf("LastPosition = %+v, want {3 4}", evs[0].LastPosition)
	}

	// No movement, no drag event.
	expectKinds(t, n.Feed(Sample{Position: pt(5, 4), Buttons: HeldLeft}))

	evs = n.Feed(Sample{Position: pt(5, 4)})
	expectKinds(t, evs, event.LeftMouseUp)
	if n.IsDragging() {
		t.Error("gesture should end on release")
	}
}

func TestNormalizerButtonKinds(t *testing.T) {
	tests := []struct {
		held           Buttons
		down, drag, up event.Kind
	}{
		{HeldLeft, event.LeftMouseDown, event.LeftMouseDrag, event.LeftMouseUp},
		{HeldMiddle, event.MiddleMouseDown, event.MiddleMouseDrag, event.MiddleMouseUp},
		{HeldRight, event.RightMouseDown, event.RightMouseDrag, event.RightMouseUp},
	}

	for _, tt := range tests {
		n := NewNormalizer()
		n.Feed(Sample{Position: pt(0, 0)})
		expectKinds(t, n.Feed(Sample{Position: pt(0, 0), Buttons: tt.held}), tt.down)
		expectKinds(t, n.Feed(Sample{Position: pt(1, 0), Buttons: tt.held}), tt.drag)
		expectKinds(t, n.Feed(Sample{Position: pt(1, 0)}), tt.up)
	}
}

func TestNormalizerIgnoresSecondButton(t *testing.T) {
	n := NewNormalizer()
	n.Feed(Sample{Position: pt(0, 0), Buttons: HeldLeft})

	// Right pressed mid gesture is ignored; left still drives it.
	expectKinds(t, n.Feed(Sample{Position: pt(2, 0), Buttons: HeldLeft | HeldRight}), event.LeftMouseDrag)

	// Left released while right still held ends the left gesture.
	expectKinds(t, n.Feed(Sample{Position: pt(2, 0), Buttons: HeldRight}), event.LeftMouseUp)
}

func TestNormalizerMove(t *testing.T) {
	n := NewNormalizer()
	n.Feed(Sample{Position: pt(0, 0)})

	evs := n.Feed(Sample{Position: pt(2, 2), Modifiers: key.ModShift})
	expectKinds(t, evs, event.MouseMove)
	if evs[0].LastPosition != pt(0, 0) {
		t.Errorf("LastPosition = %+v, want {0 0}", evs[0].LastPosition)
	}
	if evs[0].Modifiers != key.ModShift {
		t.Errorf("Modifiers = %v, want Shift", evs[0].Modifiers)
	}
}

func TestNormalizerWheel(t *testing.T) {
	n := NewNormalizer()
	n.Feed(Sample{Position: pt(0, 0)})

	evs := n.Feed(Sample{Position: pt(0, 0), Wheel: -1})
	expectKinds(t, evs, event.MouseWheel)
	if evs[0].WheelDelta != -1 {
		t.Errorf("WheelDelta = %d, want -1", evs[0].WheelDelta)
	}
}

func TestNormalizerLeaveEndsGesture(t *testing.T) {
	n := NewNormalizer()
	n.Feed(Sample{Position: pt(4, 4), Buttons: HeldRight})

	evs := n.Leave(key.ModNone, evsTime)
	expectKinds(t, evs, event.RightMouseUp, event.MouseLeave)
	if evs[0].Position != pt(4, 4) {
		t.Errorf("release Position = %+v, want {4 4}", evs[0].Position)
	}
	if n.IsDragging() {
		t.Error("Leave should end the gesture")
	}
}

func TestNormalizerReset(t *testing.T) {
	n := NewNormalizer()
	n.Feed(Sample{Position: pt(1, 1), Buttons: HeldLeft})
	n.Reset()

	if g := n.Gesture(); g != (Gesture{}) {
		t.Errorf("Gesture() after Reset = %+v", g)
	}
}

func TestNormalizerGestureState(t *testing.T) {
	n := NewNormalizer()
	n.Feed(Sample{Position: pt(1, 2), Buttons: HeldMiddle})
	n.Feed(Sample{Position: pt(3, 4), Buttons: HeldMiddle})

	g := n.Gesture()
	if !g.Active() || g.Button != ButtonMiddle {
		t.Errorf("Gesture() = %+v, want an active middle gesture", g)
	}
	if g.Start != pt(1, 2) || g.Current != pt(3, 4) {
		t.Errorf("Gesture() positions = %+v", g)
	}

	n.Feed(Sample{Position: pt(3, 4)})
	if g := n.Gesture(); g.Active() {
		t.Errorf("Gesture() after release = %+v", g)
	}
}

func TestButtonString(t *testing.T) {
	for b, want := range map[Button]string{
		ButtonNone:   "none",
		ButtonLeft:   "left",
		ButtonMiddle: "middle",
		ButtonRight:  "right",
	} {
		if got := b.String(); got != want {
			t.Errorf("Button(%d).String() = %q, want %q", b, got, want)
		}
	}
}
