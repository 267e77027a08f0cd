package session

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/viewprofile/internal/canvas"
	"github.com/dshills/viewprofile/internal/input/event"
	"github.com/dshills/viewprofile/internal/profile"
)

var (
	selectionTint = colorful.Color{R: 0.9, G: 0.2, B: 0.2}
	zoomTint      = colorful.Color{R: 0.2, G: 0.4, B: 0.9}
	black         = colorful.Color{}
	cursorColor   = colorful.Color{R: 0.2, G: 0.9, B: 0.3}
	markColor     = colorful.Color{R: 1, G: 0.85, B: 0.1}
	plotColor     = colorful.Color{R: 0.4, G: 0.7, B: 1}
)

// Draw renders the panel and the status line.
func (s *Session) Draw() {
	s.screen.Clear()
	w, h := s.canvasSize()

	switch p := s.mgr.Panel().(type) {
	case *canvas.Slice:
		s.drawSlice(p, w, h)
	case *canvas.Plot:
		drawPlot(s.screen, p, w, h)
	case *canvas.Scene:
		drawScene(s.screen, p, w, h)
	}

	s.drawText(0, h, s.status(), tcell.StyleDefault.Reverse(true))
	s.screen.Show()
}

func (s *Session) drawText(x, y int, text string, style tcell.Style) {
	w, _ := s.screen.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		s.screen.SetContent(x, y, ' ', nil, style)
	}
}

// sliceCell maps cell (x, y) of a w by h area to slice canvas coordinates.
// The image centre sits at the area centre when the view is not panned.
func sliceCell(sl *canvas.Slice, vp viewport, w, h, x, y int) event.Point {
	xa, ya := sl.PlaneAxes()
	zoom := vp.zoom
	if zoom <= 0 {
		zoom = 1
	}
	return event.Point{
		X: float64(sl.Image.Dims[xa])/2 + vp.pan.X + (float64(x)+0.5-float64(w)/2)/zoom,
		Y: float64(sl.Image.Dims[ya])/2 + vp.pan.Y + (float64(y)+0.5-float64(h)/2)/zoom,
	}
}

func (s *Session) drawSlice(sl *canvas.Slice, w, h int) {
	vp := viewport{zoom: sl.Zoom, pan: sl.Pan}
	lo, hi := sl.DisplayRange()
	xa, ya := sl.PlaneAxes()

	for y := range h {
		for x := range w {
			p := sliceCell(sl, vp, w, h, x, y)
			v, ok := sl.VoxelAt(p)
			if !ok {
				continue
			}

			c := grey(float64(sl.Image.At(v)), lo, hi)
			if sl.Selection.Has(v) {
				c = c.BlendLab(selectionTint, 0.5)
			}
			if !sl.Crop.Contains(v) {
				c = c.BlendRgb(black, 0.6)
			}
			if sl.ZoomRect != nil && inRect(*sl.ZoomRect, p) {
				c = c.BlendLab(zoomTint, 0.4)
			}

			r, fg := ' ', cursorColor
			switch {
			case sl.Cursor != nil && *sl.Cursor == v:
				r = '□'
			case v[xa] == sl.Location[xa] && v[ya] == sl.Location[ya]:
				r = '┼'
			case v[xa] == sl.Location[xa]:
				r = '│'
			case v[ya] == sl.Location[ya]:
				r = '─'
			}
			if a := sl.AnnotationAt(p); a != nil {
				r, fg = annotationRune(a), markColor
			}

			style := tcell.StyleDefault.Background(tcellColor(c)).Foreground(tcellColor(fg))
			s.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func drawPlot(screen tcell.Screen, p *canvas.Plot, w, h int) {
	style := tcell.StyleDefault.Foreground(tcellColor(plotColor))
	for x := range w {
		screen.SetContent(x, h-1, '─', nil, style)
	}
	for y := range h {
		screen.SetContent(0, y, '│', nil, style)
	}
	screen.SetContent(0, h-1, '└', nil, style)

	column := func(v float64) int {
		return int(math.Floor((v - p.X[0]) / p.X.Span() * float64(w)))
	}
	mark := tcell.StyleDefault.Foreground(tcellColor(markColor))

	switch p.ViewType() {
	case profile.ViewTimeSeries:
		if x := column(float64(p.Volume)); x >= 0 && x < w {
			for y := range h - 1 {
				screen.SetContent(x, y, '┆', nil, mark)
			}
		}
	case profile.ViewHistogram:
		bar := tcell.StyleDefault.Foreground(tcellColor(plotColor))
		for x := 1; x < w && len(p.Bins) > 0 && p.Y.Span() > 0; x++ {
			v := p.X[0] + (float64(x)+0.5)/float64(w)*p.X.Span()
			i := int(math.Floor((v - p.BinRange[0]) / p.BinRange.Span() * float64(len(p.Bins))))
			if i < 0 || i >= len(p.Bins) {
				continue
			}
			top := int(math.Round((1 - (p.Bins[i]-p.Y[0])/p.Y.Span()) * float64(h-1)))
			for y := max(top, 0); y < h-1; y++ {
				screen.SetContent(x, y, '█', nil, bar)
			}
		}
		lo, hi := column(p.Range[0]), column(p.Range[1])
		for x := max(lo, 1); x <= hi && x < w; x++ {
			screen.SetContent(x, h-1, '━', nil, mark)
		}
	}
}

func drawScene(screen tcell.Screen, sc *canvas.Scene, w, h int) {
	half := sc.Extent * sc.Zoom
	toCell := func(cx, cy float64) (int, int) {
		return int(math.Floor((cx + 1) / 2 * float64(w))), int(math.Floor((cy + 1) / 2 * float64(h)))
	}
	x0, y0 := toCell(sc.Offset.X-half, sc.Offset.Y-half)
	x1, y1 := toCell(sc.Offset.X+half, sc.Offset.Y+half)

	style := tcell.StyleDefault.Foreground(tcellColor(plotColor))
	for x := x0; x <= x1; x++ {
		screen.SetContent(x, y0, '─', nil, style)
		screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0; y <= y1; y++ {
		screen.SetContent(x0, y, '│', nil, style)
		screen.SetContent(x1, y, '│', nil, style)
	}
	if sc.Picked != nil {
		px, py := toCell(sc.Picked.X+sc.Offset.X, sc.Picked.Y+sc.Offset.Y)
		screen.SetContent(px, py, '+', nil, tcell.StyleDefault.Foreground(tcellColor(markColor)))
	}
}

// panelStatus summarizes the panel state.
func panelStatus(panel profile.Panel) string {
	switch p := panel.(type) {
	case *canvas.Slice:
		lo, hi := p.DisplayRange()
		line := fmt.Sprintf("loc %s  zoom %.2f  range %.0f..%.0f", p.Location, p.Zoom, lo, hi)
		if n := p.Selection.Len(); n > 0 {
			line += fmt.Sprintf("  sel %d", n)
		}
		if p.ViewType() == profile.ViewLightBox {
			line += fmt.Sprintf("  row %d  cols %d", p.TopRow, p.Columns)
		}
		return line
	case *canvas.Plot:
		line := fmt.Sprintf("x %.2f..%.2f  y %.2f..%.2f", p.X[0], p.X[1], p.Y[0], p.Y[1])
		switch p.ViewType() {
		case profile.ViewTimeSeries:
			line += fmt.Sprintf("  vol %d/%d", p.Volume, p.Volumes)
		case profile.ViewHistogram:
			line += fmt.Sprintf("  overlay %.1f..%.1f", p.Range[0], p.Range[1])
		}
		return line
	case *canvas.Scene:
		return fmt.Sprintf("yaw %.0f  pitch %.0f  zoom %.2f", p.Yaw, p.Pitch, p.Zoom)
	}
	return ""
}

// grey maps an intensity onto a grey ramp over the display range.
func grey(v, lo, hi float64) colorful.Color {
	g := 0.0
	if hi > lo {
		g = math.Min(math.Max((v-lo)/(hi-lo), 0), 1)
	}
	return colorful.Color{R: g, G: g, B: g}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func inRect(r canvas.Rect, p event.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func annotationRune(a *canvas.Annotation) rune {
	switch a.Shape {
	case canvas.ShapeText:
		if a.Text != "" {
			return []rune(a.Text)[0]
		}
		return 'T'
	case canvas.ShapePoint:
		return '●'
	case canvas.ShapeArrow:
		return '→'
	}
	return '*'
}
