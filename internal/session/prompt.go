package session

import (
	"github.com/gdamore/tcell/v2"
)

// prompt reads a line of text on the status line. Enter accepts, Escape
// cancels. Events other than keys are dropped while the prompt is open.
func (s *Session) prompt(label string) (string, bool) {
	_, h := s.canvasSize()
	var buf []rune

	for {
		s.drawText(0, h, label+": "+string(buf), tcell.StyleDefault.Reverse(true))
		s.screen.Show()

		ev := s.screen.PollEvent()
		if ev == nil {
			return "", false
		}
		e, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		switch e.Key() {
		case tcell.KeyEnter:
			return string(buf), true
		case tcell.KeyEscape:
			return "", false
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case tcell.KeyRune:
			buf = append(buf, e.Rune())
		}
	}
}
