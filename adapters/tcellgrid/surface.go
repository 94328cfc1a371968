package tcellgrid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tekugo/gridkit/grid"
)

// Surface implements grid.PaintSurface over a tcell.Screen. It tracks a
// clip stack the way the teacher's Renderer tracks a viewport stack
// (renderer.go's clip/unclip), except directly as a rectangle
// intersection rather than a nested Screen wrapper, since grid already
// confines every draw call to cell coordinates within the clip.
type Surface struct {
	Screen tcell.Screen

	// Normal and Selected style the two backgrounds grid distinguishes
	// (cellBackColor's 0 and 0x1 sentinels); a host wanting richer
	// theming should drive DrawThemedBackground through a ThemeFunc
	// instead of relying on these two flat styles.
	Normal   tcell.Style
	Selected tcell.Style
	Header   tcell.Style

	// ThemeFunc, if set, is tried by DrawThemedBackground before falling
	// back to Normal/Selected/Header; returning ok=false lets grid fill
	// the rect itself with DrawEdge/FillRect instead.
	ThemeFunc func(r grid.Rect, kind grid.BackgroundKind) (tcell.Style, bool)

	clips []grid.Rect
}

var _ grid.PaintSurface = (*Surface)(nil)

// NewSurface creates a Surface with the teacher's default terminal
// palette (white on black, selected cells reverse-video, header cells
// bold).
func NewSurface(s tcell.Screen) *Surface {
	normal := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	return &Surface{
		Screen:   s,
		Normal:   normal,
		Selected: normal.Reverse(true),
		Header:   normal.Bold(true),
	}
}

func (s *Surface) ClipPush(r grid.Rect) {
	if len(s.clips) > 0 {
		r = s.clips[len(s.clips)-1].Intersect(r)
	}
	s.clips = append(s.clips, r)
}

func (s *Surface) ClipPop() {
	if len(s.clips) > 0 {
		s.clips = s.clips[:len(s.clips)-1]
	}
}

func (s *Surface) clip() grid.Rect {
	if len(s.clips) == 0 {
		w, h := s.Screen.Size()
		return grid.Rect{X0: 0, Y0: 0, X1: w, Y1: h}
	}
	return s.clips[len(s.clips)-1]
}

func (s *Surface) inClip(x, y int) bool {
	c := s.clip()
	return x >= c.X0 && x < c.X1 && y >= c.Y0 && y < c.Y1
}

func (s *Surface) styleFor(color grid.Color) tcell.Style {
	switch color {
	case 0:
		return s.Normal
	case 1:
		return s.Selected
	default:
		return s.Normal.Foreground(tcell.NewHexColor(int32(color)))
	}
}

func (s *Surface) FillRect(r grid.Rect, color grid.Color) {
	st := s.styleFor(color)
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			if s.inClip(x, y) {
				s.Screen.SetContent(x, y, ' ', nil, st)
			}
		}
	}
}

// DrawEdge draws a single-line box around r, raised meaning a normal
// border and !raised a reverse-video one; grid uses this for header
// cells and the dead corner when no theme is plugged in.
func (s *Surface) DrawEdge(r grid.Rect, raised bool) {
	if r.Empty() {
		return
	}
	st := s.Header
	if !raised {
		st = st.Reverse(true)
	}
	s.box(r, st)
}

func (s *Surface) box(r grid.Rect, st tcell.Style) {
	x0, y0, x1, y1 := r.X0, r.Y0, r.X1-1, r.Y1-1
	s.set(x0, y0, tcell.RuneULCorner, st)
	s.set(x1, y0, tcell.RuneURCorner, st)
	s.set(x0, y1, tcell.RuneLLCorner, st)
	s.set(x1, y1, tcell.RuneLRCorner, st)
	for x := x0 + 1; x < x1; x++ {
		s.set(x, y0, tcell.RuneHLine, st)
		s.set(x, y1, tcell.RuneHLine, st)
	}
	for y := y0 + 1; y < y1; y++ {
		s.set(x0, y, tcell.RuneVLine, st)
		s.set(x1, y, tcell.RuneVLine, st)
	}
}

func (s *Surface) set(x, y int, ch rune, st tcell.Style) {
	if s.inClip(x, y) {
		s.Screen.SetContent(x, y, ch, nil, st)
	}
}

func (s *Surface) DrawThemedBackground(r grid.Rect, kind grid.BackgroundKind) bool {
	if s.ThemeFunc == nil {
		return false
	}
	st, ok := s.ThemeFunc(r, kind)
	if !ok {
		return false
	}
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			s.set(x, y, ' ', st)
		}
	}
	return true
}

// DrawText draws text left-to-right starting at a position resolved
// from h/v alignment within r, padding the remainder with the
// background style. Grid has already ellipsis-truncated text to r's
// width (paint.go), so this never needs to truncate itself.
func (s *Surface) DrawText(r grid.Rect, text string, color grid.Color, h grid.HAlign, v grid.VAlign) {
	if r.Empty() {
		return
	}
	st := s.styleFor(color)
	runes := []rune(text)
	width := r.X1 - r.X0
	x0 := r.X0
	switch h {
	case grid.HAlignCenter:
		x0 = r.X0 + max0(width-len(runes))/2
	case grid.HAlignRight:
		x0 = r.X1 - len(runes)
	}
	y0 := r.Y0
	switch v {
	case grid.VAlignCenter:
		y0 = r.Y0 + max0(r.Y1-r.Y0-1)/2
	case grid.VAlignBottom:
		y0 = r.Y1 - 1
	}
	for x := r.X0; x < r.X1; x++ {
		s.set(x, y0, ' ', st)
	}
	for i, ch := range runes {
		x := x0 + i
		if x < r.X0 || x >= r.X1 {
			continue
		}
		s.set(x, y0, ch, st)
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// DrawLine draws a straight horizontal or vertical line of box-drawing
// characters between from and to; grid only ever calls this axis-
// aligned, for grid lines (paint.go's paintGridLines).
func (s *Surface) DrawLine(from, to grid.Point, color grid.Color) {
	st := s.styleFor(color)
	if from.Y == to.Y {
		y := from.Y
		x0, x1 := from.X, to.X
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := x0; x < x1; x++ {
			s.set(x, y, tcell.RuneHLine, st)
		}
		return
	}
	x := from.X
	y0, y1 := from.Y, to.Y
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y < y1; y++ {
		s.set(x, y, tcell.RuneVLine, st)
	}
}

func (s *Surface) DrawFocusRect(r grid.Rect) {
	s.box(r, s.Normal.Reverse(true))
}
