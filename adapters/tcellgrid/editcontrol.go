package tcellgrid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tekugo/gridkit/grid"
)

// EditControl implements grid.EditControl as a single-line overlay
// drawn directly onto a tcell.Screen, grounded on the teacher's Input
// widget (input.go) for cursor/scroll-offset bookkeeping, simplified to
// the one line grid.EditControl needs. It keeps no text selection:
// SelectAll does nothing, and the cursor starts at the end of the text.
type EditControl struct {
	screen tcell.Screen
	style  tcell.Style
	rect   grid.Rect

	text   []rune
	cursor int
	offset int

	onCommit    func(string)
	onCancel    func()
	onKillFocus func()

	// active points at the host's "currently open edit" slot (see
	// NewEditControlFactory); Close clears it so Dispatch falls back to
	// routing keys to View.KeyDown again.
	active **EditControl
}

var _ grid.EditControl = (*EditControl)(nil)

// NewEditControlFactory returns a func() grid.EditControl suitable for
// View.EditFactory, drawing onto screen with style. Each control it
// creates registers itself into *active as soon as it is created and
// clears *active on Close, so Dispatch can tell whether a label edit is
// in progress.
func NewEditControlFactory(screen tcell.Screen, style tcell.Style, active **EditControl) func() grid.EditControl {
	return func() grid.EditControl {
		ctl := &EditControl{screen: screen, style: style, active: active}
		*active = ctl
		return ctl
	}
}

func (c *EditControl) Open(r grid.Rect, initial string) {
	c.rect = r
	c.text = []rune(initial)
	c.cursor = len(c.text)
	c.adjustOffset()
}

func (c *EditControl) SelectAll() {}

func (c *EditControl) Show() { c.draw() }

func (c *EditControl) Text() string { return string(c.text) }

func (c *EditControl) Close() {
	if c.active != nil && *c.active == c {
		*c.active = nil
	}
}

func (c *EditControl) OnCommit(fn func(string)) { c.onCommit = fn }
func (c *EditControl) OnCancel(fn func())       { c.onCancel = fn }
func (c *EditControl) OnKillFocus(fn func())    { c.onKillFocus = fn }

// HandleKey feeds one keyboard event to the in-progress edit; a host's
// Dispatch loop must call this instead of View.KeyDown while an edit is
// open (Dispatch does this automatically via its active argument). Returns
// true if the key was consumed.
func (c *EditControl) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		if c.onCommit != nil {
			c.onCommit(c.Text())
		}
		return true
	case tcell.KeyEscape:
		if c.onCancel != nil {
			c.onCancel()
		}
		return true
	case tcell.KeyLeft:
		if c.cursor > 0 {
			c.cursor--
		}
	case tcell.KeyRight:
		if c.cursor < len(c.text) {
			c.cursor++
		}
	case tcell.KeyHome:
		c.cursor = 0
	case tcell.KeyEnd:
		c.cursor = len(c.text)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if c.cursor > 0 {
			c.text = append(c.text[:c.cursor-1], c.text[c.cursor:]...)
			c.cursor--
		}
	case tcell.KeyDelete:
		if c.cursor < len(c.text) {
			c.text = append(c.text[:c.cursor], c.text[c.cursor+1:]...)
		}
	case tcell.KeyRune:
		c.text = append(c.text[:c.cursor], append([]rune{ev.Rune()}, c.text[c.cursor:]...)...)
		c.cursor++
	default:
		return false
	}
	c.adjustOffset()
	c.draw()
	return true
}

func (c *EditControl) adjustOffset() {
	width := c.rect.X1 - c.rect.X0
	if width <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	} else if c.cursor-c.offset >= width {
		c.offset = c.cursor - width + 1
	}
}

func (c *EditControl) draw() {
	width := c.rect.X1 - c.rect.X0
	y := c.rect.Y0
	for i := 0; i < width; i++ {
		ch := ' '
		if c.offset+i < len(c.text) {
			ch = c.text[c.offset+i]
		}
		c.screen.SetContent(c.rect.X0+i, y, ch, nil, c.style)
	}
	c.screen.ShowCursor(c.rect.X0+c.cursor-c.offset, y)
	c.screen.Show()
}
