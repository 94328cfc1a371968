package tcellgrid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tekugo/gridkit/grid"
)

// translateKey maps a tcell key to grid.Key, reporting ok=false for keys
// grid's state machine gives no meaning to (§4.5 only names the keys
// enumerated in grid.Key).
func translateKey(ev *tcell.EventKey) (grid.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return grid.KeyLeft, true
	case tcell.KeyRight:
		return grid.KeyRight, true
	case tcell.KeyUp:
		return grid.KeyUp, true
	case tcell.KeyDown:
		return grid.KeyDown, true
	case tcell.KeyHome:
		return grid.KeyHome, true
	case tcell.KeyEnd:
		return grid.KeyEnd, true
	case tcell.KeyPgUp:
		return grid.KeyPageUp, true
	case tcell.KeyPgDn:
		return grid.KeyPageDown, true
	case tcell.KeyEnter:
		return grid.KeyEnter, true
	case tcell.KeyEscape:
		return grid.KeyEscape, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return grid.KeySpace, true
		}
	}
	return 0, false
}

func translateMods(ev *tcell.EventKey) grid.Modifiers {
	return grid.Modifiers{
		Shift: ev.Modifiers()&tcell.ModShift != 0,
		Ctrl:  ev.Modifiers()&tcell.ModCtrl != 0,
	}
}

// mouseModifiers approximates Shift/Ctrl for a mouse event; tcell only
// reports these reliably on terminals with extended mouse reporting, so
// a terminal without it behaves as an unmodified drag (plain SelOpSet).
func mouseModifiers(ev *tcell.EventMouse) grid.Modifiers {
	return grid.Modifiers{
		Shift: ev.Modifiers()&tcell.ModShift != 0,
		Ctrl:  ev.Modifiers()&tcell.ModCtrl != 0,
	}
}

// Dispatch translates a tcell.Event into the corresponding grid.View
// call, mirroring the teacher's UI.Handle type switch (ui.go). active
// should be the same pointer passed to NewEditControlFactory: while it
// points at a live EditControl, keyboard events go to that control's
// HandleKey instead of View.KeyDown.
func Dispatch(v *grid.View, active *EditControl, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if active != nil {
			active.HandleKey(ev)
			return
		}
		if key, ok := translateKey(ev); ok {
			v.KeyDown(key, translateMods(ev))
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		pt := grid.Point{X: x, Y: y}
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.Button1 != 0:
			v.MouseDown(pt, mouseModifiers(ev))
		case buttons == tcell.ButtonNone:
			v.MouseUp(pt)
		}
		v.MouseMove(pt)
	}
}
