package tcellgrid

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/tekugo/gridkit/grid"
)

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		ev      *tcell.EventKey
		want    grid.Key
		wantOk  bool
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), grid.KeyLeft, true},
		{tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), grid.KeyPageDown, true},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), grid.KeyEnter, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), grid.KeySpace, true},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), 0, false},
	}
	for _, c := range cases {
		got, ok := translateKey(c.ev)
		if ok != c.wantOk || (ok && got != c.want) {
			t.Errorf("translateKey(%v) = (%v,%v), want (%v,%v)", c.ev.Key(), got, ok, c.want, c.wantOk)
		}
	}
}

func TestTranslateMods(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift|tcell.ModCtrl)
	mods := translateMods(ev)
	if !mods.Shift || !mods.Ctrl {
		t.Errorf("translateMods = %+v, want both set", mods)
	}
}

func TestEditControlTypeAndOpenText(t *testing.T) {
	var active *EditControl
	factory := NewEditControlFactory(nil, tcell.StyleDefault, &active)
	ctl := factory()
	if active == nil {
		t.Fatal("factory did not register the control as active")
	}
	ctl.Open(grid.Rect{X0: 0, Y0: 0, X1: 10, Y1: 1}, "hello")
	if ctl.Text() != "hello" {
		t.Fatalf("Text() = %q, want %q", ctl.Text(), "hello")
	}
	ctl.Close()
	if active != nil {
		t.Fatal("Close did not clear the active slot")
	}
}
