// Package tcellgrid is the concrete terminal backend for grid.View: a
// PaintSurface over a tcell.Screen, translation of tcell's key/mouse
// events into grid's toolkit-agnostic Point/Modifiers/Key, and an
// EditControl that overlays a single-line editor directly on the
// screen. Grounded on the teacher's Renderer/Screen split (renderer.go)
// for the drawing primitives and on its UI.Handle/EventLoop pair
// (ui.go) for the event-translation shape; grid itself never imports
// tcell; this package is the one seam that does.
package tcellgrid
