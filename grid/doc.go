// Package grid implements the grid view engine: geometry, scrolling,
// selection, focus, the drag/keyboard input state machine, the paint
// pipeline, label-edit lifecycle, and the virtual/owner-data path. A View
// is a non-shared observer of a table.Table plus private presentation
// state.
//
// The package depends on four small collaborator interfaces —
// PaintSurface, EditControl, HostNotifier, DragArbiter — so that no
// concrete rendering toolkit leaks into the core. adapters/tcellgrid
// binds them to gdamore/tcell/v2.
//
// Grounded throughout on original_source/src/grid.c and
// include/mCtrl/grid.h (mCtrl's GRID control), generalized from its
// Win32 message-handler dispatch into explicit Go methods, and on the
// teacher's (zeichenwerk) Widget/BaseWidget embedding idiom for giving
// collaborators a default no-op base to embed.
package grid
