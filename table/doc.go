// Package table implements the shared table data model: a reference
// counted container of cells for a 2-D grid, indexed [col, row], with a
// distinguished header column and header row addressed by the Header
// sentinel. A Table may be observed by any number of views; every mutation
// of user-visible state emits exactly one refresh event to each installed
// view. Two calls are documented exceptions: Resize may emit a
// ColCountChanged and/or a RowCountChanged event (§4.1), and Clear emits
// one RegionChanged event per band it resets.
//
// Grounded on the teacher's TableProvider/Table split (table.go,
// table-provider.go) for the data/view separation, and on its Subject/
// Observable pair (observer.go) for the refresh dispatch shape, generalized
// from a single sort-of-callback to mCtrl's table.c view list
// (install/uninstall by identity, synchronous dispatch, no lock held
// across a callback).
package table
