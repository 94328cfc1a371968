package grid

import (
	"testing"

	"github.com/tekugo/gridkit/internal/errs"
	"github.com/tekugo/gridkit/table"
)

func TestAttachDetachTable(t *testing.T) {
	v := New(0)
	t1, err := table.New(3, 3)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	if err := v.AttachTable(t1); err != nil {
		t.Fatalf("AttachTable: %v", err)
	}
	if v.Table != t1 {
		t.Fatalf("AttachTable did not bind the table")
	}

	v.SetFocus(1, 1)
	// Simulate a live label edit the teardown must close.
	v.edit = editState{active: true, col: 1, row: 1, control: &fakeEditControl{text: "x"}}

	v.DetachTable()
	if v.Table != nil {
		t.Fatalf("DetachTable left a dangling table reference")
	}
	if v.edit.active {
		t.Fatalf("DetachTable did not tear down an in-progress label edit")
	}

	// Detaching again is a no-op, not a crash.
	v.DetachTable()

	t2, err := table.New(2, 2)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	if err := v.AttachTable(t2); err != nil {
		t.Fatalf("AttachTable: %v", err)
	}
	if v.Table != t2 {
		t.Fatalf("AttachTable after DetachTable did not rebind")
	}
}

func TestAttachTableOwnerDataRejected(t *testing.T) {
	v := New(StyleOwnerData)
	t1, err := table.New(2, 2)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	if err := v.AttachTable(t1); err == nil {
		t.Fatalf("AttachTable succeeded on an owner-data view")
	} else if !errs.Is(err, errs.InvalidState) {
		t.Fatalf("AttachTable error = %v, want errs.InvalidState", err)
	}
	if v.Table != nil {
		t.Fatalf("rejected AttachTable left a table bound")
	}
}
