package engine

import (
	"github.com/amritr10/Reporter-app/schema"
)

// ============================================================================
// RECORD VIEW — Read-only access to an analysis snapshot
// ============================================================================
// Implementations:
//   Snapshot — the immutable uploaded record set (owns a private copy)
//   SubView  — filtered subset (indices into parent, zero-copy)
//
// Every engine entry point takes a view explicitly. Nothing is cached between
// calls, so independent snapshots can be analyzed in parallel.
// ============================================================================

// RecordView provides indexed access to guest records.
type RecordView interface {
	Len() int
	Record(index int) GuestRecord
	Columns() schema.ColumnSet
}

// ============================================================================
// SNAPSHOT
// ============================================================================

// Snapshot is an immutable record set plus the columns resolved at load time.
type Snapshot struct {
	records []GuestRecord
	columns schema.ColumnSet
}

// NewSnapshot copies records and assigns each its stable ID (its position).
func NewSnapshot(records []GuestRecord, columns schema.ColumnSet) *Snapshot {
	owned := make([]GuestRecord, len(records))
	copy(owned, records)
	for i := range owned {
		owned[i].ID = i
	}
	return &Snapshot{records: owned, columns: columns}
}

func (s *Snapshot) Len() int { return len(s.records) }

func (s *Snapshot) Record(i int) GuestRecord {
	if i < 0 || i >= len(s.records) {
		return GuestRecord{}
	}
	return s.records[i]
}

func (s *Snapshot) Columns() schema.ColumnSet { return s.columns }

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent RecordView.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Record(i int) GuestRecord {
	if i < 0 || i >= len(v.indices) {
		return GuestRecord{}
	}
	return v.parent.Record(v.indices[i])
}

func (v *SubView) Columns() schema.ColumnSet { return v.parent.Columns() }

// Indices returns the parent positions selected by this view.
func (v *SubView) Indices() []int {
	out := make([]int, len(v.indices))
	copy(out, v.indices)
	return out
}

// Collect materializes a view into a fresh slice, in view order.
func Collect(view RecordView) []GuestRecord {
	out := make([]GuestRecord, view.Len())
	for i := range out {
		out[i] = view.Record(i)
	}
	return out
}

// Head returns at most n records from the start of a view.
func Head(view RecordView, n int) []GuestRecord {
	if n > view.Len() {
		n = view.Len()
	}
	if n < 0 {
		n = 0
	}
	out := make([]GuestRecord, n)
	for i := range out {
		out[i] = view.Record(i)
	}
	return out
}
