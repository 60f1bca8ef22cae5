// path: internal/ttable/ttable.go
// Package ttable implements the transposition table: a fixed-capacity array
// of cache-line-sized entries, each guarded by its own spinlock.
//
// https://www.chessprogramming.org/Transposition_Table
package ttable

import (
	"sync/atomic"

	"github.com/swgillespie/altair/internal/board"
	"github.com/swgillespie/altair/internal/eval"
)

// NodeKind classifies what a stored value means, after Knuth's node taxonomy:
// PV nodes store exact scores, Cut nodes lower bounds, All nodes upper bounds.
type NodeKind uint8

const (
	NodePV NodeKind = iota
	NodeAll
	NodeCut
)

// Entry is the payload of one table slot.
type Entry struct {
	ZobristKey uint64
	Best       board.Move
	Value      eval.Value
	Depth      uint8
	Kind       NodeKind
}

// slot pads Entry plus its spinlock out to one cache line, so two workers
// hammering adjacent slots never share a line.
type slot struct {
	lock  atomic.Uint32
	entry Entry
	_     [40]byte
}

func (s *slot) acquire() {
	for !s.lock.CompareAndSwap(0, 1) {
	}
}

func (s *slot) release() {
	s.lock.Store(0)
}

// Table is a transposition table. Slots are indexed by hash modulo capacity;
// colliding keys silently overwrite each other. The only replacement policy
// is the All-node depth guard in RecordAll.
type Table struct {
	slots []slot
}

const bytesPerMegabyte = 1 << 20

// New allocates a table from a megabyte budget, rounding down to a whole
// number of slots.
func New(megabytes int) *Table {
	if megabytes <= 0 {
		panic("ttable: table size must be positive")
	}
	return &Table{
		slots: make([]slot, megabytes*bytesPerMegabyte/64),
	}
}

// Len returns the number of slots.
func (t *Table) Len() int { return len(t.slots) }

func (t *Table) slotFor(pos *board.Position) *slot {
	return &t.slots[pos.Hash()%uint64(len(t.slots))]
}

// RecordPV stores an exact-score entry, overwriting unconditionally.
func (t *Table) RecordPV(pos *board.Position, best board.Move, depth uint8, value eval.Value) {
	s := t.slotFor(pos)
	s.acquire()
	s.entry = Entry{
		ZobristKey: pos.Hash(),
		Best:       best,
		Value:      value,
		Depth:      depth,
		Kind:       NodePV,
	}
	s.release()
}

// RecordCut stores a lower-bound entry, overwriting unconditionally.
func (t *Table) RecordCut(pos *board.Position, best board.Move, depth uint8, value eval.Value) {
	s := t.slotFor(pos)
	s.acquire()
	s.entry = Entry{
		ZobristKey: pos.Hash(),
		Best:       best,
		Value:      value,
		Depth:      depth,
		Kind:       NodeCut,
	}
	s.release()
}

// RecordAll stores an upper-bound entry with no best move. A deeper All
// entry already present for the same position is kept.
func (t *Table) RecordAll(pos *board.Position, depth uint8, value eval.Value) {
	s := t.slotFor(pos)
	s.acquire()
	if s.entry.ZobristKey == pos.Hash() && s.entry.Kind == NodeAll && s.entry.Depth > depth {
		s.release()
		return
	}
	s.entry = Entry{
		ZobristKey: pos.Hash(),
		Best:       board.NullMove(),
		Value:      value,
		Depth:      depth,
		Kind:       NodeAll,
	}
	s.release()
}

// Query snapshots the slot the position maps to under its spinlock, hands
// the snapshot to fn and returns fn's result. Distinguishing a hit from a
// colliding entry is the caller's job: compare Entry.ZobristKey against the
// position's hash.
func (t *Table) Query(pos *board.Position, fn func(Entry) bool) bool {
	s := t.slotFor(pos)
	s.acquire()
	entry := s.entry
	s.release()
	return fn(entry)
}
