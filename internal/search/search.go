// path: internal/search/search.go
// Package search runs searches on worker threads. The only search currently
// implemented is perft, the standard movegen correctness and throughput
// benchmark.
package search

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/swgillespie/altair/internal/board"
)

// Limits bounds a search. A nonzero Perft requests a perft enumeration of
// the given depth.
type Limits struct {
	Perft uint32
}

// Printer is where a searcher writes protocol output. The UCI layer
// provides one that flushes whole lines under a process-wide lock.
type Printer interface {
	Printf(format string, args ...any)
}

// Searcher runs one search over a privately owned position.
type Searcher struct {
	pos    *board.Position
	limits Limits
	stop   *atomic.Bool
	out    Printer
	log    zerolog.Logger
}

func NewSearcher(pos *board.Position, limits Limits, stop *atomic.Bool, out Printer, log zerolog.Logger) *Searcher {
	return &Searcher{pos: pos, limits: limits, stop: stop, out: out, log: log}
}

// Search dispatches on the limits. Only perft is supported for now.
func (s *Searcher) Search() {
	if s.limits.Perft == 0 {
		panic("search: only perft searches are supported")
	}

	start := time.Now()
	total := s.perft(s.limits.Perft, true)
	elapsed := time.Since(start)

	s.out.Printf("Nodes searched: %d", total)
	s.log.Debug().
		Uint64("nodes", total).
		Dur("elapsed", elapsed).
		Float64("nps", float64(total)/elapsed.Seconds()).
		Msg("perft complete")
}

// perft counts legal move sequences of the given depth: enumerate
// pseudo-legal moves, make each, drop the ones that left the mover in check,
// recurse, unmake. At the root every surviving move reports its subtree
// count. A stop request unwinds promptly; every make below is matched by an
// unmake, so cancellation never corrupts the position.
func (s *Searcher) perft(depth uint32, root bool) uint64 {
	if depth == 0 {
		return 1
	}
	if s.stop.Load() {
		return 0
	}

	moves := board.GeneratePseudoLegal(s.pos, make([]board.Move, 0, board.MaxMoves))
	var total uint64
	for _, m := range moves {
		s.pos.MakeMove(m)
		if !s.pos.IsCheck(s.pos.SideToMove().Other()) {
			children := s.perft(depth-1, false)
			if root {
				s.out.Printf("%s: %d", m, children)
			}
			total += children
		}
		s.pos.UnmakeMove(m)
	}
	return total
}

// Perft runs a perft enumeration outside the worker pool, without output.
// Tests and tools use it directly.
func Perft(pos *board.Position, depth uint32) uint64 {
	if depth == 0 {
		return 1
	}
	moves := board.GeneratePseudoLegal(pos, make([]board.Move, 0, board.MaxMoves))
	var total uint64
	for _, m := range moves {
		pos.MakeMove(m)
		if !pos.IsCheck(pos.SideToMove().Other()) {
			total += Perft(pos, depth-1)
		}
		pos.UnmakeMove(m)
	}
	return total
}
