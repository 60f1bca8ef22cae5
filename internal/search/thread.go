// path: internal/search/thread.go
package search

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swgillespie/altair/internal/board"
)

// Worker is a search thread. It alternates between two states: idle,
// parked on its condition variable, and running, executing one search over
// its private copy of the root position. The stop flag is advisory; a
// running search polls it at recursion boundaries and unwinds cleanly.
type Worker struct {
	id  int
	log zerolog.Logger
	out Printer

	mu       sync.Mutex
	cond     *sync.Cond
	idle     bool
	pos      *board.Position
	limits   Limits
	searchID string

	stop atomic.Bool
}

func newWorker(id int, out Printer, log zerolog.Logger) *Worker {
	w := &Worker{
		id:   id,
		log:  log.With().Int("worker", id).Logger(),
		out:  out,
		idle: true,
	}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// start hands the worker a position and limits and wakes it. The mutex
// hand-off makes both visible to the worker goroutine.
func (w *Worker) start(pos *board.Position, limits Limits, searchID string) {
	w.mu.Lock()
	w.pos = pos
	w.limits = limits
	w.searchID = searchID
	w.idle = false
	w.mu.Unlock()
	w.cond.Broadcast()
}

func (w *Worker) requestStop() {
	w.stop.Store(true)
}

func (w *Worker) waitUntilIdle() {
	w.mu.Lock()
	for !w.idle {
		w.cond.Wait()
	}
	w.mu.Unlock()
}

func (w *Worker) loop() {
	for {
		w.mu.Lock()
		for w.idle {
			w.cond.Wait()
		}
		pos, limits, searchID := w.pos, w.limits, w.searchID
		w.mu.Unlock()

		log := w.log.With().Str("search", searchID).Logger()
		log.Debug().Uint32("perft", limits.Perft).Msg("search started")
		NewSearcher(pos, limits, &w.stop, w.out, log).Search()
		log.Debug().Msg("search finished")

		w.stop.Store(false)
		w.mu.Lock()
		w.idle = true
		w.mu.Unlock()
		w.cond.Broadcast()
	}
}

// Pool owns the worker threads and exposes the go/stop/wait lifecycle the
// UCI layer drives.
type Pool struct {
	workers []*Worker
	log     zerolog.Logger
}

// NewPool launches size workers. Each runs until the process exits.
func NewPool(size int, out Printer, log zerolog.Logger) *Pool {
	if size < 1 {
		panic("search: pool needs at least one worker")
	}
	p := &Pool{log: log}
	for i := 0; i < size; i++ {
		w := newWorker(i, out, log)
		p.workers = append(p.workers, w)
		go w.loop()
	}
	return p
}

// Go begins a search on every worker and returns immediately. Each worker
// receives its own copy of the position.
func (p *Pool) Go(pos *board.Position, limits Limits) {
	searchID := uuid.NewString()
	p.log.Debug().Str("search", searchID).Msg("dispatching search")
	for _, w := range p.workers {
		w.start(pos.Copy(), limits, searchID)
	}
}

// Stop asks every worker to abandon its current search. Workers notice at
// their own cadence; pair with WaitUntilIdle to block until they have.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		w.requestStop()
	}
}

// WaitUntilIdle blocks until every worker is idle.
func (p *Pool) WaitUntilIdle() {
	for _, w := range p.workers {
		w.waitUntilIdle()
	}
}
