// path: internal/uci/uci.go
// Package uci implements the engine side of the Universal Chess Interface:
// a line-oriented command loop on standard input driving the worker pool.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/swgillespie/altair/internal/board"
	"github.com/swgillespie/altair/internal/search"
	"github.com/swgillespie/altair/internal/ttable"
)

const (
	engineName   = "altair 0.1.0"
	engineAuthor = "Sean Gillespie <sean@swgillespie.me>"
)

// Config sizes the engine at startup.
type Config struct {
	HashMB  int
	Threads int
}

// Engine ties the UCI loop to the position, the worker pool and the
// transposition table.
type Engine struct {
	out   *Writer
	log   zerolog.Logger
	pool  *search.Pool
	table *ttable.Table
	pos   *board.Position
}

func NewEngine(cfg Config, out io.Writer, log zerolog.Logger) *Engine {
	w := NewWriter(out)
	e := &Engine{
		out:   w,
		log:   log,
		pool:  search.NewPool(cfg.Threads, w, log),
		table: ttable.New(cfg.HashMB),
	}
	pos, err := board.ParseFEN(board.StartposFEN)
	if err != nil {
		panic("uci: startpos FEN failed to parse: " + err.Error())
	}
	e.pos = pos
	return e
}

// Run consumes commands line by line until quit or EOF.
func (e *Engine) Run(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !e.RunOne(scanner.Text()) {
			return
		}
	}
}

// RunOne executes a single command line. It reports false when the engine
// should shut down.
func (e *Engine) RunOne(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "uci":
		e.out.Printf("id name %s", engineName)
		e.out.Printf("id author %s", engineAuthor)
		e.out.Printf("uciok")
	case "isready":
		e.pool.WaitUntilIdle()
		e.out.Printf("readyok")
	case "position":
		if err := e.position(fields[1:]); err != nil {
			e.log.Warn().Err(err).Msg("position command rejected")
		}
	case "go":
		e.goCommand(fields[1:])
	case "stop":
		e.pool.Stop()
	case "bench":
		e.bench()
		return false
	case "quit":
		return false
	default:
		e.log.Warn().Str("command", fields[0]).Msg("unknown command ignored")
	}
	return true
}

// position parses "startpos | fen <fields>" plus an optional move list. The
// current position is replaced only if the whole command parses and every
// move is legal.
func (e *Engine) position(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing position body")
	}

	var fen string
	var moveTokens []string
	switch args[0] {
	case "startpos":
		fen = board.StartposFEN
		if len(args) > 1 && args[1] == "moves" {
			moveTokens = args[2:]
		}
	case "fen":
		rest := args[1:]
		for i, tok := range rest {
			if tok == "moves" {
				moveTokens = rest[i+1:]
				rest = rest[:i]
				break
			}
		}
		fen = strings.Join(rest, " ")
	default:
		return fmt.Errorf("expected startpos or fen, got %q", args[0])
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}
	for _, tok := range moveTokens {
		m, ok := pos.FindMove(tok)
		if !ok {
			return fmt.Errorf("no such move %q", tok)
		}
		pos.MakeMove(m)
		if pos.IsCheck(pos.SideToMove().Other()) {
			return fmt.Errorf("illegal move %q", tok)
		}
	}

	e.pos = pos
	return nil
}

func (e *Engine) goCommand(args []string) {
	var limits search.Limits
	for i := 0; i < len(args); i++ {
		if args[i] == "perft" && i+1 < len(args) {
			n, err := strconv.ParseUint(args[i+1], 10, 32)
			if err != nil {
				e.log.Warn().Str("depth", args[i+1]).Msg("bad perft depth")
				return
			}
			limits.Perft = uint32(n)
			i++
		}
	}
	if limits.Perft == 0 {
		e.log.Warn().Msg("go without perft limit is not supported yet")
		return
	}
	e.pool.Go(e.pos, limits)
}

// bench runs a fixed command script for benchmarking.
func (e *Engine) bench() {
	e.RunOne("position startpos")
	e.RunOne("go perft 4")
	e.pool.WaitUntilIdle()
	e.RunOne("position fen r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	e.RunOne("go perft 5")
	e.pool.WaitUntilIdle()
}
