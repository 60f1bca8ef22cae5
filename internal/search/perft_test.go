// path: internal/search/perft_test.go
package search

import (
	"testing"

	"github.com/swgillespie/altair/internal/board"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustParse(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return pos
}

func TestPerftFixtures(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth uint32
		nodes uint64
		slow  bool
	}{
		{"startpos depth 1", board.StartposFEN, 1, 20, false},
		{"startpos depth 2", board.StartposFEN, 2, 400, false},
		{"startpos depth 3", board.StartposFEN, 3, 8902, false},
		{"startpos depth 4", board.StartposFEN, 4, 197281, false},
		{"startpos depth 5", board.StartposFEN, 5, 4865609, true},
		{"kiwipete depth 1", kiwipeteFEN, 1, 48, false},
		{"kiwipete depth 2", kiwipeteFEN, 2, 2039, false},
		{"kiwipete depth 3", kiwipeteFEN, 3, 97862, false},
		{"kiwipete depth 4", kiwipeteFEN, 4, 4085603, true},
		{"endgame depth 6", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11030083, true},
		{"promotions depth 5", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 5, 15833292, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.slow && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			pos := mustParse(t, tt.fen)
			if got := Perft(pos, tt.depth); got != tt.nodes {
				t.Fatalf("perft(%d): got %d nodes, want %d", tt.depth, got, tt.nodes)
			}
			// Perft works in place; the position must come back untouched.
			if got := pos.FEN(); got != tt.fen {
				t.Fatalf("perft corrupted the position: %q", got)
			}
		})
	}
}

func TestPerftDepthZero(t *testing.T) {
	if got := Perft(mustParse(t, board.StartposFEN), 0); got != 1 {
		t.Fatalf("perft(0): got %d, want 1", got)
	}
}
