// path: internal/board/fen_test.go
package board

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartposFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RK1 w kq - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"4k3/8/8/8/8/4P3/8/1K6 w - - 0 1",
		"4k3/8/8/8/8/2Q3q1/8/1K6 b - - 5 7",
		"8/8/8/8/8/8/8/K6k w - - 99 120",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("parse %q: %v", fen, err)
		}
		if got := pos.FEN(); got != fen {
			t.Fatalf("round trip:\n in %q\nout %q", fen, got)
		}
	}
}

func TestParseFENOptionalClocks(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	if err != nil {
		t.Fatalf("parse without clocks: %v", err)
	}
	if pos.HalfmoveClock() != 0 {
		t.Fatalf("halfmove clock: got %d, want 0", pos.HalfmoveClock())
	}
	if pos.Ply() != 0 {
		t.Fatalf("ply: got %d, want 0", pos.Ply())
	}
	if got := pos.FEN(); got != StartposFEN {
		t.Fatalf("emitted FEN: got %q, want %q", got, StartposFEN)
	}
}

func TestParseFENPly(t *testing.T) {
	tests := []struct {
		fen  string
		ply  int
	}{
		{StartposFEN, 0},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", 1},
		{"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2", 2},
		{"4k3/8/8/8/8/2Q3q1/8/1K6 b - - 5 7", 13},
	}
	for _, tt := range tests {
		pos, err := ParseFEN(tt.fen)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.fen, err)
		}
		if pos.Ply() != tt.ply {
			t.Fatalf("%q: ply %d, want %d", tt.fen, pos.Ply(), tt.ply)
		}
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few fields", "8/8/8/8/8/8/8/8 w -"},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"rank underflow", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"rank overflow digits", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"rank overflow pieces", "ppppppppp/8/8/8/8/8/8/8 w - - 0 1"},
		{"unknown piece", "x7/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad castling", "8/8/8/8/8/8/8/8 w KX - 0 1"},
		{"bad ep square", "8/8/8/8/8/8/8/8 w - e9 0 1"},
		{"bad ep text", "8/8/8/8/8/8/8/8 w - ee3 0 1"},
		{"bad halfmove", "8/8/8/8/8/8/8/8 w - - x 1"},
		{"negative halfmove", "8/8/8/8/8/8/8/8 w - - -4 1"},
		{"bad fullmove", "8/8/8/8/8/8/8/8 w - - 0 zero"},
		{"zero fullmove", "8/8/8/8/8/8/8/8 w - - 0 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFEN(tt.fen)
			if err == nil {
				t.Fatalf("parse %q: expected error", tt.fen)
			}
			if !errors.Is(err, ErrInvalidFEN) {
				t.Fatalf("parse %q: error %v does not wrap ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestParseFENLeavesHashConsistent(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := pos.Hash(), hashFromScratch(pos); got != want {
		t.Fatalf("hash after parse: got %#x, want %#x", got, want)
	}
}
