// path: internal/board/position_test.go
package board

import "testing"

func mustParse(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return pos
}

// checkConsistency verifies the structural invariants tying the square
// array to the bitboards.
func checkConsistency(t *testing.T, p *Position) {
	t.Helper()

	occupied := 0
	for sq := A1; sq < SquareCount; sq++ {
		piece := p.PieceAt(sq)
		if piece == NoPiece {
			continue
		}
		occupied++
		if !p.boardsByPiece[piece-1].Has(sq) {
			t.Fatalf("%c on %s missing from its piece bitboard", piece.Char(), sq)
		}
		if !p.boardsByColor[piece.Color()].Has(sq) {
			t.Fatalf("%c on %s missing from its color bitboard", piece.Char(), sq)
		}
	}

	perPiece := 0
	for _, b := range p.boardsByPiece {
		perPiece += b.Count()
	}
	perColor := p.Pieces(White).Count() + p.Pieces(Black).Count()
	if perPiece != occupied || perColor != occupied {
		t.Fatalf("piece counts disagree: %d squares, %d per-piece bits, %d per-color bits", occupied, perPiece, perColor)
	}
	if p.Pieces(White)&p.Pieces(Black) != 0 {
		t.Fatalf("color occupancies overlap")
	}
	for _, side := range []Color{White, Black} {
		if n := p.PiecesOfKind(side, King).Count(); n != 1 {
			t.Fatalf("%s has %d kings", side, n)
		}
	}
	if got, want := p.Hash(), hashFromScratch(p); got != want {
		t.Fatalf("incremental hash %#x diverged from scratch hash %#x", got, want)
	}
}

func TestPieceSmoke(t *testing.T) {
	p := NewPosition()
	if p.PieceAt(A4) != NoPiece {
		t.Fatalf("fresh position has a piece on a4")
	}
	p.AddPiece(WhiteRook, A4)
	if p.PieceAt(A4) != WhiteRook {
		t.Fatalf("piece at a4: got %v", p.PieceAt(A4))
	}
	if got := p.RemovePiece(A4); got != WhiteRook {
		t.Fatalf("removed piece: got %v", got)
	}
	if p.PieceAt(A4) != NoPiece {
		t.Fatalf("a4 still occupied after removal")
	}
}

func TestMakeUnmakeSmoke(t *testing.T) {
	p := mustParse(t, "5k2/4q3/8/8/8/2Q5/8/1K6 w - - 0 1")
	if p.PieceAt(C3) != WhiteQueen {
		t.Fatalf("expected white queen on c3")
	}

	m := QuietMove(C3, G3)
	p.MakeMove(m)
	if p.PieceAt(C3) != NoPiece || p.PieceAt(G3) != WhiteQueen {
		t.Fatalf("queen did not move c3 -> g3")
	}
	if p.SideToMove() != Black {
		t.Fatalf("side to move did not flip")
	}
	if p.Ply() != 1 {
		t.Fatalf("ply: got %d, want 1", p.Ply())
	}
	if p.HalfmoveClock() != 1 {
		t.Fatalf("halfmove clock: got %d, want 1", p.HalfmoveClock())
	}

	p.UnmakeMove(m)
	if p.PieceAt(C3) != WhiteQueen || p.PieceAt(G3) != NoPiece {
		t.Fatalf("unmake did not restore the queen")
	}
	if p.Ply() != 0 || p.HalfmoveClock() != 0 {
		t.Fatalf("unmake did not restore clocks: ply %d, halfmove %d", p.Ply(), p.HalfmoveClock())
	}
}

func TestMakeUnmakeCapture(t *testing.T) {
	p := mustParse(t, "4k3/8/8/8/8/2Q3q1/8/1K6 w - - 5 7")
	m := CaptureMove(C3, G3)
	p.MakeMove(m)
	if got, want := p.FEN(), "4k3/8/8/8/8/6Q1/8/1K6 b - - 0 7"; got != want {
		t.Fatalf("after capture:\ngot  %q\nwant %q", got, want)
	}
	p.UnmakeMove(m)
	if got, want := p.FEN(), "4k3/8/8/8/8/2Q3q1/8/1K6 w - - 5 7"; got != want {
		t.Fatalf("after unmake:\ngot  %q\nwant %q", got, want)
	}
}

// Applying a move sequence and then unwinding it must restore the position
// bitwise, hash and state stack included.
func TestMakeUnmakeRestoresEverything(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
	}{
		{
			name:  "opening with castle",
			fen:   StartposFEN,
			moves: []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "g8f6", "e1g1", "f6e4"},
		},
		{
			name:  "kiwipete tactics",
			fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			moves: []string{"e5g6", "h3g2", "g6h8", "g2h1q", "e2f1"},
		},
		{
			name:  "en passant",
			fen:   StartposFEN,
			moves: []string{"e2e4", "a7a6", "e4e5", "d7d5", "e5d6"},
		},
		{
			name:  "promotions",
			fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RK1 w kq - 0 1",
			moves: []string{"f3d4", "b2a1n", "d1a1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.fen)
			before := *p.Copy()

			var made []Move
			for _, uci := range tt.moves {
				m, ok := p.FindMove(uci)
				if !ok {
					t.Fatalf("move %q not generated", uci)
				}
				p.MakeMove(m)
				if p.IsCheck(p.SideToMove().Other()) {
					t.Fatalf("test move %q is illegal", uci)
				}
				made = append(made, m)
				checkConsistency(t, p)
			}

			for i := len(made) - 1; i >= 0; i-- {
				p.UnmakeMove(made[i])
				checkConsistency(t, p)
			}

			if p.FEN() != before.FEN() {
				t.Fatalf("FEN not restored:\ngot  %q\nwant %q", p.FEN(), before.FEN())
			}
			if p.Hash() != before.Hash() {
				t.Fatalf("hash not restored: got %#x, want %#x", p.Hash(), before.Hash())
			}
			if p.piecesBySquare != before.piecesBySquare ||
				p.boardsByPiece != before.boardsByPiece ||
				p.boardsByColor != before.boardsByColor ||
				p.sideToMove != before.sideToMove ||
				p.ply != before.ply {
				t.Fatalf("position state not restored bitwise")
			}
			if len(p.states) != len(before.states) || *p.topState() != *before.topState() {
				t.Fatalf("state stack not restored")
			}
		})
	}
}

func TestSquaresAttackingSmoke(t *testing.T) {
	p := mustParse(t, "6k1/R7/8/2P5/5B2/5N1P/3R2P1/1K6 w - - 0 1")
	attackers := p.SquaresAttacking(D6, White)
	if attackers.Count() != 3 {
		t.Fatalf("attackers of d6: got %d, want 3\n%v", attackers.Count(), attackers)
	}
	for _, sq := range []Square{C5, D2, F4} {
		if !attackers.Has(sq) {
			t.Fatalf("expected %s among attackers of d6", sq)
		}
	}
}

func TestIsCheckMatchesSquaresAttacking(t *testing.T) {
	tests := []struct {
		fen   string
		side  Color
		check bool
	}{
		{StartposFEN, White, false},
		{StartposFEN, Black, false},
		{"4k3/8/8/8/8/8/8/R3K3 b - - 0 1", Black, false},
		{"4k3/4r3/8/8/8/8/4P3/4K3 w - - 0 1", White, false},
		{"4k3/4r3/8/8/8/8/8/4K3 w - - 0 1", White, true},
		{"4k3/8/8/8/1b6/8/8/4K2R w K - 0 1", White, true},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.fen)
		if got := p.IsCheck(tt.side); got != tt.check {
			t.Fatalf("%q: IsCheck(%s) = %v, want %v", tt.fen, tt.side, got, tt.check)
		}
		attacked := !p.SquaresAttacking(p.KingSquare(tt.side), tt.side.Other()).Empty()
		if attacked != tt.check {
			t.Fatalf("%q: SquaresAttacking disagrees with IsCheck", tt.fen)
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	p := mustParse(t, StartposFEN)
	c := p.Copy()

	m, ok := p.FindMove("e2e4")
	if !ok {
		t.Fatalf("e2e4 not generated")
	}
	p.MakeMove(m)

	if c.FEN() != StartposFEN {
		t.Fatalf("copy changed when original moved: %q", c.FEN())
	}
	if p.FEN() == c.FEN() {
		t.Fatalf("original did not change")
	}
}
