// path: internal/board/movegen.go
package board

// Pseudo-legal move generation. Pseudo-legal means legal except for
// self-check: a generated move may leave the mover's king attacked, and the
// search filters those by making the move and testing IsCheck on the side
// that just moved.

// MaxMoves comfortably covers the theoretical maximum number of moves in any
// reachable position; callers pre-reserve this much so generation never
// allocates.
const MaxMoves = 224

// Per-color constants, indexed by the moving side. This is the lookup-table
// rendition of movegen specialized by color: the hot loops below stay
// branch-free on color.
var (
	pawnStartRank   = [2]Bitboard{Rank2BB, Rank7BB}
	pawnSeventhRank = [2]Bitboard{Rank7BB, Rank2BB}
	pawnPushDir     = [2]Direction{North, South}
)

var promotionKinds = [4]PieceKind{Knight, Bishop, Rook, Queen}

// GeneratePseudoLegal appends every pseudo-legal move for the side to move
// and returns the extended slice.
func GeneratePseudoLegal(p *Position, moves []Move) []Move {
	us := p.sideToMove
	moves = generatePawnMoves(p, us, moves)
	moves = generateKindMoves(p, us, Knight, moves)
	moves = generateKindMoves(p, us, Bishop, moves)
	moves = generateKindMoves(p, us, Rook, moves)
	moves = generateKindMoves(p, us, Queen, moves)
	moves = generateKindMoves(p, us, King, moves)
	moves = generateCastles(p, us, moves)
	return moves
}

func generatePawnMoves(p *Position, us Color, moves []Move) []Move {
	up := pawnPushDir[us]
	down := -up
	third := pawnStartRank[us].Shift(up)

	allied := p.Pieces(us)
	enemy := p.Pieces(us.Other())
	occ := allied | enemy
	empty := ^occ
	pawns := p.PiecesOfKind(us, Pawn)

	// Pawns on the seventh rank move with promotion and are handled apart
	// from all other pawns.
	seventh := pawns & pawnSeventhRank[us]
	rest := pawns &^ pawnSeventhRank[us]

	// 1) Pushes. A single push from the start rank that lands on the third
	// rank may continue one more step to a double push.
	advance := rest.Shift(up) & empty
	double := (advance & third).Shift(up) & empty
	for b := advance; !b.Empty(); {
		dst := b.Pop()
		moves = append(moves, QuietMove(Towards(dst, down), dst))
	}
	for b := double; !b.Empty(); {
		dst := b.Pop()
		moves = append(moves, DoublePawnPushMove(Towards(dst, down+down), dst))
	}

	// 2) Captures.
	for b := rest.Shift(up + West) & enemy; !b.Empty(); {
		dst := b.Pop()
		moves = append(moves, CaptureMove(Towards(dst, down+East), dst))
	}
	for b := rest.Shift(up + East) & enemy; !b.Empty(); {
		dst := b.Pop()
		moves = append(moves, CaptureMove(Towards(dst, down+West), dst))
	}

	// 3) Promotions, four moves per push or capture.
	if !seventh.Empty() {
		for b := seventh.Shift(up) & empty; !b.Empty(); {
			dst := b.Pop()
			for _, kind := range promotionKinds {
				moves = append(moves, PromotionMove(Towards(dst, down), dst, kind))
			}
		}
		for b := seventh.Shift(up + West) & enemy; !b.Empty(); {
			dst := b.Pop()
			for _, kind := range promotionKinds {
				moves = append(moves, PromotionCaptureMove(Towards(dst, down+East), dst, kind))
			}
		}
		for b := seventh.Shift(up + East) & enemy; !b.Empty(); {
			dst := b.Pop()
			for _, kind := range promotionKinds {
				moves = append(moves, PromotionCaptureMove(Towards(dst, down+West), dst, kind))
			}
		}
	}

	// 4) En passant. Any pawn attacking the en-passant square may take; the
	// attack is read backwards from the target with the enemy pawn table.
	if ep := p.EnPassantSquare(); ep != NoSquare {
		for b := PawnAttacks(ep, us.Other()) & pawns; !b.Empty(); {
			src := b.Pop()
			moves = append(moves, EnPassantMove(src, ep))
		}
	}

	return moves
}

func generateKindMoves(p *Position, us Color, kind PieceKind, moves []Move) []Move {
	allied := p.Pieces(us)
	enemy := p.Pieces(us.Other())
	occ := allied | enemy

	for pieces := p.PiecesOfKind(us, kind); !pieces.Empty(); {
		src := pieces.Pop()
		for destinations := KindAttacks(kind, src, occ) &^ allied; !destinations.Empty(); {
			dst := destinations.Pop()
			if enemy.Has(dst) {
				moves = append(moves, CaptureMove(src, dst))
			} else {
				moves = append(moves, QuietMove(src, dst))
			}
		}
	}
	return moves
}

func generateCastles(p *Position, us Color, moves []Move) []Move {
	if !p.CanCastleKingside(us) && !p.CanCastleQueenside(us) {
		return moves
	}
	// Castling out of check is illegal; castling into check is left to the
	// self-check filter like any other king move.
	if p.IsCheck(us) {
		return moves
	}

	occ := p.Pieces(us) | p.Pieces(us.Other())
	them := us.Other()
	rook := MakePiece(Rook, us)
	king := p.KingSquare(us)

	if p.CanCastleKingside(us) {
		rookHome := H1
		if us == Black {
			rookHome = H8
		}
		if p.PieceAt(rookHome) == rook {
			// The king crosses two squares; both must be empty and safe.
			one := Towards(king, East)
			two := Towards(one, East)
			if !occ.Has(one) && !occ.Has(two) &&
				p.SquaresAttacking(one, them).Empty() &&
				p.SquaresAttacking(two, them).Empty() {
				moves = append(moves, KingsideCastleMove(king, two))
			}
		}
	}

	if p.CanCastleQueenside(us) {
		rookHome := A1
		if us == Black {
			rookHome = A8
		}
		if p.PieceAt(rookHome) == rook {
			// The king crosses the first two squares and the rook passes
			// the third; all three must be empty but only the king's path
			// must be safe.
			one := Towards(king, West)
			two := Towards(one, West)
			three := Towards(two, West)
			if !occ.Has(one) && !occ.Has(two) && !occ.Has(three) &&
				p.SquaresAttacking(one, them).Empty() &&
				p.SquaresAttacking(two, them).Empty() {
				moves = append(moves, QueensideCastleMove(king, two))
			}
		}
	}

	return moves
}

// FindMove resolves a move given in UCI coordinate form ("e2e4", "e7e8q")
// against the pseudo-legal moves available in this position. It reports
// false when no generated move renders to the given text.
func (p *Position) FindMove(uci string) (Move, bool) {
	moves := GeneratePseudoLegal(p, make([]Move, 0, MaxMoves))
	for _, m := range moves {
		if m.String() == uci {
			return m, true
		}
	}
	return NullMove(), false
}
