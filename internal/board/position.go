// path: internal/board/position.go
package board

// irreversibleState holds the facets of a position that a move destroys and
// that cannot be recovered from the move alone. One frame exists before any
// move is made; MakeMove pushes a frame and UnmakeMove pops it.
type irreversibleState struct {
	epSquare      Square
	castling      CastlingRights
	halfmoveClock uint16
	capturedPiece Piece
}

// Position is the full state of a chess game at one point in time. It owns
// an incrementally maintained zobrist hash: every mutation of the board,
// side to move, castling rights or en-passant file XORs the matching key, so
// the hash is always equal to the hash recomputed from scratch.
type Position struct {
	piecesBySquare [SquareCount]Piece
	boardsByPiece  [12]Bitboard
	boardsByColor  [2]Bitboard
	sideToMove     Color
	ply            int
	states         []irreversibleState
	hash           uint64
}

// NewPosition returns an empty board with white to move and a single initial
// irreversible-state frame.
func NewPosition() *Position {
	p := &Position{}
	p.states = append(p.states, irreversibleState{epSquare: NoSquare})
	return p
}

// Copy returns an independent copy of the position. Workers copy the root
// position by value before searching on it.
func (p *Position) Copy() *Position {
	c := *p
	c.states = append([]irreversibleState(nil), p.states...)
	return &c
}

func (p *Position) topState() *irreversibleState {
	return &p.states[len(p.states)-1]
}

// AddPiece puts a piece on an empty square.
func (p *Position) AddPiece(piece Piece, sq Square) {
	if p.PieceAt(sq) != NoPiece {
		panicf("adding piece to non-empty square %s", sq)
	}
	p.piecesBySquare[sq] = piece
	p.boardsByPiece[piece-1] = p.boardsByPiece[piece-1].Add(sq)
	p.boardsByColor[piece.Color()] = p.boardsByColor[piece.Color()].Add(sq)
	p.hash ^= zobristPiece(sq, piece)
}

// RemovePiece removes and returns the piece on a square.
func (p *Position) RemovePiece(sq Square) Piece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		panicf("removing piece from empty square %s", sq)
	}
	p.piecesBySquare[sq] = NoPiece
	p.boardsByPiece[piece-1] = p.boardsByPiece[piece-1].Remove(sq)
	p.boardsByColor[piece.Color()] = p.boardsByColor[piece.Color()].Remove(sq)
	p.hash ^= zobristPiece(sq, piece)
	return piece
}

func (p *Position) PieceAt(sq Square) Piece {
	return p.piecesBySquare[sq]
}

// Pieces returns all pieces belonging to a side.
func (p *Position) Pieces(side Color) Bitboard {
	return p.boardsByColor[side]
}

// PiecesOfKind returns a side's pieces of one kind.
func (p *Position) PiecesOfKind(side Color, kind PieceKind) Bitboard {
	return p.boardsByPiece[MakePiece(kind, side)-1]
}

func (p *Position) SideToMove() Color { return p.sideToMove }

func (p *Position) EnPassantSquare() Square { return p.topState().epSquare }

func (p *Position) CastlingRights() CastlingRights { return p.topState().castling }

func (p *Position) HalfmoveClock() int { return int(p.topState().halfmoveClock) }

func (p *Position) Ply() int { return p.ply }

// Hash is the position's zobrist hash.
func (p *Position) Hash() uint64 { return p.hash }

// setSideToMove, setCastlingRights and setEnPassantSquare are used by the
// FEN parser; they keep the hash in sync with the field they mutate.
func (p *Position) setSideToMove(side Color) {
	if p.sideToMove != side {
		p.hash ^= zobristSideToMove()
	}
	p.sideToMove = side
}

func (p *Position) setCastlingRights(rights CastlingRights) {
	st := p.topState()
	for _, right := range [4]CastlingRights{CastleWhiteKingside, CastleWhiteQueenside, CastleBlackKingside, CastleBlackQueenside} {
		if (st.castling ^ rights).Has(right) {
			p.hash ^= zobristCastlingRight(right)
		}
	}
	st.castling = rights
}

func (p *Position) setEnPassantSquare(sq Square) {
	st := p.topState()
	if st.epSquare != NoSquare {
		p.hash ^= zobristEnPassant(st.epSquare.File())
	}
	if sq != NoSquare {
		p.hash ^= zobristEnPassant(sq.File())
	}
	st.epSquare = sq
}

func (p *Position) CanCastleKingside(side Color) bool {
	mask := CastleWhiteKingside
	if side == Black {
		mask = CastleBlackKingside
	}
	return p.CastlingRights().Has(mask)
}

func (p *Position) CanCastleQueenside(side Color) bool {
	mask := CastleWhiteQueenside
	if side == Black {
		mask = CastleBlackQueenside
	}
	return p.CastlingRights().Has(mask)
}

// clearCastlingRight drops one castling right, if still held, from the top
// state frame and the hash.
func (p *Position) clearCastlingRight(right CastlingRights) {
	st := p.topState()
	if !st.castling.Has(right) {
		return
	}
	st.castling &^= right
	p.hash ^= zobristCastlingRight(right)
}

// MakeMove applies a move. The move must be pseudo-legal in this position;
// it may still leave the mover's king in check, which callers filter by
// testing IsCheck on the side that just moved.
func (p *Position) MakeMove(m Move) {
	us := p.sideToMove
	src, dst := m.Source(), m.Destination()
	piece := p.RemovePiece(src)
	if piece.Color() != us {
		panicf("moving piece %c that does not belong to %s", piece.Char(), us)
	}

	down := South
	if us == Black {
		down = North
	}

	old := *p.topState()
	if old.epSquare != NoSquare {
		p.hash ^= zobristEnPassant(old.epSquare.File())
	}
	p.states = append(p.states, irreversibleState{
		epSquare:      NoSquare,
		castling:      old.castling,
		halfmoveClock: old.halfmoveClock + 1,
		capturedPiece: NoPiece,
	})
	st := p.topState()

	if m.IsCapture() {
		target := dst
		if m.IsEnPassant() {
			// En passant is the one move whose captured piece does not sit
			// on the destination square.
			target = Towards(dst, down)
		}
		captured := p.RemovePiece(target)
		if captured.Kind() == King {
			panicf("illegal king capture on %s", target)
		}
		if captured.Color() != us.Other() {
			panicf("captured piece on %s does not belong to opponent", target)
		}
		st.capturedPiece = captured
	}

	if m.IsCastle() {
		// Castles are encoded as king moves; the king lands on dst below.
		// Only the rook needs special handling here.
		rookSrc, rookDst := castleRookSquares(us, m.IsKingsideCastle(), dst)
		rook := p.RemovePiece(rookSrc)
		if rook.Kind() != Rook || rook.Color() != us {
			panicf("expected own rook on %s for castle", rookSrc)
		}
		p.AddPiece(rook, rookDst)
	}

	if m.IsPromotion() {
		piece = MakePiece(m.PromotionPiece(), us)
	}

	p.AddPiece(piece, dst)
	p.ply++
	if piece.Kind() == Pawn || m.IsCapture() || m.IsPromotion() {
		st.halfmoveClock = 0
	}

	switch piece.Kind() {
	case King:
		// King moves invalidate both of the mover's castling rights.
		if us == White {
			p.clearCastlingRight(CastleWhiteKingside)
			p.clearCastlingRight(CastleWhiteQueenside)
		} else {
			p.clearCastlingRight(CastleBlackKingside)
			p.clearCastlingRight(CastleBlackQueenside)
		}
	case Rook:
		// Rook moves invalidate the castling right on the corner the rook
		// came from.
		kingsideRook, queensideRook := H1, A1
		kingsideRight, queensideRight := CastleWhiteKingside, CastleWhiteQueenside
		if us == Black {
			kingsideRook, queensideRook = H8, A8
			kingsideRight, queensideRight = CastleBlackKingside, CastleBlackQueenside
		}
		if src == kingsideRook {
			p.clearCastlingRight(kingsideRight)
		} else if src == queensideRook {
			p.clearCastlingRight(queensideRight)
		}
	case Pawn:
		if m.IsDoublePawnPush() {
			st.epSquare = Towards(dst, down)
			p.hash ^= zobristEnPassant(st.epSquare.File())
		}
	}

	p.sideToMove = us.Other()
	p.hash ^= zobristSideToMove()
}

// UnmakeMove reverses a move made by MakeMove, restoring the position
// bitwise, hash included.
func (p *Position) UnmakeMove(m Move) {
	popped := *p.topState()
	p.states = p.states[:len(p.states)-1]
	prev := p.topState()
	p.ply--

	us := p.sideToMove.Other()
	src, dst := m.Source(), m.Destination()

	piece := p.RemovePiece(dst)
	if m.IsPromotion() {
		piece = MakePiece(Pawn, us)
	}
	p.AddPiece(piece, src)

	if m.IsCapture() {
		target := dst
		if m.IsEnPassant() {
			down := South
			if us == Black {
				down = North
			}
			target = Towards(dst, down)
		}
		p.AddPiece(popped.capturedPiece, target)
	}

	if m.IsCastle() {
		rookHome, rookCastled := castleRookSquares(us, m.IsKingsideCastle(), dst)
		rook := p.RemovePiece(rookCastled)
		if rook.Kind() != Rook || rook.Color() != us {
			panicf("expected own rook on %s unwinding castle", rookCastled)
		}
		p.AddPiece(rook, rookHome)
	}

	p.sideToMove = us
	p.hash ^= zobristSideToMove()

	// Restore the hash contributions of the popped frame: the en-passant
	// file changes back and any castling rights the move cleared return.
	if popped.epSquare != NoSquare {
		p.hash ^= zobristEnPassant(popped.epSquare.File())
	}
	if prev.epSquare != NoSquare {
		p.hash ^= zobristEnPassant(prev.epSquare.File())
	}
	for _, right := range [4]CastlingRights{CastleWhiteKingside, CastleWhiteQueenside, CastleBlackKingside, CastleBlackQueenside} {
		if (popped.castling ^ prev.castling).Has(right) {
			p.hash ^= zobristCastlingRight(right)
		}
	}
}

// castleRookSquares returns the rook's home corner and its post-castle
// square for the given castle, where kingDst is the king's destination.
func castleRookSquares(us Color, kingside bool, kingDst Square) (home, castled Square) {
	if kingside {
		home = H1
		if us == Black {
			home = H8
		}
		return home, Towards(kingDst, West)
	}
	home = A1
	if us == Black {
		home = A8
	}
	return home, Towards(kingDst, East)
}

// SquaresAttacking returns the set of side's pieces that attack the target
// square. Attacks are symmetric for every piece but pawns, so each kind's
// attack set cast from the target intersected with that kind's pieces finds
// the attackers; pawn attackers come from the opposite color's pawn table.
func (p *Position) SquaresAttacking(target Square, side Color) Bitboard {
	occ := p.Pieces(White) | p.Pieces(Black)

	var attackers Bitboard
	attackers |= PawnAttacks(target, side.Other()) & p.PiecesOfKind(side, Pawn)
	attackers |= KnightAttacks(target) & p.PiecesOfKind(side, Knight)
	attackers |= BishopAttacks(target, occ) & p.PiecesOfKind(side, Bishop)
	attackers |= RookAttacks(target, occ) & p.PiecesOfKind(side, Rook)
	attackers |= QueenAttacks(target, occ) & p.PiecesOfKind(side, Queen)
	attackers |= KingAttacks(target) & p.PiecesOfKind(side, King)
	return attackers
}

// KingSquare returns the square of side's king.
func (p *Position) KingSquare(side Color) Square {
	return p.PiecesOfKind(side, King).ExpectOne()
}

// IsCheck reports whether side's king is attacked.
func (p *Position) IsCheck(side Color) bool {
	return !p.SquaresAttacking(p.KingSquare(side), side.Other()).Empty()
}
