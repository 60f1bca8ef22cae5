// path: internal/board/move.go
package board

import "strings"

// Move packs a chess move into 16 bits so move lists and transposition table
// entries stay cheap to copy:
//
//	bit 0      promotion
//	bit 1      capture
//	bits 2-7   source square
//	bit 8      special 0
//	bit 9      special 1
//	bits 10-15 destination square
//
// The zero value is the null move (a quiet a1a1). The special bits combined
// with the promotion and capture flags distinguish every move class: castles,
// double pawn pushes, en passant, and the four promotion pieces.
type Move uint16

const (
	movePromotionBit Move = 1 << 0
	moveCaptureBit   Move = 1 << 1
	moveSpecial0Bit  Move = 1 << 8
	moveSpecial1Bit  Move = 1 << 9

	moveSourceShift = 2
	moveDestShift   = 10
)

func newMove(src, dst Square) Move {
	return Move(src)<<moveSourceShift | Move(dst)<<moveDestShift
}

func QuietMove(src, dst Square) Move { return newMove(src, dst) }

func CaptureMove(src, dst Square) Move {
	return newMove(src, dst) | moveCaptureBit
}

func EnPassantMove(src, dst Square) Move {
	return CaptureMove(src, dst) | moveSpecial1Bit
}

func DoublePawnPushMove(src, dst Square) Move {
	return newMove(src, dst) | moveSpecial1Bit
}

func PromotionMove(src, dst Square, kind PieceKind) Move {
	m := newMove(src, dst) | movePromotionBit
	switch kind {
	case Bishop:
		m |= moveSpecial1Bit
	case Rook:
		m |= moveSpecial0Bit
	case Queen:
		m |= moveSpecial0Bit | moveSpecial1Bit
	}
	return m
}

func PromotionCaptureMove(src, dst Square, kind PieceKind) Move {
	return PromotionMove(src, dst, kind) | moveCaptureBit
}

func KingsideCastleMove(src, dst Square) Move {
	return newMove(src, dst) | moveSpecial0Bit
}

func QueensideCastleMove(src, dst Square) Move {
	return newMove(src, dst) | moveSpecial0Bit | moveSpecial1Bit
}

func NullMove() Move { return 0 }

func (m Move) Source() Square { return Square(m >> moveSourceShift & 0x3F) }

func (m Move) Destination() Square { return Square(m >> moveDestShift & 0x3F) }

func (m Move) IsNull() bool { return m == 0 }

func (m Move) IsCapture() bool { return m&moveCaptureBit != 0 }

func (m Move) IsPromotion() bool { return m&movePromotionBit != 0 }

func (m Move) flags() (promotion, capture, special0, special1 bool) {
	return m&movePromotionBit != 0, m&moveCaptureBit != 0,
		m&moveSpecial0Bit != 0, m&moveSpecial1Bit != 0
}

func (m Move) IsQuiet() bool {
	promotion, capture, special0, special1 := m.flags()
	return !promotion && !capture && !special0 && !special1
}

func (m Move) IsKingsideCastle() bool {
	promotion, capture, special0, special1 := m.flags()
	return !promotion && !capture && special0 && !special1
}

func (m Move) IsQueensideCastle() bool {
	promotion, capture, special0, special1 := m.flags()
	return !promotion && !capture && special0 && special1
}

func (m Move) IsCastle() bool {
	return m.IsKingsideCastle() || m.IsQueensideCastle()
}

func (m Move) IsDoublePawnPush() bool {
	promotion, capture, special0, special1 := m.flags()
	return !promotion && !capture && !special0 && special1
}

func (m Move) IsEnPassant() bool {
	promotion, capture, special0, special1 := m.flags()
	return !promotion && capture && !special0 && special1
}

// PromotionPiece is only valid on promotion moves.
func (m Move) PromotionPiece() PieceKind {
	if !m.IsPromotion() {
		panicf("PromotionPiece on non-promotion move %s", m)
	}
	special0, special1 := m&moveSpecial0Bit != 0, m&moveSpecial1Bit != 0
	switch {
	case special0 && special1:
		return Queen
	case special0:
		return Rook
	case special1:
		return Bishop
	default:
		return Knight
	}
}

// String renders the move in UCI coordinate form, "0000" for the null move.
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.Source().String())
	sb.WriteString(m.Destination().String())
	if m.IsPromotion() {
		switch m.PromotionPiece() {
		case Knight:
			sb.WriteByte('n')
		case Bishop:
			sb.WriteByte('b')
		case Rook:
			sb.WriteByte('r')
		case Queen:
			sb.WriteByte('q')
		}
	}
	return sb.String()
}
