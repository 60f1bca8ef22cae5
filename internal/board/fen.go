// path: internal/board/fen.go
package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartposFEN is the standard chess starting position.
const StartposFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a position from a FEN string. Errors wrap ErrInvalidFEN.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}

	p := NewPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := Rank8 - Rank(i)
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > 8 {
					return nil, fmt.Errorf("%w: rank %c overflows 8 files", ErrInvalidFEN, rank.Char())
				}
				continue
			}
			if c == '0' || c == '9' {
				return nil, fmt.Errorf("%w: bad empty-square digit %q", ErrInvalidFEN, c)
			}
			piece := PieceFromChar(c)
			if piece == NoPiece {
				return nil, fmt.Errorf("%w: unknown piece character %q", ErrInvalidFEN, c)
			}
			if file >= 8 {
				return nil, fmt.Errorf("%w: rank %c overflows 8 files", ErrInvalidFEN, rank.Char())
			}
			p.AddPiece(piece, SquareOf(File(file), rank))
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %c sums to %d files, want 8", ErrInvalidFEN, rank.Char(), file)
		}
	}

	switch fields[1] {
	case "w":
		p.setSideToMove(White)
	case "b":
		p.setSideToMove(Black)
	default:
		return nil, fmt.Errorf("%w: unknown side to move %q", ErrInvalidFEN, fields[1])
	}

	rights := NoCastle
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				rights |= CastleWhiteKingside
			case 'Q':
				rights |= CastleWhiteQueenside
			case 'k':
				rights |= CastleBlackKingside
			case 'q':
				rights |= CastleBlackQueenside
			default:
				return nil, fmt.Errorf("%w: unknown castling character %q", ErrInvalidFEN, fields[2][i])
			}
		}
	}
	p.setCastlingRights(rights)

	if fields[3] != "-" {
		sq := SquareFromString(fields[3])
		if sq == NoSquare {
			return nil, fmt.Errorf("%w: bad en-passant square %q", ErrInvalidFEN, fields[3])
		}
		p.setEnPassantSquare(sq)
	}

	// The halfmove clock and fullmove number are optional; without them the
	// clock is zero and the game starts at move one.
	if len(fields) > 4 {
		clock, err := strconv.Atoi(fields[4])
		if err != nil || clock < 0 {
			return nil, fmt.Errorf("%w: bad halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		p.topState().halfmoveClock = uint16(clock)
	}
	fullmove := 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: bad fullmove number %q", ErrInvalidFEN, fields[5])
		}
		fullmove = n
	}
	p.ply = 2 * (fullmove - 1)
	if p.sideToMove == Black {
		p.ply++
	}

	return p, nil
}

// FEN renders the position as a six-field FEN string. ParseFEN round-trips
// through it for every canonical FEN.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := Rank8; ; rank-- {
		empty := 0
		for file := FileA; file < fileCount; file++ {
			piece := p.PieceAt(SquareOf(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty != 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty != 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank == Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	rights := p.CastlingRights()
	if rights == NoCastle {
		sb.WriteByte('-')
	} else {
		if rights.Has(CastleWhiteKingside) {
			sb.WriteByte('K')
		}
		if rights.Has(CastleWhiteQueenside) {
			sb.WriteByte('Q')
		}
		if rights.Has(CastleBlackKingside) {
			sb.WriteByte('k')
		}
		if rights.Has(CastleBlackQueenside) {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if ep := p.EnPassantSquare(); ep != NoSquare {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock(), 1+p.ply/2)
	return sb.String()
}
