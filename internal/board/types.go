// path: internal/board/types.go
// Package board implements the core chess board representation: squares,
// pieces, bitboards, attack tables, move encoding, position state and
// pseudo-legal move generation.
package board

import "fmt"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	return 1 - c
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	pieceKindCount
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Piece is a colored piece. The zero value is NoPiece so that a cleared
// board array reads as empty.
type Piece uint8

const (
	NoPiece Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	pieceCount
)

const pieceChars = " PNBRQKpnbrqk"

func MakePiece(kind PieceKind, color Color) Piece {
	if color == White {
		return Piece(uint8(kind)) + WhitePawn
	}
	return Piece(uint8(kind)) + BlackPawn
}

func (p Piece) Kind() PieceKind {
	if p >= BlackPawn {
		return PieceKind(p - BlackPawn)
	}
	return PieceKind(p - WhitePawn)
}

func (p Piece) Color() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// Char returns the FEN letter for the piece. Only valid on real pieces.
func (p Piece) Char() byte {
	if p == NoPiece || p >= pieceCount {
		panic(fmt.Sprintf("board: invalid piece %d in Char", uint8(p)))
	}
	return pieceChars[p]
}

// PieceFromChar maps a FEN letter to a piece, NoPiece if unknown.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'p':
		return BlackPawn
	case 'N':
		return WhiteKnight
	case 'n':
		return BlackKnight
	case 'B':
		return WhiteBishop
	case 'b':
		return BlackBishop
	case 'R':
		return WhiteRook
	case 'r':
		return BlackRook
	case 'Q':
		return WhiteQueen
	case 'q':
		return BlackQueen
	case 'K':
		return WhiteKing
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// Square indexes the board a1=0, b1=1, ..., h8=63 (file + 8*rank).
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	SquareCount
	NoSquare
)

type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	fileCount
	NoFile
)

type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	rankCount
	NoRank
)

func (f File) Char() byte { return 'a' + byte(f) }
func (r Rank) Char() byte { return '1' + byte(r) }

func FileFromChar(c byte) File {
	if c < 'a' || c > 'h' {
		return NoFile
	}
	return File(c - 'a')
}

func RankFromChar(c byte) Rank {
	if c < '1' || c > '8' {
		return NoRank
	}
	return Rank(c - '1')
}

func SquareOf(file File, rank Rank) Square {
	return Square(uint8(rank)*8 + uint8(file))
}

func (s Square) File() File { return File(s & 7) }
func (s Square) Rank() Rank { return Rank(s >> 3) }

// HorizontalFlip mirrors the square across the equator of the board, for
// viewing a square from black's perspective.
func HorizontalFlip(s Square) Square {
	return SquareOf(s.File(), Rank8-s.Rank())
}

func (s Square) String() string {
	if s >= SquareCount {
		return "-"
	}
	return string([]byte{s.File().Char(), s.Rank().Char()})
}

// SquareFromString parses a two-character square name such as "e4".
func SquareFromString(str string) Square {
	if len(str) != 2 {
		return NoSquare
	}
	f := FileFromChar(str[0])
	r := RankFromChar(str[1])
	if f == NoFile || r == NoRank {
		return NoSquare
	}
	return SquareOf(f, r)
}

// Direction is a signed square delta.
type Direction int8

const (
	North Direction = 8
	East  Direction = 1
	South Direction = -8
	West  Direction = -1

	NorthEast = North + East
	NorthWest = North + West
	SouthEast = South + East
	SouthWest = South + West
)

// Towards offsets a square by a direction. The caller is responsible for
// keeping the result on the board.
func Towards(s Square, d Direction) Square {
	return Square(int8(s) + int8(d))
}

// CastlingRights is a 4-bit set of the castle moves still available.
type CastlingRights uint8

const (
	NoCastle             CastlingRights = 0
	CastleWhiteKingside  CastlingRights = 1 << 0
	CastleWhiteQueenside CastlingRights = 1 << 1
	CastleBlackKingside  CastlingRights = 1 << 2
	CastleBlackQueenside CastlingRights = 1 << 3

	CastleWhite = CastleWhiteKingside | CastleWhiteQueenside
	CastleBlack = CastleBlackKingside | CastleBlackQueenside
	CastleAll   = CastleWhite | CastleBlack
)

func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r == r }
