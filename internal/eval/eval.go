// path: internal/eval/eval.go
package eval

import "github.com/swgillespie/altair/internal/board"

// The evaluation is Tomasz Michniewski's "Simplified Evaluation Function":
// material plus a per-kind piece-square bonus, with black reading its tables
// through a horizontal flip of the board.

var pieceValues = [6]Value{
	/* P */ 100,
	/* N */ 320,
	/* B */ 330,
	/* R */ 500,
	/* Q */ 900,
	/* K */ 10000,
}

var pawnTable = [64]Value{
	//       a   b   c   d   e   f   g   h
	/* 1 */ 0, 0, 0, 0, 0, 0, 0, 0,
	/* 2 */ 5, 10, 10, -20, -20, 10, 10, 5,
	/* 3 */ 5, -5, -10, 0, 0, -10, -5, 5,
	/* 4 */ 0, 0, 0, 20, 20, 0, 0, 0,
	/* 5 */ 5, 5, 10, 25, 25, 10, 5, 5,
	/* 6 */ 10, 10, 20, 30, 30, 20, 10, 10,
	/* 7 */ 50, 50, 50, 50, 50, 50, 50, 50,
	/* 8 */ 0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]Value{
	//        a    b    c    d    e    f    g    h
	/* 1 */ -50, -40, -30, -30, -30, -30, -40, -50,
	/* 2 */ -40, -20, 0, 5, 5, 0, -20, -40,
	/* 3 */ -30, 0, 10, 15, 15, 10, 0, -30,
	/* 4 */ -30, 5, 15, 20, 20, 15, 5, -30,
	/* 5 */ -30, 0, 15, 20, 20, 15, 0, -30,
	/* 6 */ -30, 5, 10, 15, 15, 10, 5, -30,
	/* 7 */ -40, -20, 0, 5, 5, 0, -20, -40,
	/* 8 */ -50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]Value{
	//        a    b    c    d    e    f    g    h
	/* 1 */ -20, -10, -10, -10, -10, -10, -10, -20,
	/* 2 */ -10, 5, 0, 0, 0, 0, 5, -10,
	/* 3 */ -10, 10, 10, 10, 10, 10, 10, -10,
	/* 4 */ -10, 0, 10, 10, 10, 10, 0, -10,
	/* 5 */ -10, 5, 5, 10, 10, 5, 5, -10,
	/* 6 */ -10, 0, 5, 10, 10, 5, 0, -10,
	/* 7 */ -10, 0, 0, 0, 0, 0, 0, -10,
	/* 8 */ -20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]Value{
	//       a   b   c   d   e   f   g   h
	/* 1 */ 0, 0, 0, 5, 5, 0, 0, 0,
	/* 2 */ -5, 0, 0, 0, 0, 0, 0, -5,
	/* 3 */ -5, 0, 0, 0, 0, 0, 0, -5,
	/* 4 */ -5, 0, 0, 0, 0, 0, 0, -5,
	/* 5 */ -5, 0, 0, 0, 0, 0, 0, -5,
	/* 6 */ -5, 0, 0, 0, 0, 0, 0, -5,
	/* 7 */ 5, 10, 10, 10, 10, 10, 10, 5,
	/* 8 */ 0, 0, 0, 0, 0, 0, 0, 0,
}

var queenTable = [64]Value{
	//        a    b    c   d   e    f    g    h
	/* 1 */ -20, -10, -10, -5, -5, -10, -10, -20,
	/* 2 */ -10, 0, 5, 0, 0, 0, 0, -10,
	/* 3 */ -10, 5, 5, 5, 5, 5, 5, -10,
	/* 4 */ 0, 0, 5, 5, 5, 5, 0, -5,
	/* 5 */ -5, 0, 5, 5, 5, 5, 0, -5,
	/* 6 */ -10, 0, 5, 5, 5, 5, 0, -10,
	/* 7 */ -10, 0, 0, 0, 0, 0, 0, -10,
	/* 8 */ -20, -10, -10, -5, -5, -10, -10, -20,
}

var kindTables = [6]*[64]Value{
	&pawnTable, &knightTable, &bishopTable, &rookTable, &queenTable, nil,
}

func evaluatePiece(pos *board.Position, sq board.Square, side board.Color) Value {
	piece := pos.PieceAt(sq)
	if piece == board.NoPiece {
		panic("eval: no piece at square in evaluatePiece")
	}
	kind := piece.Kind()
	value := pieceValues[kind]
	normalized := sq
	if side == board.Black {
		normalized = board.HorizontalFlip(sq)
	}
	if table := kindTables[kind]; table != nil {
		value = value.Add(table[normalized])
	}
	return value
}

// Evaluate scores the position in centipawns from the perspective of the
// side to move.
func Evaluate(pos *board.Position) Value {
	var whiteTotal, blackTotal Value

	for b := pos.Pieces(board.White); !b.Empty(); {
		whiteTotal = whiteTotal.Add(evaluatePiece(pos, b.Pop(), board.White))
	}
	for b := pos.Pieces(board.Black); !b.Empty(); {
		blackTotal = blackTotal.Add(evaluatePiece(pos, b.Pop(), board.Black))
	}

	if pos.SideToMove() == board.White {
		return whiteTotal.Sub(blackTotal)
	}
	return blackTotal.Sub(whiteTotal)
}
