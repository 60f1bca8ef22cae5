// path: internal/board/errors.go
package board

import (
	"errors"
	"fmt"
)

// ErrInvalidFEN is wrapped by every FEN parse failure.
var ErrInvalidFEN = errors.New("invalid FEN")

// panicf reports a violated internal invariant. These indicate engine bugs
// and are never recovered.
func panicf(format string, args ...any) {
	panic(fmt.Sprintf("board: "+format, args...))
}
