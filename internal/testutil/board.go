// Package testutil provides shared test utilities for the chesscore-go project.
// These helpers build boards and state strings from square names so tests
// read like diagrams instead of 64-character literals.
package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// EmptyState is a state string with no pieces.
var EmptyState = strings.Repeat("0", chess.NumSquares)

// State builds a 64-character state string from square names ("e2") to
// piece letters ('P', 'n', ...). It panics on a bad square name.
func State(pieces map[string]byte) string {
	buf := []byte(EmptyState)
	for name, letter := range pieces {
		sq, ok := chess.ParseSquare(name)
		if !ok {
			panic("testutil: bad square " + name)
		}
		buf[sq] = letter
	}
	return string(buf)
}

// Board builds a board from square names to pieces. It panics on a bad square name.
func Board(pieces map[string]chess.ColouredPiece) *chess.Board {
	b := chess.NewBoard()
	for name, p := range pieces {
		sq, ok := chess.ParseSquare(name)
		if !ok {
			panic("testutil: bad square " + name)
		}
		b.Place(sq, p)
	}
	return b
}

// MustSquare parses a square name or fails the test.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("bad square %q", name)
	}
	return sq
}

// Squares parses several square names, panicking on a bad one.
func Squares(names ...string) []chess.Square {
	out := make([]chess.Square, 0, len(names))
	for _, n := range names {
		sq, ok := chess.ParseSquare(n)
		if !ok {
			panic("testutil: bad square " + n)
		}
		out = append(out, sq)
	}
	return out
}
