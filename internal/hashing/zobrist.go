package hashing

import (
	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// numPieceKeys covers six kinds for each colour.
const numPieceKeys = 12

var (
	pieceKeys [chess.NumSquares][numPieceKeys]uint64
	blackKey  uint64
)

func init() {
	// splitmix64 with a fixed seed keeps hashes stable between runs.
	seed := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for sq := range pieceKeys {
		for k := range pieceKeys[sq] {
			pieceKeys[sq][k] = next()
		}
	}
	blackKey = next()
}

func pieceIndex(p chess.ColouredPiece) int {
	i := int(p.Kind) - int(chess.Pawn)
	if p.Colour == chess.Black {
		i += len(chess.Kinds)
	}
	return i
}

// ZobristHash hashes a state string and the side to move. Squares that do
// not hold a piece letter contribute nothing.
func ZobristHash(state string, toMove chess.Colour) uint64 {
	var h uint64
	for sq := chess.Square(0); sq < chess.NumSquares && int(sq) < len(state); sq++ {
		if p, ok := notation.PieceAt(state, sq); ok && p.Kind.Valid() {
			h ^= pieceKeys[sq][pieceIndex(p)]
		}
	}
	if toMove == chess.Black {
		h ^= blackKey
	}
	return h
}

// WeakHash is an independent hash of the raw state text.
func WeakHash(state string) uint64 {
	return xxhash.Sum64String(state)
}
