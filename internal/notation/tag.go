package notation

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Tag is the host framework's packed piece value: kind ordinal plus 128 for Black.
// White pieces are 1-6, Black pieces 129-134, and 0 means no piece.
type Tag int

// BlackTagBit is set in every Black piece's tag.
const BlackTagBit Tag = 128

// NoTag marks an empty holder.
const NoTag Tag = 0

// EncodeTag packs a piece for the host.
func EncodeTag(p chess.ColouredPiece) Tag {
	t := Tag(p.Kind)
	if p.Colour == chess.Black {
		t += BlackTagBit
	}
	return t
}

// DecodeTag unpacks a host tag. Only 1-6 and 129-134 are pieces.
func DecodeTag(t Tag) (chess.ColouredPiece, error) {
	colour := chess.White
	kind := t
	if t >= BlackTagBit {
		colour = chess.Black
		kind = t - BlackTagBit
	}
	if !chess.Piece(kind).Valid() {
		return chess.ColouredPiece{}, errors.Wrapf(errors.ErrInvalidTag, "tag %d", int(t))
	}
	return chess.ColouredPiece{Kind: chess.Piece(kind), Colour: colour}, nil
}

// TagColour reads only the colour bit, the way the host compares sides.
func TagColour(t Tag) chess.Colour {
	if t&BlackTagBit != 0 {
		return chess.Black
	}
	return chess.White
}
