// Package rules answers the two questions a host UI asks during a drag:
// may this piece be picked up, and may it be dropped on that square.
package rules

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/movegen"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// Filter validates drops by regenerating the moving side's moves.
type Filter struct {
	gen    *movegen.Generator
	logger *zap.Logger
}

// NewFilter creates a Filter backed by gen. A nil gen uses the default generator.
func NewFilter(gen *movegen.Generator, logger *zap.Logger) *Filter {
	if gen == nil {
		gen = movegen.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filter{gen: gen, logger: logger}
}

// IsLegal reports whether piece may move from one square to another on
// board. The board is encoded, moves are generated for the piece's colour,
// and the drop is legal when some generated move has the same endpoints.
// Only the colour of piece matters; the board is never modified.
// Off-board squares are never legal.
func (f *Filter) IsLegal(board *chess.Board, piece chess.ColouredPiece, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	// An encoded board is always a well-formed state.
	legal, _ := f.IsLegalState(notation.EncodeState(board), piece.Colour, from, to)
	return legal
}

// IsLegalState is IsLegal on a state string supplied by the caller.
// A malformed state returns ErrMalformedState.
func (f *Filter) IsLegalState(state string, colour chess.Colour, from, to chess.Square) (bool, error) {
	moves, err := f.gen.Generate(state, colour)
	if err != nil {
		return false, err
	}
	legal := slices.ContainsFunc(moves, func(m chess.Move) bool {
		return m.Matches(from, to)
	})
	if !legal {
		f.logger.Debug("move_rejected",
			zap.Stringer("colour", colour),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Int("candidates", len(moves)),
		)
	}
	return legal, nil
}

// IsLegalTag is IsLegal for a host tag. Tags that do not encode a piece are
// never legal.
func (f *Filter) IsLegalTag(board *chess.Board, tag notation.Tag, from, to chess.Square) bool {
	piece, err := notation.DecodeTag(tag)
	if err != nil {
		return false
	}
	return f.IsLegal(board, piece, from, to)
}

// MayPickUp reports whether piece belongs to the side to move.
func MayPickUp(piece chess.ColouredPiece, active chess.Colour) bool {
	return piece.Colour == active
}

// MayPickUpTag is MayPickUp for a host tag. Tags that do not encode a piece
// may never be picked up.
func MayPickUpTag(tag notation.Tag, active chess.Colour) bool {
	if _, err := notation.DecodeTag(tag); err != nil {
		return false
	}
	return notation.TagColour(tag) == active
}
