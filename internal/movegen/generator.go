// Package movegen generates pseudo-legal moves from a 64-character state
// string. Generation reads nothing but the string, so any what-if position
// can be queried without touching a live board.
//
// Pawns, knights and kings have generators. Bishops, rooks and queens
// produce no moves unless sliding generation is enabled with
// WithSlidingPieces.
package movegen

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// expectedMoves is the initial capacity of a move list.
const expectedMoves = 40

// Generator produces move lists for one side of a state string.
// A Generator holds no position state and is safe for concurrent use.
type Generator struct {
	sliders bool
	logger  *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSlidingPieces enables ray generation for bishops, rooks and queens.
func WithSlidingPieces(enabled bool) Option {
	return func(g *Generator) {
		g.sliders = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator. By default sliding pieces generate nothing.
func New(opts ...Option) *Generator {
	g := &Generator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SlidingPieces reports whether bishops, rooks and queens generate moves.
func (g *Generator) SlidingPieces() bool {
	return g.sliders
}

var defaultGenerator = New()

// Generate returns the pseudo-legal moves for colour using the default Generator.
func Generate(state string, colour chess.Colour) ([]chess.Move, error) {
	return defaultGenerator.Generate(state, colour)
}

// Generate returns the pseudo-legal moves for colour in state, scanning
// squares in index order. The state must be an encoded state string
// ('0' or piece letters); anything else returns ErrMalformedState.
func (g *Generator) Generate(state string, colour chess.Colour) ([]chess.Move, error) {
	if err := notation.ValidateState(state); err != nil {
		return nil, errors.Wrap(err, "generating moves")
	}

	pos := position(state)
	moves := make([]chess.Move, 0, expectedMoves)

	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.Square(i)
		piece, ok := pos.piece(sq)
		if !ok || piece.Colour != colour {
			continue
		}
		row, col := sq.Row(), sq.Col()

		switch piece.Kind {
		case chess.Pawn:
			moves = pos.pawnMoves(moves, row, col, colour)
		case chess.Knight:
			moves = pos.knightMoves(moves, row, col, colour)
		case chess.King:
			moves = pos.kingMoves(moves, row, col, colour)
		default:
			if g.sliders && piece.Kind.Slides() {
				moves = pos.slidingMoves(moves, piece.Kind, row, col, rays(piece.Kind))
			}
		}
	}

	g.logger.Debug("moves_generated",
		zap.Stringer("colour", colour),
		zap.Int("count", len(moves)),
		zap.Bool("sliders", g.sliders),
	)
	return moves, nil
}

// From returns the moves in list that start on sq.
func From(moves []chess.Move, sq chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range moves {
		if m.From == sq {
			out = append(out, m)
		}
	}
	return out
}
