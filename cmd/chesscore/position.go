package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/notation"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/store"
)

// position is a state string with a side to move.
type position struct {
	source string
	state  string
	toMove chess.Colour
	gameID string
}

// overrideColour returns the -colour choice, or def when it is unset.
func (a *app) overrideColour(def chess.Colour) chess.Colour {
	if *colourFlag == "" {
		return def
	}
	return a.cfg.Setup.FirstColour()
}

// resolve picks the position from -load, -state, -fen or the configured
// placement, in that order, saving it when -save is set.
func (a *app) resolve(ctx context.Context) (*position, error) {
	var pos *position
	var err error

	switch {
	case *loadFlag != "":
		return a.load(ctx, *loadFlag)
	case *stateFlag != "":
		pos, err = a.fromState(*stateFlag)
	case *fenFlag != "":
		pos, err = a.fromFEN(*fenFlag)
	default:
		return a.fromSetup(ctx)
	}
	if err != nil {
		return nil, err
	}

	if *saveFlag {
		if err := a.save(ctx, pos); err != nil {
			return nil, err
		}
	}
	return pos, nil
}

func (a *app) fromState(state string) (*position, error) {
	if err := notation.ValidateState(state); err != nil {
		return nil, err
	}
	return &position{
		source: "state",
		state:  state,
		toMove: a.overrideColour(chess.White),
	}, nil
}

func (a *app) fromFEN(fen string) (*position, error) {
	board, toMove, err := notation.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &position{
		source: "fen",
		state:  notation.EncodeState(board),
		toMove: a.overrideColour(toMove),
	}, nil
}

// fromSetup runs the host setup path: a game reads the placement from config.
func (a *app) fromSetup(ctx context.Context) (*position, error) {
	opts := append(game.FromConfig(a.cfg), game.WithLogger(a.logger))
	if *saveFlag {
		st, err := a.openStore(ctx)
		if err != nil {
			return nil, err
		}
		opts = append(opts, game.WithStore(st))
	}

	g := game.New(opts...)
	if err := g.SetUpBoard(); err != nil {
		return nil, err
	}
	pos := &position{
		source: "placement " + a.cfg.Setup.Placement,
		state:  g.StateString(),
		toMove: g.ActiveColour(),
	}

	if *saveFlag {
		snap, err := g.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		pos.gameID = snap.GameID
	}
	return pos, nil
}

func (a *app) load(ctx context.Context, id string) (*position, error) {
	st, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := st.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &position{
		source: "snapshot",
		state:  snap.State,
		toMove: snap.ToMove,
		gameID: snap.GameID,
	}, nil
}

func (a *app) save(ctx context.Context, pos *position) error {
	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	snap := &store.Snapshot{
		GameID: uuid.NewString(),
		State:  pos.state,
		ToMove: pos.toMove,
	}
	if err := st.Save(ctx, snap); err != nil {
		return err
	}
	pos.gameID = snap.GameID
	return nil
}

// report generates moves for pos and answers the -from/-to query.
func (a *app) report(pos *position, index int) *output.Report {
	r := &output.Report{
		Index:  index,
		Source: pos.source,
		GameID: pos.gameID,
		State:  pos.state,
		ToMove: pos.toMove,
	}
	moves, err := a.gen.Generate(pos.state, pos.toMove)
	if err != nil {
		r.Err = err
		return r
	}
	r.Moves = moves
	return r
}

// check answers whether the piece on from may move to to. The piece's own
// colour selects the move list; an empty source is never legal.
func (a *app) check(state, from, to string) (*output.LegalityCheck, error) {
	src, ok := chess.ParseSquare(from)
	if !ok {
		return nil, fmt.Errorf("invalid -from square %q", from)
	}
	dst, ok := chess.ParseSquare(to)
	if !ok {
		return nil, fmt.Errorf("invalid -to square %q", to)
	}
	c := &output.LegalityCheck{From: src, To: dst}
	piece, ok := notation.PieceAt(state, src)
	if !ok {
		return c, nil
	}
	legal, err := a.filter.IsLegalState(state, piece.Colour, src, dst)
	if err != nil {
		return nil, err
	}
	c.Legal = legal
	return c, nil
}

// single resolves the position named by the flags and reports it.
func (a *app) single(ctx context.Context) (*output.Report, error) {
	pos, err := a.resolve(ctx)
	if err != nil {
		return nil, err
	}
	r := a.report(pos, 0)
	if *fromFlag != "" || *toFlag != "" {
		c, err := a.check(pos.state, *fromFlag, *toFlag)
		if err != nil {
			return nil, err
		}
		r.Check = c
	}
	return r, nil
}
