package rules

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	cerrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/movegen"
	"github.com/lgbarn/chesscore-go/internal/notation"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func startBoard(t *testing.T) *chess.Board {
	t.Helper()
	board, _ := notation.ParsePlacement(notation.StartPlacement)
	return board
}

func sq(t *testing.T, name string) chess.Square {
	t.Helper()
	return testutil.MustSquare(t, name)
}

func TestIsLegal(t *testing.T) {
	f := NewFilter(nil, nil)
	board := startBoard(t)

	tests := []struct {
		name     string
		piece    chess.ColouredPiece
		from, to string
		want     bool
	}{
		{"pawn single push", chess.W(chess.Pawn), "e2", "e3", true},
		{"pawn double push", chess.W(chess.Pawn), "e2", "e4", true},
		{"pawn triple push", chess.W(chess.Pawn), "e2", "e5", false},
		{"knight jump", chess.W(chess.Knight), "g1", "f3", true},
		{"knight onto own pawn", chess.W(chess.Knight), "g1", "e2", false},
		{"black knight", chess.B(chess.Knight), "b8", "c6", true},
		{"black pawn", chess.B(chess.Pawn), "d7", "d5", true},
		{"bishop without sliders", chess.W(chess.Bishop), "c1", "d2", false},
		{"empty source", chess.W(chess.Pawn), "e4", "e5", false},
		// Only the colour of the piece is used to pick the move list.
		{"wrong kind same colour", chess.W(chess.Queen), "e2", "e4", true},
		{"wrong colour", chess.B(chess.Pawn), "e2", "e4", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.IsLegal(board, tt.piece, sq(t, tt.from), sq(t, tt.to))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestIsLegal_DoesNotModifyBoard(t *testing.T) {
	f := NewFilter(nil, nil)
	board := startBoard(t)
	before := board.Copy()

	for _, to := range []string{"e3", "e4", "e5", "d3"} {
		f.IsLegal(board, chess.W(chess.Pawn), sq(t, "e2"), sq(t, to))
	}
	if !board.Equal(before) {
		t.Error("IsLegal() modified the board")
	}
}

func TestIsLegal_InvalidSquare(t *testing.T) {
	f := NewFilter(nil, nil)
	board := startBoard(t)
	testutil.AssertEqual(t, f.IsLegal(board, chess.W(chess.Pawn), chess.NoSquare, sq(t, "e4")), false)
	testutil.AssertEqual(t, f.IsLegal(board, chess.W(chess.Pawn), sq(t, "e2"), chess.Square(64)), false)
}

func TestIsLegal_WithSlidingPieces(t *testing.T) {
	f := NewFilter(movegen.New(movegen.WithSlidingPieces(true)), nil)
	board := testutil.Board(map[string]chess.ColouredPiece{
		"a1": chess.W(chess.Rook),
		"a5": chess.B(chess.Pawn),
	})

	tests := []struct {
		to   string
		want bool
	}{
		{"a4", true},
		{"a5", true},
		{"a6", false},
		{"h1", true},
		{"b2", false},
	}
	for _, tt := range tests {
		t.Run(tt.to, func(t *testing.T) {
			got := f.IsLegal(board, chess.W(chess.Rook), sq(t, "a1"), sq(t, tt.to))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestIsLegalState_MalformedState(t *testing.T) {
	f := NewFilter(nil, nil)
	_, err := f.IsLegalState("short", chess.White, 0, 8)
	if !errors.Is(err, cerrors.ErrMalformedState) {
		t.Errorf("IsLegalState() error = %v, want ErrMalformedState", err)
	}
}

func TestIsLegalTag(t *testing.T) {
	f := NewFilter(nil, nil)
	board := startBoard(t)

	testutil.AssertEqual(t, f.IsLegalTag(board, notation.Tag(2), sq(t, "b1"), sq(t, "c3")), true)
	testutil.AssertEqual(t, f.IsLegalTag(board, notation.Tag(130), sq(t, "b8"), sq(t, "a6")), true)
	testutil.AssertEqual(t, f.IsLegalTag(board, notation.Tag(7), sq(t, "b1"), sq(t, "c3")), false)
	testutil.AssertEqual(t, f.IsLegalTag(board, notation.NoTag, sq(t, "b1"), sq(t, "c3")), false)
}

// IsLegal must agree with the generated move list for every square pair.
func TestIsLegal_IsMembership(t *testing.T) {
	f := NewFilter(nil, nil)
	board := testutil.Board(map[string]chess.ColouredPiece{
		"e1": chess.W(chess.King), "b1": chess.W(chess.Knight), "d2": chess.W(chess.Pawn),
		"c3": chess.B(chess.Pawn), "e2": chess.B(chess.Knight), "a2": chess.W(chess.Pawn),
	})
	moves, err := movegen.Generate(notation.EncodeState(board), chess.White)
	testutil.AssertNoError(t, err)

	generated := map[[2]chess.Square]bool{}
	for _, m := range moves {
		generated[[2]chess.Square{m.From, m.To}] = true
	}
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		for to := chess.Square(0); to < chess.NumSquares; to++ {
			want := generated[[2]chess.Square{from, to}]
			if got := f.IsLegal(board, chess.W(chess.Pawn), from, to); got != want {
				t.Errorf("IsLegal(%v, %v) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestMayPickUp(t *testing.T) {
	for _, kind := range chess.Kinds {
		testutil.AssertEqual(t, MayPickUp(chess.W(kind), chess.White), true, kind.String())
		testutil.AssertEqual(t, MayPickUp(chess.W(kind), chess.Black), false, kind.String())
		testutil.AssertEqual(t, MayPickUp(chess.B(kind), chess.Black), true, kind.String())
		testutil.AssertEqual(t, MayPickUp(chess.B(kind), chess.White), false, kind.String())
	}
}

func TestMayPickUpTag_AllTags(t *testing.T) {
	for tag := 0; tag < 256; tag++ {
		wantWhite := tag >= 1 && tag <= 6
		wantBlack := tag >= 129 && tag <= 134

		if got := MayPickUpTag(notation.Tag(tag), chess.White); got != wantWhite {
			t.Errorf("MayPickUpTag(%d, White) = %v, want %v", tag, got, wantWhite)
		}
		if got := MayPickUpTag(notation.Tag(tag), chess.Black); got != wantBlack {
			t.Errorf("MayPickUpTag(%d, Black) = %v, want %v", tag, got, wantBlack)
		}
	}
}
