package board_test

import (
	"errors"
	"testing"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/testutil"
)

func TestApplyResultingState(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{
			name: "double push sets target",
			fen:  testutil.StartFEN,
			move: "e2e4",
			want: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name: "knight move bumps clock, black move bumps fullmove",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move: "g8f6",
			want: "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name: "en passant removes the passed pawn",
			fen:  "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			move: "e5f6",
			want: "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name: "king side castling moves the rook",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 10",
			move: "e1g1",
			want: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 4 10",
		},
		{
			name: "queen side castling moves the rook",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 10",
			move: "e8c8",
			want: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 4 11",
		},
		{
			name: "rook move drops one right",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "h1h5",
			want: "r3k2r/8/8/7R/8/8/8/R3K3 b Qkq - 1 1",
		},
		{
			name: "capturing a corner rook drops the victim's right",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "a1a8",
			want: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name: "capture promotion",
			fen:  "1n2k3/P7/8/8/8/8/8/4K3 w - - 5 40",
			move: "a7b8r",
			want: "1R2k3/8/8/8/8/8/8/4K3 b - - 0 40",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := testutil.MustFEN(t, tc.fen)
			before := pos.Clone()
			m := testutil.FindMove(t, pos, tc.move)

			undo := pos.Apply(m)
			if got := testutil.ToFEN(pos); got != tc.want {
				t.Errorf("after %s got %q, want %q", tc.move, got, tc.want)
			}
			if pos.Hash() != pos.ComputeHash() {
				t.Error("incremental hash diverged")
			}
			want := testutil.MustFEN(t, tc.want)
			if pos.Hash() != want.Hash() {
				t.Error("hash differs from the directly built position")
			}

			pos.Unapply(m, undo)
			testutil.AssertSamePositionf(t, pos, before, "unapply %s", tc.move)
		})
	}
}

func TestApplyCapturedPieceInUndo(t *testing.T) {
	pos := testutil.MustFEN(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	undo := pos.Apply(testutil.FindMove(t, pos, "e5f6"))
	if undo.Captured != board.BlackPawn {
		t.Errorf("captured = %v, want black pawn", undo.Captured)
	}
	if undo.EnPassant != board.F6 || undo.CastlingRights != board.AllCastling {
		t.Errorf("undo kept ep=%v rights=%v", undo.EnPassant, undo.CastlingRights)
	}
	if pos.PieceAt(board.F5) != board.NoPiece {
		t.Error("en-passant victim still on f5")
	}
}

func TestApplyUnapplySequence(t *testing.T) {
	pos := board.NewPosition()
	start := pos.Clone()
	line := []string{"e2e4", "d7d5", "e4d5", "g8f6", "f1b5", "c7c6", "d5c6", "d8d2", "b1d2", "b7c6"}

	type step struct {
		m    board.Move
		undo board.Undo
	}
	var stack []step
	for _, uci := range line {
		m := testutil.FindMove(t, pos, uci)
		stack = append(stack, step{m, pos.Apply(m)})
		if pos.Hash() != pos.ComputeHash() {
			t.Fatalf("hash diverged after %s", uci)
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		pos.Unapply(stack[i].m, stack[i].undo)
	}
	testutil.AssertSamePosition(t, pos, start)
}

// Positions reached by different paths hash alike, and the en-passant
// target only counts when it can be taken.
func TestHashTransposition(t *testing.T) {
	a := board.NewPosition()
	for _, uci := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		a.Apply(testutil.FindMove(t, a, uci))
	}
	if a.Hash() != board.NewPosition().Hash() {
		t.Error("knight shuffle should return to the start hash")
	}

	b := board.NewPosition()
	for _, uci := range []string{"e2e4", "e7e6", "e4e5", "d7d5"} {
		b.Apply(testutil.FindMove(t, b, uci))
	}
	withTarget := testutil.MustFEN(t, "rnbqkbnr/ppp2ppp/4p3/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if b.Hash() != withTarget.Hash() {
		t.Error("played and built positions should hash the same")
	}
	noTarget := testutil.MustFEN(t, "rnbqkbnr/ppp2ppp/4p3/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3")
	if b.Hash() == noTarget.Hash() {
		t.Error("capturable d6 target should change the hash")
	}
}

func TestDebugMoveValidation(t *testing.T) {
	board.DebugMoveValidation = true
	defer func() { board.DebugMoveValidation = false }()

	pos := board.NewPosition()
	illegal := board.NewMove(board.E2, board.E5, board.Quiet)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("Apply of an illegal move did not panic with an error: %v", r)
		}
		if !errors.Is(err, board.ErrIllegalMove) {
			t.Errorf("panic %v does not wrap ErrIllegalMove", err)
		}
		var me *board.MoveError
		if !errors.As(err, &me) || me.Move != illegal {
			t.Errorf("panic %v does not carry the move", err)
		}
	}()
	pos.Apply(illegal)
}
