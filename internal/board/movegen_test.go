package board_test

import (
	"testing"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/testutil"
)

func TestGenerateLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "promotion push and capture",
			fen:  "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			want: []string{
				"a7a8q", "a7a8r", "a7a8b", "a7a8n", "a7b8q", "a7b8r", "a7b8b", "a7b8n",
				"e1d1", "e1f1", "e1d2", "e1e2", "e1f2",
			},
		},
		{
			name: "castling blocked by attacked transit square",
			fen:  "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1",
			want: []string{
				"a1b1", "a1c1", "a1d1", "a1a2", "a1a3", "a1a4", "a1a5", "a1a6", "a1a7", "a1a8",
				"h1f1", "h1g1", "h1h2", "h1h3", "h1h4", "h1h5", "h1h6", "h1h7", "h1h8",
				"e1d1", "e1f2",
				"e1c1",
			},
		},
		{
			name: "no castling out of check",
			fen:  "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1",
			want: []string{"e1d1", "e1f1", "e1e2"},
		},
		{
			name: "double check leaves only king moves",
			fen:  "k3r3/8/8/8/8/3n3Q/8/4K3 w - - 0 1",
			want: []string{"e1d1", "e1d2", "e1f1"},
		},
		{
			name: "pinned knight cannot move",
			fen:  "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
			want: []string{"e1d1", "e1f1", "e1d2", "e1f2"},
		},
		{
			name: "stalemate",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			want: []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := testutil.MustFEN(t, tc.fen)
			got := testutil.MoveStrings(pos.GenerateLegalMoves())
			testutil.AssertEqual(t, got, tc.want, testutil.SortedStrings)
			if pos.HasLegalMoves() != (len(tc.want) > 0) {
				t.Errorf("HasLegalMoves() = %v with %d moves", pos.HasLegalMoves(), len(tc.want))
			}
		})
	}
}

func TestGenerateLegalMovesOrder(t *testing.T) {
	pos := board.NewPosition()
	got := testutil.MoveStrings(pos.GenerateLegalMoves())
	want := []string{
		"a2a3", "a2a4", "b2b3", "b2b4", "c2c3", "c2c4", "d2d3", "d2d4",
		"e2e3", "e2e4", "f2f3", "f2f4", "g2g3", "g2g4", "h2h3", "h2h4",
		"b1a3", "b1c3", "g1f3", "g1h3",
	}
	testutil.AssertEqual(t, got, want)
	again := testutil.MoveStrings(pos.GenerateLegalMoves())
	testutil.AssertEqual(t, again, got)
}

func TestMoveFlags(t *testing.T) {
	pos := testutil.MustFEN(t, "r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq d6 0 1")
	want := map[string]board.MoveFlag{
		"e5d6": board.EnPassant,
		"e5e6": board.Quiet,
		"e1g1": board.KingCastle,
		"e1c1": board.QueenCastle,
		"a1a8": board.Capture,
		"h1h8": board.Capture,
		"a1a2": board.Quiet,
	}
	for uci, flag := range want {
		m := testutil.FindMove(t, pos, uci)
		if m.Flag() != flag {
			t.Errorf("%s flag = %v, want %v", uci, m.Flag(), flag)
		}
	}
	if m := testutil.FindMove(t, board.NewPosition(), "e2e4"); !m.IsDoublePush() {
		t.Errorf("e2e4 flag = %v, want double push", m.Flag())
	}
}

func TestPseudoLegalIncludesSelfCheck(t *testing.T) {
	pos := testutil.MustFEN(t, "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	pseudo := pos.GeneratePseudoLegalMoves()
	legal := pos.GenerateLegalMoves()
	if pseudo.Len() <= legal.Len() {
		t.Fatalf("pseudo-legal %d moves, legal %d", pseudo.Len(), legal.Len())
	}
	knightMove := testutil.FindMove(t, testutil.MustFEN(t, "4k3/8/8/8/8/8/4N3/4K3 w - - 0 1"), "e2c3")
	if !pseudo.Contains(knightMove) || legal.Contains(knightMove) || pos.IsLegal(knightMove) {
		t.Error("pinned knight move should be pseudo-legal only")
	}
}

func TestLegalMovesFromAndCaptures(t *testing.T) {
	pos := testutil.MustFEN(t, testutil.KiwipeteFEN)

	from := testutil.MoveStrings(pos.LegalMovesFrom(board.E5))
	testutil.AssertEqual(t, from, []string{"e5d3", "e5c4", "e5g4", "e5c6", "e5g6", "e5d7", "e5f7"}, testutil.SortedStrings)

	if empty := pos.LegalMovesFrom(board.E4); empty.Len() != 0 {
		t.Errorf("blocked pawn on e4 has %d moves", empty.Len())
	}

	captures := pos.GenerateCaptures()
	if captures.Len() != 8 {
		t.Errorf("Kiwipete has %d captures, want 8: %v", captures.Len(), testutil.MoveStrings(captures))
	}
	for i := 0; i < captures.Len(); i++ {
		if !captures.Get(i).IsCapture() {
			t.Errorf("%v is not a capture", captures.Get(i))
		}
	}
}

func TestAttackQueries(t *testing.T) {
	pos := testutil.MustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !pos.InCheck() {
		t.Fatal("fool's mate position should be check")
	}
	if pos.Checkers() != board.SquareBB(board.H4) {
		t.Errorf("checkers = %v", pos.Checkers().Squares())
	}
	if !pos.IsSquareAttacked(board.F2, board.Black) || pos.IsSquareAttacked(board.E3, board.Black) {
		t.Error("IsSquareAttacked wrong for the queen's diagonal")
	}
	attackers := pos.AttackersTo(board.F3, pos.AllOccupied())
	want := board.SquareBB(board.G1) | board.SquareBB(board.E2)
	if attackers != want {
		t.Errorf("AttackersTo(f3) = %v, want %v", attackers.Squares(), want.Squares())
	}
	if pos.HasLegalMoves() {
		t.Error("fool's mate should have no legal moves")
	}
}
