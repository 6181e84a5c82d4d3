package game

import "github.com/hailam/chesscore/internal/board"

// Status is the state of a game after the last move.
type Status uint8

const (
	InProgress Status = iota
	Checkmate
	Stalemate
	DrawByRepetition
	DrawByFiftyMove
	DrawByInsufficientMaterial
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByRepetition:
		return "draw_by_repetition"
	case DrawByFiftyMove:
		return "draw_by_fifty_move"
	case DrawByInsufficientMaterial:
		return "draw_by_insufficient_material"
	}
	return "unknown"
}

// IsTerminal reports whether no further moves may be played.
func (s Status) IsTerminal() bool {
	return s != InProgress
}

// IsDraw reports whether the status ends the game without a winner.
func (s Status) IsDraw() bool {
	return s.IsTerminal() && s != Checkmate
}

// Outcome is the result of a finished game.
type Outcome uint8

const (
	NoOutcome Outcome = iota
	WhiteWin
	BlackWin
	StalemateDraw
	InsufficientMaterial
	ThreefoldRepetition
	FiftyMoveRule
)

func (o Outcome) String() string {
	switch o {
	case WhiteWin:
		return "white_win"
	case BlackWin:
		return "black_win"
	case StalemateDraw:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient_material"
	case ThreefoldRepetition:
		return "threefold_repetition"
	case FiftyMoveRule:
		return "fifty_move_rule"
	}
	return "none"
}

// Winner returns the winning side, or NoColor for draws and unfinished games.
func (o Outcome) Winner() board.Color {
	switch o {
	case WhiteWin:
		return board.White
	case BlackWin:
		return board.Black
	}
	return board.NoColor
}

// IsDraw reports whether the game ended without a winner.
func (o Outcome) IsDraw() bool {
	return o != NoOutcome && o != WhiteWin && o != BlackWin
}

// Score is the result from White's side: 1 for a white win, -1 for a black
// win, 0 otherwise.
func (o Outcome) Score() float32 {
	switch o {
	case WhiteWin:
		return 1
	case BlackWin:
		return -1
	}
	return 0
}

// ScoreFor is Score seen from perspective.
func (o Outcome) ScoreFor(perspective board.Color) float32 {
	if perspective == board.Black {
		return -o.Score()
	}
	return o.Score()
}

// outcomeOf maps a status to its outcome; toMove is the side to move in the
// final position, which is the side that got mated.
func outcomeOf(s Status, toMove board.Color) Outcome {
	switch s {
	case Checkmate:
		if toMove == board.White {
			return BlackWin
		}
		return WhiteWin
	case Stalemate:
		return StalemateDraw
	case DrawByRepetition:
		return ThreefoldRepetition
	case DrawByFiftyMove:
		return FiftyMoveRule
	case DrawByInsufficientMaterial:
		return InsufficientMaterial
	}
	return NoOutcome
}
