// Package game tracks a chess game: move history, repetition counts and
// the terminal status after every move.
package game

import "github.com/hailam/chesscore/internal/board"

type historyEntry struct {
	move board.Move
	undo board.Undo
}

// Tracker owns a position and the moves played on it. It is not safe for
// concurrent use.
type Tracker struct {
	pos     *board.Position
	history []historyEntry
	seen    map[uint64]int // hash -> occurrences, current position included
	status  Status
	cfg     config
}

// NewTracker starts tracking a copy of pos; nil means the standard start.
func NewTracker(pos *board.Position, opts ...Option) *Tracker {
	if pos == nil {
		pos = board.NewPosition()
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &Tracker{
		pos:  pos.Clone(),
		seen: make(map[uint64]int),
		cfg:  cfg,
	}
	t.seen[t.pos.Hash()] = 1
	t.status = t.evaluate()
	return t
}

// NewStandard tracks a game from the standard starting position.
func NewStandard(opts ...Option) *Tracker {
	return NewTracker(nil, opts...)
}

// Status returns the status of the current position.
func (t *Tracker) Status() Status {
	return t.status
}

// Outcome returns the result, NoOutcome while the game is in progress.
func (t *Tracker) Outcome() Outcome {
	return outcomeOf(t.status, t.pos.SideToMove())
}

// Position returns a copy of the current position.
func (t *Tracker) Position() *board.Position {
	return t.pos.Clone()
}

// LegalMoves lists the moves available, none once the game is over.
func (t *Tracker) LegalMoves() []board.Move {
	if t.status.IsTerminal() {
		return nil
	}
	return t.pos.GenerateLegalMoves().Slice()
}

// Play validates and plays m. It fails with ErrGameOver after the game has
// ended and with board.ErrIllegalMove when m is not legal here.
func (t *Tracker) Play(m board.Move) error {
	if t.status.IsTerminal() {
		return &board.MoveError{Move: m, Err: ErrGameOver}
	}
	if !t.pos.IsLegal(m) {
		return &board.MoveError{Move: m, Err: board.ErrIllegalMove}
	}

	undo := t.pos.Apply(m)
	t.history = append(t.history, historyEntry{move: m, undo: undo})
	t.seen[t.pos.Hash()]++
	t.status = t.evaluate()

	if t.status.IsTerminal() && t.cfg.logger != nil {
		t.cfg.logger.Printf("game over after %d plies: %s (%s)", len(t.history), t.status, t.Outcome())
	}
	return nil
}

// Undo takes back the last move.
func (t *Tracker) Undo() error {
	if len(t.history) == 0 {
		return ErrNoHistory
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]

	hash := t.pos.Hash()
	if t.seen[hash]--; t.seen[hash] <= 0 {
		delete(t.seen, hash)
	}
	t.pos.Unapply(last.move, last.undo)
	t.status = t.evaluate()
	return nil
}

// Moves returns the moves played so far, oldest first.
func (t *Tracker) Moves() []board.Move {
	moves := make([]board.Move, len(t.history))
	for i, h := range t.history {
		moves[i] = h.move
	}
	return moves
}

// Ply returns the number of moves played.
func (t *Tracker) Ply() int {
	return len(t.history)
}

// RepetitionCount returns how often the current position has occurred.
func (t *Tracker) RepetitionCount() int {
	return t.seen[t.pos.Hash()]
}

// Clone returns an independent tracker at the same point of the game.
func (t *Tracker) Clone() *Tracker {
	c := &Tracker{
		pos:     t.pos.Clone(),
		history: make([]historyEntry, len(t.history)),
		seen:    make(map[uint64]int, len(t.seen)),
		status:  t.status,
		cfg:     t.cfg,
	}
	copy(c.history, t.history)
	for h, n := range t.seen {
		c.seen[h] = n
	}
	return c
}

// evaluate computes the status of the current position. Rules are checked
// in a fixed order: no legal moves, repetition, fifty-move rule, material.
func (t *Tracker) evaluate() Status {
	switch {
	case !t.pos.HasLegalMoves():
		if t.pos.InCheck() {
			return Checkmate
		}
		return Stalemate
	case t.seen[t.pos.Hash()] >= t.cfg.repetitionLimit:
		return DrawByRepetition
	case t.pos.HalfMoveClock() >= 100:
		return DrawByFiftyMove
	case IsInsufficientMaterial(t.pos, t.cfg.materialRules):
		return DrawByInsufficientMaterial
	}
	return InProgress
}
