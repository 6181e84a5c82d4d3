package game

import "errors"

var (
	// ErrGameOver is returned by Play once the game has reached a terminal status.
	ErrGameOver = errors.New("game is over")
	// ErrNoHistory is returned by Undo when no move has been played.
	ErrNoHistory = errors.New("no move to undo")
)
