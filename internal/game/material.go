package game

import "github.com/hailam/chesscore/internal/board"

// MaterialRules selects which material balances count as a dead draw.
type MaterialRules uint8

const (
	// KingVsKing: bare kings.
	KingVsKing MaterialRules = 1 << iota
	// KingMinorVsKing: one side has a single knight or bishop, the other nothing.
	KingMinorVsKing
	// SameColoredBishops: only bishops besides the kings, all on one square colour.
	SameColoredBishops

	NoMaterialRules      MaterialRules = 0
	DefaultMaterialRules               = KingVsKing | KingMinorVsKing | SameColoredBishops
)

// IsInsufficientMaterial reports whether, under rules, neither side can
// possibly deliver mate in pos.
func IsInsufficientMaterial(pos *board.Position, rules MaterialRules) bool {
	if rules == NoMaterialRules {
		return false
	}
	heavy := pos.PiecesOfType(board.Pawn) | pos.PiecesOfType(board.Rook) | pos.PiecesOfType(board.Queen)
	if heavy != 0 {
		return false
	}

	knights := pos.PiecesOfType(board.Knight)
	bishops := pos.PiecesOfType(board.Bishop)
	minors := knights | bishops
	whiteMinors := (minors & pos.Occupancy(board.White)).PopCount()
	blackMinors := (minors & pos.Occupancy(board.Black)).PopCount()

	switch {
	case whiteMinors == 0 && blackMinors == 0:
		return rules&KingVsKing != 0
	case whiteMinors+blackMinors == 1 && rules&KingMinorVsKing != 0:
		return true
	}

	if rules&SameColoredBishops != 0 && knights == 0 {
		return bishops&board.LightSquares == 0 || bishops&board.DarkSquares == 0
	}
	return false
}
