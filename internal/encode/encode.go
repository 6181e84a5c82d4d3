// Package encode maps moves to the fixed action planes a policy network
// uses: for each origin square, 56 sliding planes (8 directions, distance
// 1-7), 8 knight planes and 18 underpromotion planes. Queen promotions share
// the sliding planes with ordinary moves.
package encode

import "github.com/hailam/chesscore/internal/board"

const (
	numDirections    = 8
	maxDistance      = 7
	numKnightMoves   = 8
	numUnderPromoDir = 3 // left diagonal, straight, right diagonal
	numUnderPromo    = 3 // knight, bishop, rook

	knightPlanes     = numDirections * maxDistance
	underPromoPlanes = knightPlanes + numKnightMoves
	underPromoPerDy  = numUnderPromoDir * numUnderPromo
)

// NumMovePlanes is the number of planes per origin square.
const NumMovePlanes = underPromoPlanes + 2*underPromoPerDy

// Direction order N, NE, E, SE, S, SW, W, NW.
var directions = [numDirections][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

var knightDeltas = [numKnightMoves][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var underPromoTypes = [numUnderPromo]board.PieceType{board.Knight, board.Bishop, board.Rook}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// MovePlane returns the plane of m relative to its origin square. ok is
// false for NoMove or a displacement no piece can make.
func MovePlane(m board.Move) (plane int, ok bool) {
	from, to := m.From(), m.To()
	dx := to.File() - from.File()
	dy := to.Rank() - from.Rank()

	for i, d := range knightDeltas {
		if dx == d[0] && dy == d[1] {
			return knightPlanes + i, true
		}
	}

	if promo := m.Promotion(); promo != board.NoPieceType && promo != board.Queen {
		if abs(dy) != 1 || abs(dx) > 1 {
			return 0, false
		}
		plane := underPromoPlanes + (dx+1)*numUnderPromo
		if dy < 0 {
			plane += underPromoPerDy
		}
		for i, pt := range underPromoTypes {
			if pt == promo {
				return plane + i, true
			}
		}
		return 0, false
	}

	dist := max(abs(dx), abs(dy))
	if dist == 0 || (dx != 0 && dy != 0 && abs(dx) != abs(dy)) {
		return 0, false
	}
	step := [2]int{sign(dx), sign(dy)}
	for i, d := range directions {
		if d == step {
			return i*maxDistance + dist - 1, true
		}
	}
	return 0, false
}

// DecodePlane returns the displacement and underpromotion piece of plane.
// promo is NoPieceType except on the underpromotion planes.
func DecodePlane(plane int) (dx, dy int, promo board.PieceType, ok bool) {
	switch {
	case plane < 0 || plane >= NumMovePlanes:
		return 0, 0, board.NoPieceType, false
	case plane < knightPlanes:
		d := directions[plane/maxDistance]
		dist := plane%maxDistance + 1
		return d[0] * dist, d[1] * dist, board.NoPieceType, true
	case plane < underPromoPlanes:
		d := knightDeltas[plane-knightPlanes]
		return d[0], d[1], board.NoPieceType, true
	}
	idx := plane - underPromoPlanes
	dy = 1
	if idx >= underPromoPerDy {
		dy = -1
		idx -= underPromoPerDy
	}
	return idx/numUnderPromo - 1, dy, underPromoTypes[idx%numUnderPromo], true
}

// MoveFromPlane finds the legal move in pos leaving from along plane. A
// pawn reaching the last rank on a sliding plane is the queen promotion.
func MoveFromPlane(pos *board.Position, from board.Square, plane int) (board.Move, bool) {
	dx, dy, promo, ok := DecodePlane(plane)
	if !ok {
		return board.NoMove, false
	}
	file, rank := from.File()+dx, from.Rank()+dy
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return board.NoMove, false
	}
	to := board.NewSquare(file, rank)
	if promo == board.NoPieceType && pos.PieceAt(from).Type() == board.Pawn && (rank == 0 || rank == 7) {
		promo = board.Queen
	}

	moves := pos.LegalMovesFrom(from)
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.To() == to && m.Promotion() == promo {
			return m, true
		}
	}
	return board.NoMove, false
}
