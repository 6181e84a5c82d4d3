package board

// scratchBoard is the part of a Position needed to answer "is my king
// attacked after this move". It lives on the stack and carries no hash or
// counters, so playing a move on it is cheap.
type scratchBoard struct {
	pieces      [2][6]Bitboard
	occupied    [2]Bitboard
	allOccupied Bitboard
	kingSquare  [2]Square
}

func (p *Position) scratch() scratchBoard {
	return scratchBoard{
		pieces:      p.pieces,
		occupied:    p.occupied,
		allOccupied: p.allOccupied,
		kingSquare:  p.kingSquare,
	}
}

// play makes m for us without any validation.
func (s *scratchBoard) play(m Move, us Color) {
	them := us.Other()
	from, to := m.From(), m.To()
	fromBB, toBB := SquareBB(from), SquareBB(to)

	var pt PieceType
	for t := Pawn; t <= King; t++ {
		if s.pieces[us][t]&fromBB != 0 {
			pt = t
			break
		}
	}

	capBB := toBB
	if m.IsEnPassant() {
		capBB = SquareBB(epVictim(to, us))
	}
	if s.occupied[them]&capBB != 0 {
		for t := Pawn; t <= King; t++ {
			s.pieces[them][t] &^= capBB
		}
		s.occupied[them] &^= capBB
	}

	s.pieces[us][pt] ^= fromBB | toBB
	s.occupied[us] ^= fromBB | toBB
	if pt == King {
		s.kingSquare[us] = to
	}
	if promo := m.Promotion(); promo != NoPieceType {
		s.pieces[us][Pawn] &^= toBB
		s.pieces[us][promo] |= toBB
	}
	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(m)
		rookBB := SquareBB(rookFrom) | SquareBB(rookTo)
		s.pieces[us][Rook] ^= rookBB
		s.occupied[us] ^= rookBB
	}
	s.allOccupied = s.occupied[White] | s.occupied[Black]
}

// kingAttacked reports whether us's king is attacked on the scratch board.
func (s *scratchBoard) kingAttacked(us Color) bool {
	them := us.Other()
	return attackersOf(&s.pieces[them], s.kingSquare[us], them, s.allOccupied) != 0
}

// epVictim is the square of the pawn taken by an en-passant capture landing on to.
func epVictim(to Square, us Color) Square {
	if us == White {
		return to - 8
	}
	return to + 8
}

// castlingRookSquares returns the rook's origin and destination for a castling move.
func castlingRookSquares(m Move) (from, to Square) {
	king := m.From()
	if m.Flag() == KingCastle {
		return king + 3, king + 1
	}
	return king - 4, king - 1
}
