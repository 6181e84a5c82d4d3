package board

// Apply plays m and returns the record Unapply needs to take it back. The
// move must be legal in p; it is only checked when DebugMoveValidation is
// set, in which case an illegal move panics with a *MoveError.
func (p *Position) Apply(m Move) Undo {
	if DebugMoveValidation {
		p.checkApply(m)
	}
	return p.apply(m)
}

func (p *Position) apply(m Move) Undo {
	undo := Undo{
		Captured:       NoPiece,
		CastlingRights: p.castling,
		EnPassant:      p.enPassant,
		HalfMoveClock:  p.halfMoveClock,
		Hash:           p.hash,
		Checkers:       p.checkers,
		move:           m,
	}

	us := p.sideToMove
	from, to := m.From(), m.To()
	moved := p.PieceAt(from)

	p.hash ^= p.epKey()
	p.clearEnPassant()

	switch {
	case m.IsEnPassant():
		undo.Captured = p.removePiece(epVictim(to, us))
	case !p.IsEmpty(to):
		undo.Captured = p.removePiece(to)
	}

	p.movePiece(from, to)
	if promo := m.Promotion(); promo != NoPieceType {
		p.putPiece(NewPiece(promo, us), to)
	}
	if m.IsCastling() {
		p.movePiece(castlingRookSquares(m))
	}

	if lost := castlingLoss[from] | castlingLoss[to]; p.castling&lost != 0 {
		p.clearCastling(lost)
	}
	if m.IsDoublePush() {
		p.setEnPassant(Square((int(from) + int(to)) / 2))
	}

	if moved.Type() == Pawn || undo.Captured != NoPiece {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if us == Black {
		p.fullMoveNumber++
	}

	p.toggleSide()
	p.hash ^= p.epKey()
	p.updateCheckers()
	return undo
}

// Unapply reverts m, which must be the most recently applied move, using the
// Undo that Apply returned for it.
func (p *Position) Unapply(m Move, u Undo) {
	if DebugMoveValidation {
		p.checkUnapply(m, u)
	}

	us := p.sideToMove.Other()
	p.sideToMove = us
	from, to := m.From(), m.To()

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(m)
		p.movePiece(rookTo, rookFrom)
	}
	if m.IsPromotion() {
		p.putPiece(NewPiece(Pawn, us), to)
	}
	p.movePiece(to, from)

	if u.Captured != NoPiece {
		capSq := to
		if m.IsEnPassant() {
			capSq = epVictim(to, us)
		}
		p.putPiece(u.Captured, capSq)
	}

	if us == Black {
		p.fullMoveNumber--
	}
	p.castling = u.CastlingRights
	p.enPassant = u.EnPassant
	p.halfMoveClock = u.HalfMoveClock
	p.hash = u.Hash
	p.checkers = u.Checkers
}
