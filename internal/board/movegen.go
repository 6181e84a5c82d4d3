package board

// GenerateLegalMoves returns every legal move. Pieces come in the order
// pawns, knights, bishops, rooks, queens, king, castling, each group by
// ascending origin square, so the output is deterministic.
func (p *Position) GenerateLegalMoves() *MoveList {
	ml := NewMoveList()
	p.generateAllMoves(ml)
	return p.filterLegalMoves(ml)
}

// GeneratePseudoLegalMoves returns moves that obey piece movement but may
// leave the own king attacked.
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := NewMoveList()
	p.generateAllMoves(ml)
	return ml
}

// GenerateCaptures returns the legal captures, en passant included.
func (p *Position) GenerateCaptures() *MoveList {
	all := p.GenerateLegalMoves()
	ml := NewMoveList()
	for i := 0; i < all.Len(); i++ {
		if m := all.Get(i); m.IsCapture() {
			ml.Add(m)
		}
	}
	return ml
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func (p *Position) LegalMovesFrom(sq Square) *MoveList {
	all := p.GenerateLegalMoves()
	ml := NewMoveList()
	for i := 0; i < all.Len(); i++ {
		if m := all.Get(i); m.From() == sq {
			ml.Add(m)
		}
	}
	return ml
}

// IsLegal reports whether m is one of the legal moves.
func (p *Position) IsLegal(m Move) bool {
	return p.GenerateLegalMoves().Contains(m)
}

// HasLegalMoves reports whether the side to move has any legal move. It
// stops at the first one found.
func (p *Position) HasLegalMoves() bool {
	ml := NewMoveList()
	p.generateAllMoves(ml)
	pinned := p.Pinned(p.sideToMove)
	for i := 0; i < ml.Len(); i++ {
		if p.legal(ml.Get(i), pinned) {
			return true
		}
	}
	return false
}

func (p *Position) generateAllMoves(ml *MoveList) {
	if DebugMoveValidation {
		p.checkKings()
	}
	us := p.sideToMove
	targets := ^p.occupied[us]

	p.generatePawnMoves(ml, us)
	for pt := Knight; pt <= King; pt++ {
		pieces := p.pieces[us][pt]
		for pieces != 0 {
			from := pieces.PopLSB()
			p.addTargets(ml, from, AttacksFor(pt, us, from, p.allOccupied)&targets)
		}
	}
	p.generateCastlingMoves(ml, us)
}

func (p *Position) addTargets(ml *MoveList, from Square, targets Bitboard) {
	enemies := p.occupied[p.sideToMove.Other()]
	for targets != 0 {
		to := targets.PopLSB()
		if enemies.IsSet(to) {
			ml.Add(NewMove(from, to, Capture))
		} else {
			ml.Add(NewMove(from, to, Quiet))
		}
	}
}

// generatePawnMoves emits, for each pawn in turn, pushes, captures and the
// en-passant capture.
func (p *Position) generatePawnMoves(ml *MoveList, us Color) {
	enemies := p.occupied[us.Other()]
	empty := ^p.allOccupied
	push, startRank, lastRank := 8, Rank2, Rank8
	if us == Black {
		push, startRank, lastRank = -8, Rank7, Rank1
	}

	pawns := p.pieces[us][Pawn]
	for pawns != 0 {
		from := pawns.PopLSB()
		one := Square(int(from) + push)
		if empty.IsSet(one) {
			if lastRank.IsSet(one) {
				addPromotions(ml, from, one, false)
			} else {
				ml.Add(NewMove(from, one, Quiet))
				two := Square(int(one) + push)
				if startRank.IsSet(from) && empty.IsSet(two) {
					ml.Add(NewMove(from, two, DoublePush))
				}
			}
		}

		captures := PawnAttacks(from, us) & enemies
		for captures != 0 {
			to := captures.PopLSB()
			if lastRank.IsSet(to) {
				addPromotions(ml, from, to, true)
			} else {
				ml.Add(NewMove(from, to, Capture))
			}
		}

		if p.enPassant != NoSquare && PawnAttacks(from, us).IsSet(p.enPassant) {
			ml.Add(NewMove(from, p.enPassant, EnPassant))
		}
	}
}

func addPromotions(ml *MoveList, from, to Square, capture bool) {
	for _, pt := range PromotionTypes {
		ml.Add(NewPromotion(from, to, pt, capture))
	}
}

// generateCastlingMoves adds castling when the right is held, the squares
// between king and rook are empty, and the king is not in check and does
// not cross or land on an attacked square.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	if p.checkers != 0 || !p.castling.CanCastle(us, true) && !p.castling.CanCastle(us, false) {
		return
	}
	them := us.Other()
	king := E1
	if us == Black {
		king = E8
	}

	if p.castling.CanCastle(us, true) &&
		Between(king, king+3)&p.allOccupied == 0 &&
		!p.IsSquareAttacked(king+1, them) && !p.IsSquareAttacked(king+2, them) {
		ml.Add(NewMove(king, king+2, KingCastle))
	}
	if p.castling.CanCastle(us, false) &&
		Between(king, king-4)&p.allOccupied == 0 &&
		!p.IsSquareAttacked(king-1, them) && !p.IsSquareAttacked(king-2, them) {
		ml.Add(NewMove(king, king-2, QueenCastle))
	}
}

// filterLegalMoves keeps the moves that do not leave the own king attacked.
func (p *Position) filterLegalMoves(ml *MoveList) *MoveList {
	result := NewMoveList()
	pinned := p.Pinned(p.sideToMove)
	for i := 0; i < ml.Len(); i++ {
		if m := ml.Get(i); p.legal(m, pinned) {
			result.Add(m)
		}
	}
	return result
}

// legal decides a pseudo-legal move. Out of check, a move by an unpinned
// piece other than the king cannot expose the king, except en passant which
// removes two pieces from a line. Everything else is played on a scratch
// board and the king's safety checked there.
func (p *Position) legal(m Move, pinned Bitboard) bool {
	us := p.sideToMove
	from := m.From()
	if p.checkers == 0 && from != p.kingSquare[us] && !m.IsEnPassant() && !pinned.IsSet(from) {
		return true
	}
	s := p.scratch()
	s.play(m, us)
	return !s.kingAttacked(us)
}

// isLegalByApply is the slow reference for legal: play the move for real
// and look at the king.
func (p *Position) isLegalByApply(m Move) bool {
	us := p.sideToMove
	undo := p.apply(m)
	ok := !p.IsSquareAttacked(p.kingSquare[us], us.Other())
	p.Unapply(m, undo)
	return ok
}
