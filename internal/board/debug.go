package board

import "log"

// DebugMoveValidation turns on consistency checks in Apply, Unapply and the
// move generator. Apply and Unapply log a violation and then panic; the
// generator's king bookkeeping check only logs. Off by default.
var DebugMoveValidation = false

// checkApply panics with a *MoveError if m is not legal in p.
func (p *Position) checkApply(m Move) {
	if p.IsLegal(m) {
		return
	}
	err := &MoveError{Move: m, Err: ErrIllegalMove}
	log.Printf("APPLY FATAL: %v (side=%v hash=%016x)%v", err, p.sideToMove, p.hash, p)
	panic(err)
}

// checkUnapply panics if u was not produced by applying m.
func (p *Position) checkUnapply(m Move, u Undo) {
	if u.move == m {
		return
	}
	err := &MoveError{Move: m, Err: ErrIllegalMove}
	log.Printf("UNAPPLY FATAL: undo record belongs to %v, not %v (hash=%016x)", u.move, m, p.hash)
	panic(err)
}

// checkKings logs a mismatch between cached king squares and the bitboards.
func (p *Position) checkKings() {
	for c := White; c <= Black; c++ {
		kingBB := p.pieces[c][King]
		if kingBB == 0 {
			log.Printf("MOVEGEN FATAL: %v king bitboard empty! kingSquare=%v hash=%016x",
				c, p.kingSquare[c], p.hash)
		} else if p.kingSquare[c] != kingBB.LSB() {
			log.Printf("MOVEGEN FATAL: %v kingSquare=%v but king bitboard says %v! hash=%016x",
				c, p.kingSquare[c], kingBB.LSB(), p.hash)
		}
	}
}
