package board

// AttackTables holds every precomputed attack pattern. It is built once when
// the package initialises and only read afterwards, so a single instance is
// shared by all goroutines.
type AttackTables struct {
	knight [64]Bitboard
	king   [64]Bitboard
	pawn   [2][64]Bitboard // [Color][Square]

	between [64][64]Bitboard // squares strictly between two aligned squares
	line    [64][64]Bitboard // full line through two aligned squares

	bishopMagics [64]Magic
	rookMagics   [64]Magic
	bishopTable  []Bitboard
	rookTable    []Bitboard
}

var attacks = newAttackTables()

func newAttackTables() *AttackTables {
	t := &AttackTables{}
	t.initLeapers()
	t.initLines()
	t.initMagics()
	return t
}

func (t *AttackTables) initLeapers() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		t.knight[sq] = (bb<<17)&NotFileA | (bb<<15)&NotFileH |
			(bb>>17)&NotFileH | (bb>>15)&NotFileA |
			(bb<<10)&NotFileAB | (bb<<6)&NotFileGH |
			(bb>>10)&NotFileGH | (bb>>6)&NotFileAB

		t.king[sq] = bb.North() | bb.South() | bb.East() | bb.West() |
			bb.NorthEast() | bb.NorthWest() | bb.SouthEast() | bb.SouthWest()

		t.pawn[White][sq] = bb.NorthEast() | bb.NorthWest()
		t.pawn[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
}

func (t *AttackTables) initLines() {
	for a := A1; a <= H8; a++ {
		for b := A1; b <= H8; b++ {
			if a == b {
				continue
			}
			df, dr := b.File()-a.File(), b.Rank()-a.Rank()
			if df != 0 && dr != 0 && abs(df) != abs(dr) {
				continue
			}
			df, dr = sign(df), sign(dr)

			f, r := a.File()+df, a.Rank()+dr
			for NewSquare(f, r) != b {
				t.between[a][b] |= SquareBB(NewSquare(f, r))
				f, r = f+df, r+dr
			}

			line := SquareBB(a)
			for f, r := a.File()+df, a.Rank()+dr; onBoard(f, r); f, r = f+df, r+dr {
				line |= SquareBB(NewSquare(f, r))
			}
			for f, r := a.File()-df, a.Rank()-dr; onBoard(f, r); f, r = f-df, r-dr {
				line |= SquareBB(NewSquare(f, r))
			}
			t.line[a][b] = line
		}
	}
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard {
	return attacks.knight[sq]
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq Square) Bitboard {
	return attacks.king[sq]
}

// PawnAttacks returns the diagonal capture squares of a c pawn on sq.
func PawnAttacks(sq Square, c Color) Bitboard {
	return attacks.pawn[c][sq]
}

// BishopAttacks returns diagonal rays from sq, each stopping at and including
// the first occupied square.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &attacks.bishopMagics[sq]
	return attacks.bishopTable[m.index(occupied)]
}

// RookAttacks returns orthogonal rays from sq, each stopping at and including
// the first occupied square.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &attacks.rookMagics[sq]
	return attacks.rookTable[m.index(occupied)]
}

// QueenAttacks is the union of bishop and rook attacks.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// AttacksFor returns the attack set of a c piece of type pt on sq.
func AttacksFor(pt PieceType, c Color, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return PawnAttacks(sq, c)
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	case King:
		return KingAttacks(sq)
	}
	return Empty
}

// Between returns the squares strictly between a and b, or Empty when they
// do not share a rank, file or diagonal.
func Between(a, b Square) Bitboard {
	return attacks.between[a][b]
}

// Line returns the whole line through a and b, or Empty when not aligned.
func Line(a, b Square) Bitboard {
	return attacks.line[a][b]
}

// Aligned reports whether c lies on the line through a and b.
func Aligned(a, b, c Square) bool {
	return attacks.line[a][b]&SquareBB(c) != 0
}

// AttackersTo returns pieces of both colours attacking sq given occupancy.
func (p *Position) AttackersTo(sq Square, occupied Bitboard) Bitboard {
	return p.AttackersByColor(sq, White, occupied) | p.AttackersByColor(sq, Black, occupied)
}

// AttackersByColor returns c's pieces attacking sq given occupancy.
func (p *Position) AttackersByColor(sq Square, c Color, occupied Bitboard) Bitboard {
	return attackersOf(&p.pieces[c], sq, c, occupied)
}

func attackersOf(pieces *[6]Bitboard, sq Square, c Color, occupied Bitboard) Bitboard {
	return (attacks.pawn[c.Other()][sq] & pieces[Pawn]) |
		(attacks.knight[sq] & pieces[Knight]) |
		(attacks.king[sq] & pieces[King]) |
		(BishopAttacks(sq, occupied) & (pieces[Bishop] | pieces[Queen])) |
		(RookAttacks(sq, occupied) & (pieces[Rook] | pieces[Queen]))
}

// IsSquareAttacked reports whether byColor attacks sq in the current position.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	return p.AttackersByColor(sq, byColor, p.allOccupied) != 0
}

// AttackedBy returns every square byColor attacks.
func (p *Position) AttackedBy(byColor Color) Bitboard {
	var all Bitboard
	for pt := Pawn; pt <= King; pt++ {
		bb := p.pieces[byColor][pt]
		for bb != 0 {
			all |= AttacksFor(pt, byColor, bb.PopLSB(), p.allOccupied)
		}
	}
	return all
}

func (p *Position) updateCheckers() {
	us := p.sideToMove
	if p.pieces[us][King] == 0 {
		p.checkers = 0
		return
	}
	p.checkers = p.AttackersByColor(p.kingSquare[us], us.Other(), p.allOccupied)
}
