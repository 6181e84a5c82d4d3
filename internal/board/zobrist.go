package board

// Zobrist keys for position identity. The hash covers piece placement, side
// to move, castling rights and the en-passant target. Move counters are
// never hashed, so a position reached by different paths hashes the same.
var (
	zobristPiece      [2][6][64]uint64
	zobristEnPassant  [8]uint64 // by file
	zobristCastling   [16]uint64
	zobristSideToMove uint64
)

func init() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for cr := range zobristCastling {
		zobristCastling[cr] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// prng is xorshift64*, seeded for reproducible keys.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// sparse returns a number with few bits set, a good magic candidate.
func (p *prng) sparse() uint64 {
	return p.next() & p.next() & p.next()
}

// epKey is the en-passant contribution to the hash. The target only counts
// when a pawn of the side to move stands beside the pawn that just advanced,
// so a double push nobody can capture leaves the hash as if no target were
// set. The result depends on placement, side to move and target alone.
func (p *Position) epKey() uint64 {
	if p.enPassant == NoSquare {
		return 0
	}
	if PawnAttacks(p.enPassant, p.sideToMove.Other())&p.pieces[p.sideToMove][Pawn] == 0 {
		return 0
	}
	return zobristEnPassant[p.enPassant.File()]
}

// ComputeHash recomputes the hash from scratch. Apply keeps Hash up to date
// incrementally; the two always agree.
func (p *Position) ComputeHash() uint64 {
	var hash uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.pieces[c][pt]
			for bb != 0 {
				hash ^= zobristPiece[c][pt][bb.PopLSB()]
			}
		}
	}
	if p.sideToMove == Black {
		hash ^= zobristSideToMove
	}
	hash ^= zobristCastling[p.castling]
	hash ^= p.epKey()
	return hash
}
