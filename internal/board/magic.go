package board

// Magic bitboards for sliding pieces. Every table entry is filled from the
// ray-scan reference below, so a lookup is bit-exact with ray scanning.

// Magic holds the lookup parameters of one square.
type Magic struct {
	Mask   Bitboard // relevant occupancy, board edges excluded
	Magic  uint64
	Shift  uint8
	Offset uint32
}

func (m *Magic) index(occupied Bitboard) uint32 {
	return m.Offset + uint32((uint64(occupied&m.Mask)*m.Magic)>>m.Shift)
}

const (
	bishopTableSize = 5248
	rookTableSize   = 102400
)

// Seed multipliers. A candidate that collides for some square is replaced by
// a searched one during init.
var bishopMagicNumbers = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

var rookMagicNumbers = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}

func (t *AttackTables) initMagics() {
	rng := newPRNG(0x6D61676963)
	t.bishopTable = make([]Bitboard, bishopTableSize)
	t.rookTable = make([]Bitboard, rookTableSize)
	fillMagics(&t.bishopMagics, t.bishopTable, &bishopMagicNumbers, bishopMask, bishopAttacksSlow, rng)
	fillMagics(&t.rookMagics, t.rookTable, &rookMagicNumbers, rookMask, rookAttacksSlow, rng)
}

func fillMagics(magics *[64]Magic, table []Bitboard, seeds *[64]uint64,
	maskOf func(Square) Bitboard, slow func(Square, Bitboard) Bitboard, rng *prng) {
	var offset uint32
	for sq := A1; sq <= H8; sq++ {
		mask := maskOf(sq)
		bits := mask.PopCount()
		n := 1 << bits

		occs := make([]Bitboard, n)
		refs := make([]Bitboard, n)
		for i := 0; i < n; i++ {
			occs[i] = indexToOccupancy(i, bits, mask)
			refs[i] = slow(sq, occs[i])
		}

		slot := table[offset : offset+uint32(n)]
		m := Magic{Mask: mask, Shift: uint8(64 - bits), Offset: offset}
		m.Magic = seeds[sq]
		for !tryMagic(&m, slot, occs, refs) {
			m.Magic = rng.sparse()
			for Bitboard((uint64(mask)*m.Magic)&0xFF00000000000000).PopCount() < 6 {
				m.Magic = rng.sparse()
			}
		}
		magics[sq] = m
		offset += uint32(n)
	}
}

// tryMagic fills slot using m and reports false on a destructive collision.
// Attack sets are never empty, so a zero entry means "unused".
func tryMagic(m *Magic, slot []Bitboard, occs, refs []Bitboard) bool {
	for i := range slot {
		slot[i] = 0
	}
	for i, occ := range occs {
		idx := (uint64(occ) * m.Magic) >> m.Shift
		switch slot[idx] {
		case 0:
			slot[idx] = refs[i]
		case refs[i]:
		default:
			return false
		}
	}
	return true
}

func bishopMask(sq Square) Bitboard {
	return bishopAttacksSlow(sq, 0) &^ (Rank1 | Rank8 | FileA | FileH)
}

func rookMask(sq Square) Bitboard {
	file, rank := sq.File(), sq.Rank()
	var mask Bitboard
	for f := 1; f < 7; f++ {
		if f != file {
			mask |= SquareBB(NewSquare(f, rank))
		}
	}
	for r := 1; r < 7; r++ {
		if r != rank {
			mask |= SquareBB(NewSquare(file, r))
		}
	}
	return mask
}

// indexToOccupancy maps the bits of index onto the squares of mask.
func indexToOccupancy(index, bits int, mask Bitboard) Bitboard {
	var occ Bitboard
	for i := 0; i < bits; i++ {
		sq := mask.PopLSB()
		if index&(1<<i) != 0 {
			occ |= SquareBB(sq)
		}
	}
	return occ
}

// rayScan walks from sq in steps of (df, dr) until the edge or the first
// occupied square, which is included.
func rayScan(sq Square, occupied Bitboard, df, dr int) Bitboard {
	var ray Bitboard
	for f, r := sq.File()+df, sq.Rank()+dr; onBoard(f, r); f, r = f+df, r+dr {
		s := SquareBB(NewSquare(f, r))
		ray |= s
		if occupied&s != 0 {
			break
		}
	}
	return ray
}

// bishopAttacksSlow is the ray-scan reference for bishop attacks.
func bishopAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return rayScan(sq, occupied, 1, 1) | rayScan(sq, occupied, -1, 1) |
		rayScan(sq, occupied, 1, -1) | rayScan(sq, occupied, -1, -1)
}

// rookAttacksSlow is the ray-scan reference for rook attacks.
func rookAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return rayScan(sq, occupied, 0, 1) | rayScan(sq, occupied, 0, -1) |
		rayScan(sq, occupied, 1, 0) | rayScan(sq, occupied, -1, 0)
}
