package board

// Move encodes a chess move in 18 bits:
// bits 0-5:   from square
// bits 6-11:  to square
// bits 12-14: promotion piece (0 = none, else the PieceType)
// bits 15-17: MoveFlag
type Move uint32

// MoveFlag classifies a move.
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	DoublePush
	KingCastle
	QueenCastle
	Capture
	EnPassant
)

func (f MoveFlag) String() string {
	switch f {
	case Quiet:
		return "quiet"
	case DoublePush:
		return "double-push"
	case KingCastle:
		return "king-castle"
	case QueenCastle:
		return "queen-castle"
	case Capture:
		return "capture"
	case EnPassant:
		return "en-passant"
	}
	return "unknown"
}

// NoMove is the zero move.
const NoMove Move = 0

const (
	toShift    = 6
	promoShift = 12
	flagShift  = 15
)

// NewMove creates a non-promotion move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(from) | Move(to)<<toShift | Move(flag)<<flagShift
}

// NewPromotion creates a pawn move onto the last rank.
func NewPromotion(from, to Square, promo PieceType, capture bool) Move {
	flag := Quiet
	if capture {
		flag = Capture
	}
	return NewMove(from, to, flag) | Move(promo)<<promoShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & 0x3F)
}

// Flag returns the move kind.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> flagShift) & 7)
}

// Promotion returns the promotion piece, or NoPieceType.
func (m Move) Promotion() PieceType {
	pt := PieceType((m >> promoShift) & 7)
	if pt == Pawn {
		return NoPieceType
	}
	return pt
}

func (m Move) IsPromotion() bool  { return (m>>promoShift)&7 != 0 }
func (m Move) IsEnPassant() bool  { return m.Flag() == EnPassant }
func (m Move) IsDoublePush() bool { return m.Flag() == DoublePush }

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == Capture || f == EnPassant
}

// IsCastling reports whether the move is a king's castling step.
func (m Move) IsCastling() bool {
	f := m.Flag()
	return f == KingCastle || f == QueenCastle
}

// String renders the move in coordinate form ("e2e4", "e7e8q") for logs.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(" nbrq"[m.Promotion()])
	}
	return s
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends a move.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Slice returns a copy of the moves as a slice.
func (ml *MoveList) Slice() []Move {
	out := make([]Move, ml.count)
	copy(out, ml.moves[:ml.count])
	return out
}

// Contains reports whether m is in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Undo is what Unapply needs to restore the position Apply changed. It is
// only valid for the move it was returned with, and undos must be consumed
// in reverse order of application.
type Undo struct {
	Captured       Piece
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	Hash           uint64
	Checkers       Bitboard

	move Move
}
