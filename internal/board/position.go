package board

import (
	"fmt"
	"strings"
)

// CastlingRights is the set of castling options still available.
type CastlingRights uint8

const (
	WhiteKingSideCastle CastlingRights = 1 << iota
	WhiteQueenSideCastle
	BlackKingSideCastle
	BlackQueenSideCastle

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// Has reports whether every right in r is present.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r
}

// CanCastle reports whether c still has the right on the given wing.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	return cr.Has(castleRight(c, kingSide))
}

func castleRight(c Color, kingSide bool) CastlingRights {
	switch {
	case c == White && kingSide:
		return WhiteKingSideCastle
	case c == White:
		return WhiteQueenSideCastle
	case kingSide:
		return BlackKingSideCastle
	default:
		return BlackQueenSideCastle
	}
}

// String lists the rights as "KQkq", or "-" when none remain.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for i, ch := range "KQkq" {
		if cr&(1<<i) != 0 {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// castlingLoss[sq] is the set of rights lost once a piece leaves or lands on sq.
var castlingLoss = func() (t [64]CastlingRights) {
	t[A1] = WhiteQueenSideCastle
	t[H1] = WhiteKingSideCastle
	t[E1] = WhiteKingSideCastle | WhiteQueenSideCastle
	t[A8] = BlackQueenSideCastle
	t[H8] = BlackKingSideCastle
	t[E8] = BlackKingSideCastle | BlackQueenSideCastle
	return t
}()

// Position is a complete, mutable chess position. It is not safe for
// concurrent use; give each goroutine its own Clone.
type Position struct {
	pieces      [2][6]Bitboard
	occupied    [2]Bitboard
	allOccupied Bitboard

	sideToMove     Color
	castling       CastlingRights
	enPassant      Square
	halfMoveClock  int
	fullMoveNumber int

	hash       uint64
	kingSquare [2]Square
	checkers   Bitboard // pieces giving check to the side to move
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	pos, err := NewPositionFromSetup(StandardSetup())
	if err != nil {
		panic(err)
	}
	return pos
}

func emptyPosition() *Position {
	return &Position{
		enPassant:      NoSquare,
		fullMoveNumber: 1,
		kingSquare:     [2]Square{NoSquare, NoSquare},
	}
}

// Clone returns an independent copy.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// Equal reports whether both positions are identical in every field,
// counters included.
func (p *Position) Equal(o *Position) bool {
	return *p == *o
}

func (p *Position) SideToMove() Color              { return p.sideToMove }
func (p *Position) CastlingRights() CastlingRights { return p.castling }
func (p *Position) HalfMoveClock() int             { return p.halfMoveClock }
func (p *Position) FullMoveNumber() int            { return p.fullMoveNumber }
func (p *Position) AllOccupied() Bitboard          { return p.allOccupied }
func (p *Position) Checkers() Bitboard             { return p.checkers }

// EnPassant returns the en-passant target square, or NoSquare.
func (p *Position) EnPassant() Square { return p.enPassant }

// Hash returns the position identity hash (see ComputeHash).
func (p *Position) Hash() uint64 { return p.hash }

// Occupancy returns all squares holding c's pieces.
func (p *Position) Occupancy(c Color) Bitboard {
	return p.occupied[c]
}

// Pieces returns the squares holding c's pieces of type pt.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard {
	return p.pieces[c][pt]
}

// PiecesOfType returns both colours' pieces of type pt.
func (p *Position) PiecesOfType(pt PieceType) Bitboard {
	return p.pieces[White][pt] | p.pieces[Black][pt]
}

// KingSquare returns where c's king stands.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.checkers != 0
}

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)
	if p.allOccupied&bb == 0 {
		return NoPiece
	}
	c := White
	if p.occupied[Black]&bb != 0 {
		c = Black
	}
	for pt := Pawn; pt <= King; pt++ {
		if p.pieces[c][pt]&bb != 0 {
			return NewPiece(pt, c)
		}
	}
	return NoPiece
}

// IsEmpty reports whether sq is unoccupied.
func (p *Position) IsEmpty(sq Square) bool {
	return p.allOccupied&SquareBB(sq) == 0
}

// Mutation primitives. They keep occupancy, king squares and the hash in
// step, except for the en-passant key which Apply brackets via epKey.

// putPiece places piece on sq, first removing whatever stood there, so a
// square never holds two pieces.
func (p *Position) putPiece(piece Piece, sq Square) {
	if !p.IsEmpty(sq) {
		p.removePiece(sq)
	}
	c, pt := piece.Color(), piece.Type()
	bb := SquareBB(sq)
	p.pieces[c][pt] |= bb
	p.occupied[c] |= bb
	p.allOccupied |= bb
	p.hash ^= zobristPiece[c][pt][sq]
	if pt == King {
		p.kingSquare[c] = sq
	}
}

// removePiece clears sq and returns what stood there.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}
	c, pt := piece.Color(), piece.Type()
	bb := SquareBB(sq)
	p.pieces[c][pt] &^= bb
	p.occupied[c] &^= bb
	p.allOccupied &^= bb
	p.hash ^= zobristPiece[c][pt][sq]
	return piece
}

// movePiece relocates the piece on from to to, removing any occupant of to.
func (p *Position) movePiece(from, to Square) {
	piece := p.removePiece(from)
	if piece == NoPiece {
		return
	}
	p.putPiece(piece, to)
}

func (p *Position) toggleSide() {
	p.sideToMove = p.sideToMove.Other()
	p.hash ^= zobristSideToMove
}

func (p *Position) setCastling(cr CastlingRights) {
	p.hash ^= zobristCastling[p.castling] ^ zobristCastling[cr]
	p.castling = cr
}

// clearCastling removes rights; it can never add any.
func (p *Position) clearCastling(cr CastlingRights) {
	p.setCastling(p.castling &^ cr)
}

func (p *Position) setEnPassant(sq Square) { p.enPassant = sq }
func (p *Position) clearEnPassant()        { p.enPassant = NoSquare }

// Pinned returns c's pieces that are the only blocker between c's king and
// an enemy slider.
func (p *Position) Pinned(c Color) Bitboard {
	them := c.Other()
	ksq := p.kingSquare[c]
	if ksq == NoSquare {
		return 0
	}
	var pinned Bitboard
	snipers := RookAttacks(ksq, 0)&(p.pieces[them][Rook]|p.pieces[them][Queen]) |
		BishopAttacks(ksq, 0)&(p.pieces[them][Bishop]|p.pieces[them][Queen])
	for snipers != 0 {
		blockers := Between(snipers.PopLSB(), ksq) & p.allOccupied
		if blockers.Single() && blockers&p.occupied[c] != 0 {
			pinned |= blockers
		}
	}
	return pinned
}

// String draws the board and lists the state fields.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteString(p.PieceAt(NewSquare(file, rank)).String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.sideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.castling)
	fmt.Fprintf(&sb, "En passant: %s\n", p.enPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.halfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.fullMoveNumber)
	fmt.Fprintf(&sb, "Hash: %016x\n", p.hash)
	return sb.String()
}
