package board

// Setup describes a position to construct. Build one with NewSetup or
// StandardSetup so the en-passant target starts out absent.
type Setup struct {
	Pieces         map[Square]Piece
	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	FullMoveNumber int
}

// NewSetup returns an empty board with side to move, no rights and no
// en-passant target.
func NewSetup(side Color) Setup {
	return Setup{
		Pieces:         make(map[Square]Piece),
		SideToMove:     side,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
}

// Put places piece on sq and returns the setup for chaining.
func (s Setup) Put(sq Square, piece Piece) Setup {
	if s.Pieces == nil {
		s.Pieces = make(map[Square]Piece)
	}
	s.Pieces[sq] = piece
	return s
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardSetup is the initial position of a game.
func StandardSetup() Setup {
	s := NewSetup(White)
	s.Castling = AllCastling
	for file := 0; file < 8; file++ {
		s.Pieces[NewSquare(file, 0)] = NewPiece(backRank[file], White)
		s.Pieces[NewSquare(file, 1)] = WhitePawn
		s.Pieces[NewSquare(file, 6)] = BlackPawn
		s.Pieces[NewSquare(file, 7)] = NewPiece(backRank[file], Black)
	}
	return s
}

// Setup returns a description of p that rebuilds an equal position.
func (p *Position) Setup() Setup {
	s := NewSetup(p.sideToMove)
	occ := p.allOccupied
	for occ != 0 {
		sq := occ.PopLSB()
		s.Pieces[sq] = p.PieceAt(sq)
	}
	s.Castling = p.castling
	s.EnPassant = p.enPassant
	s.HalfMoveClock = p.halfMoveClock
	s.FullMoveNumber = p.fullMoveNumber
	return s
}

// NewPositionFromSetup validates s and builds the position. Every rejection
// is a *PositionError wrapping ErrInvalidPosition.
func NewPositionFromSetup(s Setup) (*Position, error) {
	if s.SideToMove != White && s.SideToMove != Black {
		return nil, invalidf("side to move %d", s.SideToMove)
	}
	if s.HalfMoveClock < 0 {
		return nil, invalidf("negative halfmove clock %d", s.HalfMoveClock)
	}
	if s.FullMoveNumber < 1 {
		return nil, invalidf("fullmove number %d below 1", s.FullMoveNumber)
	}
	if s.Castling&^AllCastling != 0 {
		return nil, invalidf("castling rights %#x out of range", uint8(s.Castling))
	}

	p := emptyPosition()
	for sq, piece := range s.Pieces {
		if !sq.IsValid() {
			return nil, invalidf("square %d out of range", sq)
		}
		if piece >= NoPiece {
			return nil, invalidf("invalid piece %d on %v", piece, sq)
		}
		p.putPiece(piece, sq)
	}

	for c := White; c <= Black; c++ {
		if n := p.pieces[c][King].PopCount(); n != 1 {
			return nil, invalidf("%v has %d kings", c, n)
		}
		if n := p.occupied[c].PopCount(); n > 16 {
			return nil, invalidf("%v has %d pieces", c, n)
		}
		if n := p.pieces[c][Pawn].PopCount(); n > 8 {
			return nil, invalidf("%v has %d pawns", c, n)
		}
	}
	for c := White; c <= Black; c++ {
		if n, missing := p.promotedCount(c), 8-p.pieces[c][Pawn].PopCount(); n > missing {
			return nil, invalidf("%v has %d promoted pieces but only %d pawns missing", c, n, missing)
		}
	}
	if pawns := p.PiecesOfType(Pawn) & (Rank1 | Rank8); pawns != 0 {
		return nil, invalidf("pawn on %v", pawns.LSB())
	}

	if err := validateCastling(p, s.Castling); err != nil {
		return nil, err
	}
	p.sideToMove = s.SideToMove
	if err := validateEnPassant(p, s.EnPassant); err != nil {
		return nil, err
	}

	p.castling = s.Castling
	p.enPassant = s.EnPassant
	p.halfMoveClock = s.HalfMoveClock
	p.fullMoveNumber = s.FullMoveNumber

	them := p.sideToMove.Other()
	if p.IsSquareAttacked(p.kingSquare[them], p.sideToMove) {
		return nil, invalidf("%v to move but %v is in check", p.sideToMove, them)
	}

	p.hash = p.ComputeHash()
	p.updateCheckers()
	return p, nil
}

// initialCount is each piece type's number in the starting position.
var initialCount = [...]int{Knight: 2, Bishop: 2, Rook: 2, Queen: 1}

// promotedCount is the number of c's pieces beyond the starting complement;
// each of them needs a pawn that promoted.
func (p *Position) promotedCount(c Color) int {
	n := 0
	for pt := Knight; pt <= Queen; pt++ {
		if extra := p.pieces[c][pt].PopCount() - initialCount[pt]; extra > 0 {
			n += extra
		}
	}
	return n
}

func validateCastling(p *Position, cr CastlingRights) error {
	corners := [4]struct {
		right      CastlingRights
		king, rook Square
		c          Color
	}{
		{WhiteKingSideCastle, E1, H1, White},
		{WhiteQueenSideCastle, E1, A1, White},
		{BlackKingSideCastle, E8, H8, Black},
		{BlackQueenSideCastle, E8, A8, Black},
	}
	for _, k := range corners {
		if !cr.Has(k.right) {
			continue
		}
		if p.PieceAt(k.king) != NewPiece(King, k.c) || p.PieceAt(k.rook) != NewPiece(Rook, k.c) {
			return invalidf("castling right %v without king and rook on %v and %v", k.right, k.king, k.rook)
		}
	}
	return nil
}

// validateEnPassant checks that ep could follow a double push by the side
// that just moved. p.sideToMove must already be set.
func validateEnPassant(p *Position, ep Square) error {
	if ep == NoSquare {
		return nil
	}
	if !ep.IsValid() {
		return invalidf("en-passant square %d out of range", ep)
	}
	us := p.sideToMove
	if ep.RelativeRank(us) != 5 {
		return invalidf("en-passant square %v on wrong rank for %v to move", ep, us)
	}
	pushed, origin := ep-8, ep+8
	if us == Black {
		pushed, origin = ep+8, ep-8
	}
	if p.PieceAt(pushed) != NewPiece(Pawn, us.Other()) {
		return invalidf("en-passant square %v without a pawn on %v", ep, pushed)
	}
	if !p.IsEmpty(ep) || !p.IsEmpty(origin) {
		return invalidf("en-passant square %v not behind an empty path", ep)
	}
	return nil
}

// HasLegalEnPassant reports whether an en-passant capture is among the legal
// moves.
func (p *Position) HasLegalEnPassant() bool {
	if p.enPassant == NoSquare {
		return false
	}
	ml := p.GenerateLegalMoves()
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i).IsEnPassant() {
			return true
		}
	}
	return false
}
