// Package chesscore is a chess rules core: legal move generation, move
// application with undo, and game status tracking on bitboards.
//
// The implementation lives in internal packages; this package re-exports
// the parts a host application needs.
package chesscore

import (
	"context"
	"log"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/encode"
	"github.com/hailam/chesscore/internal/game"
	"github.com/hailam/chesscore/internal/perft"
	"github.com/hailam/chesscore/internal/storage"
)

type (
	Position       = board.Position
	Setup          = board.Setup
	Move           = board.Move
	MoveFlag       = board.MoveFlag
	MoveList       = board.MoveList
	Undo           = board.Undo
	Square         = board.Square
	Bitboard       = board.Bitboard
	Color          = board.Color
	PieceType      = board.PieceType
	Piece          = board.Piece
	CastlingRights = board.CastlingRights
	PositionError  = board.PositionError
	MoveError      = board.MoveError

	Tracker       = game.Tracker
	Status        = game.Status
	Outcome       = game.Outcome
	MaterialRules = game.MaterialRules
	Option        = game.Option

	PerftOption = perft.Option
	PerftResult = perft.Result
	PerftCache  = perft.Cache
	MemoryCache = perft.MemoryCache
	PerftStore  = storage.PerftStore
)

const (
	White   = board.White
	Black   = board.Black
	NoColor = board.NoColor

	Pawn        = board.Pawn
	Knight      = board.Knight
	Bishop      = board.Bishop
	Rook        = board.Rook
	Queen       = board.Queen
	King        = board.King
	NoPieceType = board.NoPieceType

	WhitePawn   = board.WhitePawn
	WhiteKnight = board.WhiteKnight
	WhiteBishop = board.WhiteBishop
	WhiteRook   = board.WhiteRook
	WhiteQueen  = board.WhiteQueen
	WhiteKing   = board.WhiteKing
	BlackPawn   = board.BlackPawn
	BlackKnight = board.BlackKnight
	BlackBishop = board.BlackBishop
	BlackRook   = board.BlackRook
	BlackQueen  = board.BlackQueen
	BlackKing   = board.BlackKing
	NoPiece     = board.NoPiece

	Quiet       = board.Quiet
	DoublePush  = board.DoublePush
	KingCastle  = board.KingCastle
	QueenCastle = board.QueenCastle
	Capture     = board.Capture
	EnPassant   = board.EnPassant

	WhiteKingSideCastle  = board.WhiteKingSideCastle
	WhiteQueenSideCastle = board.WhiteQueenSideCastle
	BlackKingSideCastle  = board.BlackKingSideCastle
	BlackQueenSideCastle = board.BlackQueenSideCastle
	NoCastling           = board.NoCastling
	AllCastling          = board.AllCastling

	NoSquare = board.NoSquare
	NoMove   = board.NoMove

	InProgress                 = game.InProgress
	Checkmate                  = game.Checkmate
	Stalemate                  = game.Stalemate
	DrawByRepetition           = game.DrawByRepetition
	DrawByFiftyMove            = game.DrawByFiftyMove
	DrawByInsufficientMaterial = game.DrawByInsufficientMaterial

	NoOutcome            = game.NoOutcome
	WhiteWin             = game.WhiteWin
	BlackWin             = game.BlackWin
	StalemateDraw        = game.StalemateDraw
	InsufficientMaterial = game.InsufficientMaterial
	ThreefoldRepetition  = game.ThreefoldRepetition
	FiftyMoveRule        = game.FiftyMoveRule

	KingVsKing           = game.KingVsKing
	KingMinorVsKing      = game.KingMinorVsKing
	SameColoredBishops   = game.SameColoredBishops
	NoMaterialRules      = game.NoMaterialRules
	DefaultMaterialRules = game.DefaultMaterialRules
)

// NumMovePlanes is the number of policy planes per origin square.
const NumMovePlanes = encode.NumMovePlanes

// Squares.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 = board.A1, board.B1, board.C1, board.D1, board.E1, board.F1, board.G1, board.H1
	A2, B2, C2, D2, E2, F2, G2, H2 = board.A2, board.B2, board.C2, board.D2, board.E2, board.F2, board.G2, board.H2
	A3, B3, C3, D3, E3, F3, G3, H3 = board.A3, board.B3, board.C3, board.D3, board.E3, board.F3, board.G3, board.H3
	A4, B4, C4, D4, E4, F4, G4, H4 = board.A4, board.B4, board.C4, board.D4, board.E4, board.F4, board.G4, board.H4
	A5, B5, C5, D5, E5, F5, G5, H5 = board.A5, board.B5, board.C5, board.D5, board.E5, board.F5, board.G5, board.H5
	A6, B6, C6, D6, E6, F6, G6, H6 = board.A6, board.B6, board.C6, board.D6, board.E6, board.F6, board.G6, board.H6
	A7, B7, C7, D7, E7, F7, G7, H7 = board.A7, board.B7, board.C7, board.D7, board.E7, board.F7, board.G7, board.H7
	A8, B8, C8, D8, E8, F8, G8, H8 = board.A8, board.B8, board.C8, board.D8, board.E8, board.F8, board.G8, board.H8
)

var (
	ErrInvalidPosition = board.ErrInvalidPosition
	ErrIllegalMove     = board.ErrIllegalMove
	ErrGameOver        = game.ErrGameOver
	ErrNoHistory       = game.ErrNoHistory
)

// NewPosition returns the standard starting position.
func NewPosition() *Position { return board.NewPosition() }

// NewSetup returns an empty setup with side to move.
func NewSetup(side Color) Setup { return board.NewSetup(side) }

// StandardSetup describes the initial position.
func StandardSetup() Setup { return board.StandardSetup() }

// NewPositionFromSetup validates s and builds a position from it.
func NewPositionFromSetup(s Setup) (*Position, error) { return board.NewPositionFromSetup(s) }

// NewSquare returns the square on file and rank, both counted from 0.
func NewSquare(file, rank int) Square { return board.NewSquare(file, rank) }

// NewPiece returns the piece of type pt and colour c.
func NewPiece(pt PieceType, c Color) Piece { return board.NewPiece(pt, c) }

// NewMove builds a non-promotion move.
func NewMove(from, to Square, flag MoveFlag) Move { return board.NewMove(from, to, flag) }

// NewPromotion builds a promotion, capturing or not.
func NewPromotion(from, to Square, promo PieceType, capture bool) Move {
	return board.NewPromotion(from, to, promo, capture)
}

// NewTracker tracks a game from a copy of pos; nil means the standard start.
func NewTracker(pos *Position, opts ...Option) *Tracker { return game.NewTracker(pos, opts...) }

// NewStandard tracks a game from the standard start.
func NewStandard(opts ...Option) *Tracker { return game.NewStandard(opts...) }

// WithMaterialRules selects which insufficient-material cases end the game.
func WithMaterialRules(r MaterialRules) Option { return game.WithMaterialRules(r) }

// WithRepetitionLimit sets how many occurrences of a position draw the game.
func WithRepetitionLimit(n int) Option { return game.WithRepetitionLimit(n) }

// WithLogger reports game-ending transitions to l.
func WithLogger(l *log.Logger) Option { return game.WithLogger(l) }

// IsInsufficientMaterial reports whether rules declare pos a dead draw.
func IsInsufficientMaterial(pos *Position, rules MaterialRules) bool {
	return game.IsInsufficientMaterial(pos, rules)
}

// Perft counts leaf nodes depth plies below pos, splitting the root moves
// over goroutines.
func Perft(ctx context.Context, pos *Position, depth int, opts ...PerftOption) (uint64, error) {
	return perft.CountParallel(ctx, pos, depth, opts...)
}

// Divide returns the perft count below each legal root move.
func Divide(ctx context.Context, pos *Position, depth int, opts ...PerftOption) ([]PerftResult, error) {
	return perft.DivideParallel(ctx, pos, depth, opts...)
}

// WithWorkers bounds the goroutines a perft run uses.
func WithWorkers(n int) PerftOption { return perft.WithWorkers(n) }

// WithCache reuses subtree counts from cache.
func WithCache(cache PerftCache) PerftOption { return perft.WithCache(cache) }

// NewMemoryCache returns an in-memory perft cache of about sizeMB megabytes.
func NewMemoryCache(sizeMB int) *MemoryCache { return perft.NewMemoryCache(sizeMB) }

// OpenPerftStore opens a persistent perft cache in dir; an empty dir uses
// the default data directory.
func OpenPerftStore(dir string) (*PerftStore, error) { return storage.Open(dir) }

// MovePlane returns the policy plane of m relative to its origin square.
func MovePlane(m Move) (int, bool) { return encode.MovePlane(m) }

// MoveFromPlane resolves a policy plane from square from to the legal move
// in pos.
func MoveFromPlane(pos *Position, from Square, plane int) (Move, bool) {
	return encode.MoveFromPlane(pos, from, plane)
}
