// Package testutil holds fixtures and assertions shared by the package tests.
// The FEN reader here exists to write test positions compactly and to talk
// to the reference move generators; it is not part of the library surface.
package testutil

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Well-known perft positions.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

const pieceChars = "PNBRQKpnbrqk"

// ParseSetup parses a FEN string into a board.Setup. The clock fields are
// optional.
func ParseSetup(fen string) (board.Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return board.Setup{}, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	var side board.Color
	switch parts[1] {
	case "w":
		side = board.White
	case "b":
		side = board.Black
	default:
		return board.Setup{}, fmt.Errorf("invalid side to move: %s", parts[1])
	}
	s := board.NewSetup(side)

	if err := parsePlacement(&s, parts[0]); err != nil {
		return board.Setup{}, err
	}

	if parts[2] != "-" {
		for _, c := range parts[2] {
			i := strings.IndexRune("KQkq", c)
			if i < 0 {
				return board.Setup{}, fmt.Errorf("invalid castling character: %c", c)
			}
			s.Castling |= 1 << i
		}
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return board.Setup{}, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		s.EnPassant = sq
	}

	if len(parts) > 4 {
		n, err := strconv.Atoi(parts[4])
		if err != nil {
			return board.Setup{}, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		s.HalfMoveClock = n
	}
	if len(parts) > 5 {
		n, err := strconv.Atoi(parts[5])
		if err != nil {
			return board.Setup{}, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		s.FullMoveNumber = n
	}
	return s, nil
}

func parsePlacement(s *board.Setup, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range row {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			idx := strings.IndexRune(pieceChars, c)
			if idx < 0 {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			s.Pieces[board.NewSquare(file, rank)] = board.Piece(idx)
			file++
		}
		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}
	return nil
}

// ParseFEN builds a validated position from a FEN string.
func ParseFEN(fen string) (*board.Position, error) {
	s, err := ParseSetup(fen)
	if err != nil {
		return nil, err
	}
	return board.NewPositionFromSetup(s)
}

// MustFEN is ParseFEN for fixtures; it fails the test on error.
func MustFEN(tb testing.TB, fen string) *board.Position {
	tb.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		tb.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

// ParseSquare parses a coordinate such as "e4".
func ParseSquare(s string) (board.Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return board.NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return board.NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// ToFEN renders a position as FEN.
func ToFEN(p *board.Position) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(board.NewSquare(file, rank))
			if piece == board.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceChars[piece])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.SideToMove() == board.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(p.CastlingRights().String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant().String())
	fmt.Fprintf(&sb, " %d %d", p.HalfMoveClock(), p.FullMoveNumber())
	return sb.String()
}

// FindMove returns the legal move whose coordinate text is uci, or fails
// the test.
func FindMove(tb testing.TB, p *board.Position, uci string) board.Move {
	tb.Helper()
	ml := p.GenerateLegalMoves()
	for i := 0; i < ml.Len(); i++ {
		if m := ml.Get(i); m.String() == uci {
			return m
		}
	}
	tb.Fatalf("no legal move %s in %s", uci, ToFEN(p))
	return board.NoMove
}

// MoveStrings returns the coordinate text of every move in ml.
func MoveStrings(ml *board.MoveList) []string {
	out := make([]string, 0, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		out = append(out, ml.Get(i).String())
	}
	return out
}
