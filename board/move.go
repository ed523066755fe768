package board

import (
	"fmt"
	"strings"
)

// CastlingRights flags which castles remain available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoRights  CastlingRights = 0
	AllRights                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Both returns the two rights belonging to c.
func Both(c Color) CastlingRights {
	if c == White {
		return WhiteKingside | WhiteQueenside
	}
	return BlackKingside | BlackQueenside
}

func (r CastlingRights) Has(f CastlingRights) bool { return r&f != 0 }

// String renders the FEN castling field.
func (r CastlingRights) String() string {
	if r == NoRights {
		return "-"
	}
	var sb strings.Builder
	for _, x := range []struct {
		f  CastlingRights
		ch byte
	}{{WhiteKingside, 'K'}, {WhiteQueenside, 'Q'}, {BlackKingside, 'k'}, {BlackQueenside, 'q'}} {
		if r.Has(x.f) {
			sb.WriteByte(x.ch)
		}
	}
	return sb.String()
}

// cornerRight maps a rook home square to the right it guards.
func cornerRight(sq Square) CastlingRights {
	switch sq {
	case A1:
		return WhiteQueenside
	case H1:
		return WhiteKingside
	case A8:
		return BlackQueenside
	case H8:
		return BlackKingside
	}
	return NoRights
}

type MoveKind uint8

const (
	KindNormal MoveKind = iota
	KindCastling
)

// Move is either a normal move or a castle, selected by Kind.
//
// Normal uses From, To, Piece, Captured and Promotion. Castling uses From/To
// for the king, RookFrom/RookTo for the rook and Piece for the king, whose
// color is the castling side. PrevRights is filled in by Game.Make.
type Move struct {
	Kind       MoveKind
	From, To   Square
	Piece      Piece
	Captured   Piece
	Promotion  Piece
	RookFrom   Square
	RookTo     Square
	PrevRights CastlingRights
}

// NewNormal reads mover and victim from pos. promo, if set, takes the
// mover's color.
func NewNormal(pos *Position, from, to Square, promo PieceType) (Move, error) {
	mover := pos.Get(from)
	if mover == NoPiece {
		return Move{}, fmt.Errorf("%w: no piece on %v", ErrInvalidMove, from)
	}
	return newNormal(pos, mover, from, to, NewPiece(mover.Color(), promo)), nil
}

func newNormal(pos *Position, mover Piece, from, to Square, promo Piece) Move {
	return Move{
		Kind:      KindNormal,
		From:      from,
		To:        to,
		Piece:     mover,
		Captured:  pos.Get(to),
		Promotion: promo,
		RookFrom:  NoSquare,
		RookTo:    NoSquare,
	}
}

// NewCastling builds the castle for c on the given wing.
func NewCastling(c Color, kingside bool) Move {
	base := NewSquare(0, 0)
	if c == Black {
		base = NewSquare(0, 7)
	}
	m := Move{Kind: KindCastling, From: base + 4, Piece: NewPiece(c, PieceTypeKing)}
	if kingside {
		m.To, m.RookFrom, m.RookTo = base+6, base+7, base+5
	} else {
		m.To, m.RookFrom, m.RookTo = base+2, base, base+3
	}
	return m
}

// Color of the side making the move.
func (m Move) Color() Color { return m.Piece.Color() }

// Right is the castling flag a castle consumes.
func (m Move) Right() CastlingRights {
	if m.Kind != KindCastling {
		return NoRights
	}
	return cornerRight(m.RookFrom)
}

// IsCapture reports whether the move takes a piece.
func (m Move) IsCapture() bool { return m.Kind == KindNormal && m.Captured != NoPiece }

// String renders coordinate move text, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	switch m.Kind {
	case KindNormal:
		s := m.From.String() + m.To.String()
		if m.Promotion != NoPiece {
			s += strings.ToLower(m.Promotion.Type().letter())
		}
		return s
	case KindCastling:
		return m.From.String() + m.To.String()
	default:
		panic(fmt.Sprintf("unknown move kind %d", m.Kind))
	}
}

func (pt PieceType) letter() string { return string(pieceChars[pt]) }
