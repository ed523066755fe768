package board

import "fmt"

// Game is the mutable search state: placement, side to move and rights.
type Game struct {
	Pos    Position
	Side   Color
	Rights CastlingRights
}

// NewGame returns the standard starting game.
func NewGame() *Game {
	return &Game{Pos: StartPosition(), Side: White, Rights: AllRights}
}

// Clone returns an independent copy.
func (g *Game) Clone() *Game {
	c := *g
	return &c
}

// Make applies m in place, recording the prior rights in m for Unmake.
func (g *Game) Make(m *Move) {
	m.PrevRights = g.Rights
	pos := &g.Pos
	switch m.Kind {
	case KindNormal:
		pos.Set(m.From, NoPiece)
		if m.Promotion != NoPiece {
			pos.Set(m.To, m.Promotion)
		} else {
			pos.Set(m.To, m.Piece)
		}
		if m.Piece.Type() == PieceTypeKing {
			g.Rights &^= Both(m.Piece.Color())
		}
		g.Rights &^= cornerRight(m.From) | cornerRight(m.To)
	case KindCastling:
		pos.Set(m.From, NoPiece)
		pos.Set(m.RookFrom, NoPiece)
		pos.Set(m.To, m.Piece)
		pos.Set(m.RookTo, NewPiece(m.Color(), PieceTypeRook))
		g.Rights &^= Both(m.Color())
	default:
		panic(fmt.Sprintf("Make: unknown move kind %d", m.Kind))
	}
	g.Side = g.Side.Other()
}

// Unmake reverses a move previously applied with Make.
func (g *Game) Unmake(m Move) {
	pos := &g.Pos
	switch m.Kind {
	case KindNormal:
		pos.Set(m.From, m.Piece)
		pos.Set(m.To, m.Captured)
	case KindCastling:
		pos.Set(m.To, NoPiece)
		pos.Set(m.RookTo, NoPiece)
		pos.Set(m.From, m.Piece)
		pos.Set(m.RookFrom, NewPiece(m.Color(), PieceTypeRook))
	default:
		panic(fmt.Sprintf("Unmake: unknown move kind %d", m.Kind))
	}
	g.Rights = m.PrevRights
	g.Side = g.Side.Other()
}
