package board

// Legality is decided by simulation: make the move, let the opponent
// enumerate pseudo-legal replies and see whether any of them captures our
// king. Each test costs one reply generation instead of an attack lookup.

const probeCapacity = 128

// IsLegal reports whether the pseudo-legal move m leaves the mover's king
// safe. Castling is also rejected when the king starts on, passes through or
// lands on a square the opponent attacks.
func (g *Game) IsLegal(m Move) bool {
	us := m.Color()
	if m.Kind == KindCastling {
		transit := SquareBB(m.From) | SquareBB((m.From+m.To)/2) | SquareBB(m.To)
		if Attacks(&g.Pos, us.Other())&transit != 0 {
			return false
		}
	}
	g.Make(&m)
	captured := g.kingCapturable(us)
	g.Unmake(m)
	return !captured
}

// KingCapturable reports whether some pseudo-legal move of c's opponent
// captures c's king, regardless of whose turn it is.
func (g *Game) KingCapturable(c Color) bool { return g.kingCapturable(c) }

func (g *Game) kingCapturable(c Color) bool {
	var buf [probeCapacity]Move
	king := NewPiece(c, PieceTypeKing)
	for _, reply := range generate(&g.Pos, c.Other(), NoRights, buf[:0]) {
		if reply.Kind == KindNormal && reply.Captured == king {
			return true
		}
	}
	return false
}

// HasKing reports whether the side to move still has its king. A game only
// loses one by capture from a position that was already illegal.
func (g *Game) HasKing() bool { return g.Pos.Pieces(g.Side, PieceTypeKing) != 0 }

// InCheck reports whether the side to move has its king attacked.
func (g *Game) InCheck() bool { return g.kingCapturable(g.Side) }

// LegalMoves filters the pseudo-legal list down to legal moves, keeping the
// generator order.
func (g *Game) LegalMoves() []Move {
	return g.LegalMovesInto(make([]Move, 0, 64))
}

// LegalMovesInto filters in place over dst's backing array.
func (g *Game) LegalMovesInto(dst []Move) []Move {
	moves := g.GeneratePseudoLegalInto(dst)
	legal := moves[:0]
	for _, m := range moves {
		if g.IsLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves stops at the first legal move.
func (g *Game) HasLegalMoves() bool {
	var buf [probeCapacity]Move
	for _, m := range g.GeneratePseudoLegalInto(buf[:0]) {
		if g.IsLegal(m) {
			return true
		}
	}
	return false
}

func (g *Game) InCheckmate() bool { return g.InCheck() && !g.HasLegalMoves() }
func (g *Game) InStalemate() bool { return !g.InCheck() && !g.HasLegalMoves() }
