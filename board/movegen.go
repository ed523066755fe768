package board

// Precomputed step targets for the leapers.
var (
	knightTargets [64]Bitboard
	kingTargets   [64]Bitboard
)

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, 2}, {-1, -2}, {1, 2}, {1, -2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

type direction func(Bitboard) Bitboard

var (
	rookDirections   = []direction{Bitboard.North, Bitboard.South, Bitboard.East, Bitboard.West}
	bishopDirections = []direction{Bitboard.NorthEast, Bitboard.NorthWest, Bitboard.SouthEast, Bitboard.SouthWest}
	queenDirections  = append(append([]direction{}, rookDirections...), bishopDirections...)
)

var promotionOrder = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

func init() {
	initLeaperTables()
}

func initLeaperTables() {
	for sq := Square(0); sq < 64; sq++ {
		knightTargets[sq] = stepTargets(sq, knightOffsets[:])
		kingTargets[sq] = stepTargets(sq, kingOffsets[:])
	}
}

func stepTargets(sq Square, offsets [][2]int) Bitboard {
	var bb Bitboard
	for _, o := range offsets {
		f, r := sq.File()+o[0], sq.Rank()+o[1]
		if f >= 0 && f < 8 && r >= 0 && r < 8 {
			bb = bb.With(NewSquare(f, r))
		}
	}
	return bb
}

// rayTargets walks each direction from sq until it leaves the board or hits
// an occupied square, which is included.
func rayTargets(sq Square, occ Bitboard, dirs []direction) Bitboard {
	var out Bitboard
	for _, step := range dirs {
		b := SquareBB(sq)
		for {
			b = step(b)
			if b == 0 {
				break
			}
			out |= b
			if b&occ != 0 {
				break
			}
		}
	}
	return out
}

// PseudoLegalMoves lists moves for the side to move that obey piece movement
// but may leave the king capturable.
func (g *Game) PseudoLegalMoves() []Move {
	return g.GeneratePseudoLegalInto(make([]Move, 0, 64))
}

// GeneratePseudoLegalInto appends to dst[:0]. Panics when the side to move
// has no king.
func (g *Game) GeneratePseudoLegalInto(dst []Move) []Move {
	if g.Pos.Pieces(g.Side, PieceTypeKing) == 0 {
		panic("GeneratePseudoLegalInto: side to move has no king")
	}
	return generate(&g.Pos, g.Side, g.Rights, dst[:0])
}

// generate scans side's pieces in ascending square order. It makes no
// assumption about kings so it can probe replies in any position.
func generate(pos *Position, side Color, rights CastlingRights, dst []Move) []Move {
	own := pos.Occupancy(side)
	enemy := pos.Occupancy(side.Other())
	occ := own | enemy
	for bb := own; bb != 0; {
		from := bb.PopLSB()
		pc := pos.Get(from)
		switch pc.Type() {
		case PieceTypePawn:
			dst = pawnMoves(pos, pc, from, enemy, ^occ, dst)
		case PieceTypeKnight:
			dst = addTargets(pos, pc, from, knightTargets[from]&^own, dst)
		case PieceTypeBishop:
			dst = addTargets(pos, pc, from, rayTargets(from, occ, bishopDirections)&^own, dst)
		case PieceTypeRook:
			dst = addTargets(pos, pc, from, rayTargets(from, occ, rookDirections)&^own, dst)
		case PieceTypeQueen:
			dst = addTargets(pos, pc, from, rayTargets(from, occ, queenDirections)&^own, dst)
		case PieceTypeKing:
			dst = addTargets(pos, pc, from, kingTargets[from]&^own, dst)
		}
	}
	return castlingMoves(pos, side, rights, occ, dst)
}

func addTargets(pos *Position, pc Piece, from Square, targets Bitboard, dst []Move) []Move {
	for targets != 0 {
		dst = append(dst, newNormal(pos, pc, from, targets.PopLSB(), NoPiece))
	}
	return dst
}

func pawnMoves(pos *Position, pc Piece, from Square, enemy, empty Bitboard, dst []Move) []Move {
	b := SquareBB(from)
	var push, double, captures Bitboard
	if pc.Color() == White {
		push = b.North() & empty
		if b&Rank2 != 0 {
			double = push.North() & empty
		}
		captures = (b.NorthEast() | b.NorthWest()) & enemy
	} else {
		push = b.South() & empty
		if b&Rank7 != 0 {
			double = push.South() & empty
		}
		captures = (b.SouthEast() | b.SouthWest()) & enemy
	}
	for targets := push | double | captures; targets != 0; {
		to := targets.PopLSB()
		if SquareBB(to)&(Rank1|Rank8) == 0 {
			dst = append(dst, newNormal(pos, pc, from, to, NoPiece))
			continue
		}
		for _, pt := range promotionOrder {
			dst = append(dst, newNormal(pos, pc, from, to, NewPiece(pc.Color(), pt)))
		}
	}
	return dst
}

var castlePaths = [...]struct {
	right    CastlingRights
	color    Color
	kingside bool
	path     Bitboard
}{
	{WhiteKingside, White, true, SquareBB(F1) | SquareBB(G1)},
	{WhiteQueenside, White, false, SquareBB(B1) | SquareBB(C1) | SquareBB(D1)},
	{BlackKingside, Black, true, SquareBB(F8) | SquareBB(G8)},
	{BlackQueenside, Black, false, SquareBB(B8) | SquareBB(C8) | SquareBB(D8)},
}

// castlingMoves does not look at attacked squares; IsLegal does.
func castlingMoves(pos *Position, side Color, rights CastlingRights, occ Bitboard, dst []Move) []Move {
	for _, cp := range castlePaths {
		if cp.color != side || !rights.Has(cp.right) || occ&cp.path != 0 {
			continue
		}
		m := NewCastling(side, cp.kingside)
		if pos.Get(m.From) != m.Piece || pos.Get(m.RookFrom) != NewPiece(side, PieceTypeRook) {
			continue
		}
		dst = append(dst, m)
	}
	return dst
}

// Attacks returns every square c's pieces could capture on.
func Attacks(pos *Position, c Color) Bitboard {
	occ := pos.All()
	pawns := pos.Pieces(c, PieceTypePawn)
	var out Bitboard
	if c == White {
		out = pawns.NorthEast() | pawns.NorthWest()
	} else {
		out = pawns.SouthEast() | pawns.SouthWest()
	}
	for bb := pos.Pieces(c, PieceTypeKnight); bb != 0; {
		out |= knightTargets[bb.PopLSB()]
	}
	for bb := pos.Pieces(c, PieceTypeKing); bb != 0; {
		out |= kingTargets[bb.PopLSB()]
	}
	queens := pos.Pieces(c, PieceTypeQueen)
	for bb := pos.Pieces(c, PieceTypeBishop) | queens; bb != 0; {
		out |= rayTargets(bb.PopLSB(), occ, bishopDirections)
	}
	for bb := pos.Pieces(c, PieceTypeRook) | queens; bb != 0; {
		out |= rayTargets(bb.PopLSB(), occ, rookDirections)
	}
	return out
}
