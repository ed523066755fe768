package board

import (
	"fmt"
	"strings"
)

// Position is the piece placement: one set per color and type plus the
// per-color occupancy, which always equals the union of that color's sets.
type Position struct {
	pieces    [2][7]Bitboard
	occupancy [2]Bitboard
}

const StartText = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

var lookupOrder = [...]PieceType{
	PieceTypeKing, PieceTypeQueen, PieceTypeRook,
	PieceTypeBishop, PieceTypeKnight, PieceTypePawn,
}

var backRank = [8]PieceType{
	PieceTypeRook, PieceTypeKnight, PieceTypeBishop, PieceTypeQueen,
	PieceTypeKing, PieceTypeBishop, PieceTypeKnight, PieceTypeRook,
}

func NewPosition() Position { return Position{} }

// StartPosition returns the standard initial array.
func StartPosition() Position {
	var p Position
	for file := 0; file < 8; file++ {
		p.Set(NewSquare(file, 0), NewPiece(White, backRank[file]))
		p.Set(NewSquare(file, 1), WhitePawn)
		p.Set(NewSquare(file, 6), BlackPawn)
		p.Set(NewSquare(file, 7), NewPiece(Black, backRank[file]))
	}
	return p
}

// Get reports the occupant of sq, or NoPiece.
func (p *Position) Get(sq Square) Piece {
	bb := SquareBB(sq)
	var c Color
	switch {
	case p.occupancy[White]&bb != 0:
		c = White
	case p.occupancy[Black]&bb != 0:
		c = Black
	default:
		return NoPiece
	}
	for _, pt := range lookupOrder {
		if p.pieces[c][pt]&bb != 0 {
			return NewPiece(c, pt)
		}
	}
	return NoPiece
}

// Set places pc on sq, or clears it for NoPiece.
func (p *Position) Set(sq Square, pc Piece) {
	if !sq.Valid() {
		panic(fmt.Sprintf("Set: square %d out of range", sq))
	}
	bb := SquareBB(sq)
	for c := range p.pieces {
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			p.pieces[c][pt] &^= bb
		}
	}
	if pc != NoPiece {
		p.pieces[pc.Color()][pc.Type()] |= bb
	}
	p.updateOccupancy()
}

func (p *Position) updateOccupancy() {
	for c := range p.occupancy {
		var occ Bitboard
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			occ |= p.pieces[c][pt]
		}
		p.occupancy[c] = occ
	}
}

func (p *Position) Pieces(c Color, pt PieceType) Bitboard { return p.pieces[c][pt] }
func (p *Position) Occupancy(c Color) Bitboard             { return p.occupancy[c] }
func (p *Position) All() Bitboard                          { return p.occupancy[White] | p.occupancy[Black] }

// KingSquare returns the lowest king square of c, NoSquare if none.
func (p *Position) KingSquare(c Color) Square { return p.pieces[c][PieceTypeKing].LSB() }

// Validate checks the occupancy and disjointness invariants.
func (p *Position) Validate() error {
	var seen Bitboard
	for c := range p.pieces {
		var occ Bitboard
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			set := p.pieces[c][pt]
			if seen&set != 0 {
				return fmt.Errorf("overlapping piece sets at %v", (seen & set).LSB())
			}
			seen |= set
			occ |= set
		}
		if occ != p.occupancy[c] {
			return fmt.Errorf("stale occupancy for %v", Color(c))
		}
	}
	return nil
}

// Text renders the board notation, rank 8 first.
func (p *Position) Text() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.Get(NewSquare(file, rank))
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func (p Position) String() string { return p.Text() }
