package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Square indexes the board rank-major: a1=0, b1=1, ... h8=63.
type Square int

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A8 Square = iota + 56
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from zero-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

func (s Square) File() int { return int(s) & 7 }
func (s Square) Rank() int { return int(s) >> 3 }

func (s Square) Valid() bool { return s >= 0 && s < 64 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare reads algebraic coordinates such as "e4".
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrInvalidMoveText, alg)
	}
	file := int(alg[0] - 'a')
	rank := int(alg[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrInvalidMoveText, alg)
	}
	return NewSquare(file, rank), nil
}

// Bitboard is a set of squares; bit i holds square i.
type Bitboard uint64

const (
	FileA Bitboard = 0x0101010101010101
	FileH Bitboard = FileA << 7
	Rank1 Bitboard = 0xFF
	Rank2 Bitboard = Rank1 << 8
	Rank7 Bitboard = Rank1 << 48
	Rank8 Bitboard = Rank1 << 56
)

// SquareBB returns the singleton set for sq.
func SquareBB(sq Square) Bitboard { return 1 << uint(sq) }

func (b Bitboard) Has(sq Square) bool        { return b&SquareBB(sq) != 0 }
func (b Bitboard) With(sq Square) Bitboard    { return b | SquareBB(sq) }
func (b Bitboard) Without(sq Square) Bitboard { return b &^ SquareBB(sq) }
func (b Bitboard) Count() int                 { return bits.OnesCount64(uint64(b)) }
func (b Bitboard) Empty() bool                { return b == 0 }

func (b Bitboard) North() Bitboard     { return b << 8 }
func (b Bitboard) South() Bitboard     { return b >> 8 }
func (b Bitboard) East() Bitboard      { return (b << 1) &^ FileA }
func (b Bitboard) West() Bitboard      { return (b >> 1) &^ FileH }
func (b Bitboard) NorthEast() Bitboard { return (b << 9) &^ FileA }
func (b Bitboard) NorthWest() Bitboard { return (b << 7) &^ FileH }
func (b Bitboard) SouthEast() Bitboard { return (b >> 7) &^ FileA }
func (b Bitboard) SouthWest() Bitboard { return (b >> 9) &^ FileH }

// LSB returns the lowest set square, or NoSquare for an empty set.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest set square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Squares lists the members in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for b != 0 {
		out = append(out, b.PopLSB())
	}
	return out
}

func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(NewSquare(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
