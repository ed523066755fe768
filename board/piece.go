package board

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is a colorless piece kind, used to index tables.
type PieceType uint8

const (
	PieceTypeNone PieceType = iota
	PieceTypePawn
	PieceTypeKnight
	PieceTypeBishop
	PieceTypeRook
	PieceTypeQueen
	PieceTypeKing
)

// Piece packs a type in the low three bits and Black in bit 3.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(PieceTypePawn)
	WhiteKnight Piece = Piece(PieceTypeKnight)
	WhiteBishop Piece = Piece(PieceTypeBishop)
	WhiteRook   Piece = Piece(PieceTypeRook)
	WhiteQueen  Piece = Piece(PieceTypeQueen)
	WhiteKing   Piece = Piece(PieceTypeKing)

	BlackPawn   Piece = WhitePawn | 8
	BlackKnight Piece = WhiteKnight | 8
	BlackBishop Piece = WhiteBishop | 8
	BlackRook   Piece = WhiteRook | 8
	BlackQueen  Piece = WhiteQueen | 8
	BlackKing   Piece = WhiteKing | 8
)

// NewPiece combines a side and a type; PieceTypeNone yields NoPiece.
func NewPiece(c Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color of the owner. NoPiece reports White.
func (p Piece) Color() Color { return Color(p >> 3 & 1) }

const pieceChars = " PNBRQK"

// Char is the board-notation letter, uppercase for White.
func (p Piece) Char() byte {
	if p == NoPiece {
		return '.'
	}
	ch := pieceChars[p.Type()]
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string { return string(p.Char()) }

func pieceFromChar(ch byte) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	}
	return NoPiece
}

func promotionFromChar(ch byte) PieceType {
	switch ch {
	case 'q':
		return PieceTypeQueen
	case 'r':
		return PieceTypeRook
	case 'b':
		return PieceTypeBishop
	case 'n':
		return PieceTypeKnight
	}
	return PieceTypeNone
}
