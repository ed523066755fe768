package board

import (
	"fmt"
	"strings"
)

const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseBoardText reads the placement notation produced by Position.Text.
func ParseBoardText(text string) (Position, error) {
	var pos Position
	ranks := strings.Split(text, "/")
	if len(ranks) != 8 {
		return pos, &ParseError{Input: text, Field: "rank count", Err: ErrInvalidFEN}
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc := pieceFromChar(ch)
			if pc == NoPiece || file > 7 {
				return pos, &ParseError{Input: text, Field: fmt.Sprintf("rank %d", rank+1), Err: ErrInvalidFEN}
			}
			pos.Set(NewSquare(file, rank), pc)
			file++
		}
		if file != 8 {
			return pos, &ParseError{Input: text, Field: fmt.Sprintf("rank %d", rank+1), Err: ErrInvalidFEN}
		}
	}
	return pos, nil
}

// ParseFEN reads placement, side to move and castling rights. The en passant
// and clock fields are accepted but not used. Missing side and castling
// fields default to White and no rights.
func ParseFEN(fen string) (*Game, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, &ParseError{Input: fen, Field: "placement", Err: ErrInvalidFEN}
	}
	pos, err := ParseBoardText(fields[0])
	if err != nil {
		return nil, err
	}
	for _, c := range []Color{White, Black} {
		if n := pos.Pieces(c, PieceTypeKing).Count(); n != 1 {
			return nil, &ParseError{Input: fen, Field: fmt.Sprintf("%d kings for %v", n, c), Err: ErrInvalidFEN}
		}
	}
	g := &Game{Pos: pos, Side: White}
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
		case "b":
			g.Side = Black
		default:
			return nil, &ParseError{Input: fen, Field: "side to move", Err: ErrInvalidFEN}
		}
	}
	if len(fields) > 2 && fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				g.Rights |= WhiteKingside
			case 'Q':
				g.Rights |= WhiteQueenside
			case 'k':
				g.Rights |= BlackKingside
			case 'q':
				g.Rights |= BlackQueenside
			default:
				return nil, &ParseError{Input: fen, Field: "castling", Err: ErrInvalidFEN}
			}
		}
	}
	if g.KingCapturable(g.Side.Other()) {
		return nil, &ParseError{Input: fen, Field: "side not to move in check", Err: ErrInvalidFEN}
	}
	return g, nil
}

// FEN renders the game; en passant and clocks are fixed at "- 0 1".
func (g *Game) FEN() string {
	return fmt.Sprintf("%s %v %v - 0 1", g.Pos.Text(), g.Side, g.Rights)
}

// ParseMove turns coordinate text into a Move for g's position. It checks
// form only; ApplyText checks legality. A king stepping two files from its
// home square is read as a castle.
func ParseMove(g *Game, text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMoveText, text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, err
	}
	promo := PieceTypeNone
	if len(text) == 5 {
		if promo = promotionFromChar(text[4]); promo == PieceTypeNone {
			return Move{}, fmt.Errorf("%w: promotion %q", ErrInvalidMoveText, text[4])
		}
	}
	mover := g.Pos.Get(from)
	if mover.Type() == PieceTypeKing && promo == PieceTypeNone {
		home := E1
		if mover.Color() == Black {
			home = E8
		}
		if from == home && to.Rank() == from.Rank() && (to.File()-from.File() == 2 || from.File()-to.File() == 2) {
			return NewCastling(mover.Color(), to.File() > from.File()), nil
		}
	}
	return NewNormal(&g.Pos, from, to, promo)
}

// ApplyText parses text, checks it against the legal moves and makes it.
func (g *Game) ApplyText(text string) (Move, error) {
	m, err := ParseMove(g, text)
	if err != nil {
		return Move{}, err
	}
	for _, legal := range g.LegalMoves() {
		if legal == m {
			g.Make(&m)
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %s in %s", ErrIllegalMove, text, g.FEN())
}
