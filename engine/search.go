package engine

import (
	"io"
	"log"

	b "chess-minimax/board"
	"chess-minimax/config"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int = 32500
	Checkmate int = 20000
	DrawScore int = 0
)

// Result is the outcome of a root search. Score is from white's point of
// view.
type Result struct {
	Move  b.Move
	Score int
	Depth int
	Nodes uint64
}

// Searcher runs fixed-depth negamax over a game. It holds per-ply move
// buffers, so one Searcher must not be shared between goroutines.
type Searcher struct {
	cfg    config.Config
	logger *log.Logger
	nodes  uint64
	plies  [][]b.Move
	scored [][]scoredMove
}

// NewSearcher copies cfg; later changes to cfg do not affect the searcher.
// Root moves are logged only when cfg.Debug is set and logger is non-nil.
func NewSearcher(cfg *config.Config, logger *log.Logger) *Searcher {
	if logger == nil || !cfg.Debug {
		logger = log.New(io.Discard, "", 0)
	}
	return &Searcher{cfg: *cfg, logger: logger}
}

// Nodes reports the nodes visited by the last search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

func (s *Searcher) reset(depth int) {
	s.nodes = 0
	for len(s.plies) <= depth {
		s.plies = append(s.plies, make([]b.Move, 0, 64))
		s.scored = append(s.scored, make([]scoredMove, 0, 64))
	}
}

// BestMove searches g to depth plies and returns the best legal move. ok is
// false when depth < 1 or the side to move has no legal move or no king.
// g is left as it was found.
func (s *Searcher) BestMove(g *b.Game, depth int) (res Result, ok bool) {
	if depth < 1 || !g.HasKing() {
		return Result{}, false
	}
	s.reset(depth)
	moves := s.ordered(g, depth)
	alpha, beta := -MaxScore, MaxScore
	best := -MaxScore - 1
	for i := range moves {
		orderNextMove(i, moves)
		m := moves[i].move
		if !g.IsLegal(m) {
			continue
		}
		g.Make(&m)
		score := -s.negamax(g, depth-1, -beta, -alpha)
		g.Unmake(m)
		s.logger.Printf("depth %d move %v score %d", depth, m, score)
		if score > best {
			best = score
			res.Move = m
			ok = true
		}
		if s.cfg.AlphaBeta {
			alpha = Max(alpha, score)
		}
	}
	if !ok {
		return Result{}, false
	}
	res.Score = best * sideSign(g.Side)
	res.Depth = depth
	res.Nodes = s.nodes
	return res, true
}

// Score returns the white-relative value of g searched to depth plies.
// A position without legal moves scores as mate or zero even at depth 0.
func (s *Searcher) Score(g *b.Game, depth int) int {
	s.reset(Max(depth, 0))
	if depth < 0 {
		depth = 0
	}
	var score int
	if !g.HasKing() {
		score = -(Checkmate + depth)
	} else if depth == 0 && !g.HasLegalMoves() {
		score = s.terminal(g, 0)
	} else {
		score = s.negamax(g, depth, -MaxScore, MaxScore)
	}
	return score * sideSign(g.Side)
}

// negamax returns the score from the side to move's point of view.
func (s *Searcher) negamax(g *b.Game, depth, alpha, beta int) int {
	s.nodes++
	if !g.HasKing() { // captured; scored like a mate
		return -(Checkmate + depth)
	}
	if depth == 0 {
		return Evaluate(&g.Pos, s.cfg.PieceSquareTables) * sideSign(g.Side)
	}
	moves := s.ordered(g, depth)
	best := -MaxScore
	legal := 0
	for i := range moves {
		orderNextMove(i, moves)
		m := moves[i].move
		if !g.IsLegal(m) {
			continue
		}
		legal++
		g.Make(&m)
		score := -s.negamax(g, depth-1, -beta, -alpha)
		g.Unmake(m)
		best = Max(best, score)
		if s.cfg.AlphaBeta {
			alpha = Max(alpha, score)
			if alpha >= beta {
				break
			}
		}
	}
	if legal == 0 {
		return s.terminal(g, depth)
	}
	return best
}

// terminal scores a node with no legal moves: mated sides lose more the
// sooner it happens, stalemate is a draw.
func (s *Searcher) terminal(g *b.Game, depth int) int {
	if g.InCheck() {
		return -(Checkmate + depth)
	}
	return DrawScore
}

func (s *Searcher) ordered(g *b.Game, depth int) []scoredMove {
	s.plies[depth] = g.GeneratePseudoLegalInto(s.plies[depth])
	s.scored[depth] = scoreMoves(s.plies[depth], s.scored[depth])
	return s.scored[depth]
}

// IsMateScore reports whether score encodes a forced mate.
func IsMateScore(score int) bool { return Abs(score) >= Checkmate }

// MateIn converts a side-relative mate score found by a depth-ply search
// into full moves, negative when the side to move is being mated.
func MateIn(score, depth int) int {
	plies := depth - (Abs(score) - Checkmate)
	moves := (plies + 1) / 2
	if score < 0 {
		return -moves
	}
	return moves
}
