package board

// Perft counts the leaf nodes reached after exactly depth plies of legal
// moves. A node whose side to move has lost its king has no children.
// g is restored before returning.
func Perft(g *Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	if !g.HasKing() {
		return 0
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(g, depth, &pc)
}

// perftCtx keeps one move buffer per remaining depth.
type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 128)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(g *Game, depth int, pc *perftCtx) uint64 {
	if depth == 0 {
		return 1
	}
	if !g.HasKing() {
		return 0
	}
	var nodes uint64
	for _, m := range g.GeneratePseudoLegalInto(pc.bufFor(depth)) {
		if !g.IsLegal(m) {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		g.Make(&m)
		nodes += perftRec(g, depth-1, pc)
		g.Unmake(m)
	}
	return nodes
}

// PerftDivide returns the node count below each legal root move, keyed by
// move text.
func PerftDivide(g *Game, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 || !g.HasKing() {
		return result
	}
	for _, m := range g.LegalMoves() {
		g.Make(&m)
		result[m.String()] = Perft(g, depth-1)
		g.Unmake(m)
	}
	return result
}
