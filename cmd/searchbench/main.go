package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"chess-minimax/board"
	"chess-minimax/config"
	"chess-minimax/engine"
)

var defaultFENs = []string{
	board.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

func main() {
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	fenFlag := flag.String("fen", "", "single FEN to search (empty = built-in set)")
	noAB := flag.Bool("noab", false, "disable alpha-beta pruning")
	noPST := flag.Bool("nopst", false, "evaluate material only")
	debug := flag.Bool("debug", false, "log root moves")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	cfg, err := config.NewBuilder().
		WithMaxDepth(config.DepthLimit).
		WithDepth(*depthFlag).
		WithAlphaBeta(!*noAB).
		WithPieceSquareTables(!*noPST).
		WithDebug(*debug).
		Build()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	fens := defaultFENs
	if *fenFlag != "" {
		fens = []string{*fenFlag}
	}

	searcher := engine.NewSearcher(cfg, log.New(os.Stderr, "search: ", 0))
	var totalNodes uint64
	startAll := time.Now()
	for _, fen := range fens {
		g, err := board.ParseFEN(fen)
		if err != nil {
			log.Fatalf("%v", err)
		}
		start := time.Now()
		res, ok := searcher.BestMove(g, cfg.Depth)
		elapsed := time.Since(start)
		if !ok {
			fmt.Printf("%s: no legal moves  time=%v\n", fen, elapsed)
			continue
		}
		totalNodes += res.Nodes
		fmt.Printf("%s: bestmove %v score %d nodes %d time=%v\n", fen, res.Move, res.Score, res.Nodes, elapsed)
	}
	total := time.Since(startAll)
	fmt.Printf("total nodes %d time %v nps %.0f\n", totalNodes, total, float64(totalNodes)/total.Seconds())
}
