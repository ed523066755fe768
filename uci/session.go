// Package uci speaks a subset of the Universal Chess Interface over a pair
// of line streams.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-minimax/board"
	"chess-minimax/config"
	"chess-minimax/engine"
)

const (
	EngineName   = "chess-minimax"
	EngineAuthor = "chess-minimax authors"
)

// Session holds the current game and settings between commands.
type Session struct {
	out    io.Writer
	cfg    *config.Config
	logger *log.Logger
	game   *board.Game
}

// NewSession writes replies to out. cfg is owned by the session and changed
// by setoption. logger receives search debug output when enabled.
func NewSession(out io.Writer, cfg *config.Config, logger *log.Logger) *Session {
	return &Session{out: out, cfg: cfg, logger: logger, game: board.NewGame()}
}

// Game exposes the current game, mainly for tests.
func (s *Session) Game() *board.Game { return s.game }

// Run reads commands until quit or end of input.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !s.Handle(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// Handle executes one command line and reports whether to keep going.
func (s *Session) Handle(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 { // ignore blank lines
		return true
	}
	switch strings.ToLower(tokens[0]) {
	case "uci":
		s.println("id name", EngineName)
		s.println("id author", EngineAuthor)
		s.printf("option name Depth type spin default %d min 1 max %d\n", s.cfg.Depth, s.cfg.MaxDepth)
		s.printf("option name PieceSquareTables type check default %v\n", s.cfg.PieceSquareTables)
		s.printf("option name AlphaBeta type check default %v\n", s.cfg.AlphaBeta)
		s.println("uciok")
	case "isready":
		s.println("readyok")
	case "ucinewgame":
		s.game = board.NewGame()
	case "position":
		s.position(tokens[1:])
	case "go":
		s.goSearch(tokens[1:])
	case "perft":
		s.perft(tokens[1:])
	case "d":
		s.println(s.game.Pos.Text())
		s.println("fen", s.game.FEN())
	case "eval":
		s.printf("info string eval %d\n", engine.Evaluate(&s.game.Pos, s.cfg.PieceSquareTables))
	case "setoption":
		s.setOption(tokens[1:])
	case "debug":
		if len(tokens) < 2 {
			s.println("info string Malformed debug command")
			break
		}
		s.cfg.Debug = strings.EqualFold(tokens[1], "on")
	case "stop":
	case "quit":
		return false
	default:
		s.println("info string Unknown command", tokens[0])
	}
	return true
}

// position handles "startpos|fen <fields> [moves ...]". On any error the
// previous game is kept.
func (s *Session) position(args []string) {
	if len(args) == 0 {
		s.println("info string Malformed position command")
		return
	}
	var g *board.Game
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		g = board.NewGame()
	case "fen":
		end := slices.IndexFunc(rest, func(tok string) bool { return strings.EqualFold(tok, "moves") })
		if end < 0 {
			end = len(rest)
		}
		var err error
		if g, err = board.ParseFEN(strings.Join(rest[:end], " ")); err != nil {
			s.println("info string Invalid fen position:", err)
			return
		}
		rest = rest[end:]
	default:
		s.println("info string Invalid position subcommand")
		return
	}
	if len(rest) > 0 {
		if !strings.EqualFold(rest[0], "moves") {
			s.println("info string Malformed position command")
			return
		}
		for _, text := range rest[1:] {
			if _, err := g.ApplyText(strings.ToLower(text)); err != nil {
				s.println("info string Move", text, "rejected:", err)
				return
			}
		}
	}
	s.game = g
}

func (s *Session) goSearch(args []string) {
	depth := s.cfg.Depth
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "depth":
			if i+1 >= len(args) {
				s.println("info string Malformed go command option depth")
				return
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil {
				s.println("info string Malformed go command option; could not convert depth")
				return
			}
			depth = s.cfg.ClampDepth(n)
		case "infinite", "wtime", "btime", "winc", "binc", "movestogo", "movetime":
			// No time management; skip a following value if any.
			if !strings.EqualFold(args[i], "infinite") && i+1 < len(args) {
				i++
			}
		default:
			s.println("info string Unknown go subcommand", args[i])
		}
	}

	searcher := engine.NewSearcher(s.cfg, s.logger)
	res, ok := searcher.BestMove(s.game, depth)
	if !ok {
		s.println("info string No legal moves")
		s.println("bestmove 0000")
		return
	}
	relative := res.Score
	if s.game.Side == board.Black {
		relative = -relative
	}
	score := fmt.Sprintf("cp %d", relative)
	if engine.IsMateScore(relative) {
		score = fmt.Sprintf("mate %d", engine.MateIn(relative, depth))
	}
	s.printf("info depth %d score %s nodes %d pv %v\n", depth, score, res.Nodes, res.Move)
	s.printf("bestmove %v\n", res.Move)
}

func (s *Session) perft(args []string) {
	if len(args) != 1 {
		s.println("info string Malformed perft command")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		s.println("info string Malformed perft depth", args[0])
		return
	}
	div := board.PerftDivide(s.game, depth)
	keys := maps.Keys(div)
	slices.Sort(keys)
	var total uint64
	for _, k := range keys {
		s.printf("%s: %d\n", k, div[k])
		total += div[k]
	}
	s.printf("Total: %d\n", total)
}

// setOption handles "name <id> value <x>".
func (s *Session) setOption(args []string) {
	if len(args) != 4 || !strings.EqualFold(args[0], "name") || !strings.EqualFold(args[2], "value") {
		s.println("info string Malformed setoption command")
		return
	}
	if err := s.cfg.Set(args[1], args[3]); err != nil {
		s.println("info string", err)
	}
}

func (s *Session) println(a ...interface{}) { fmt.Fprintln(s.out, a...) }

func (s *Session) printf(format string, a ...interface{}) { fmt.Fprintf(s.out, format, a...) }
