package main

import (
	"flag"
	"io"
	"log"
	"os"

	"chess-minimax/config"
	"chess-minimax/uci"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("chess-minimax", flag.ContinueOnError)
	fs.SetOutput(errOut)
	depth := fs.Int("depth", 4, "default search depth for go without depth")
	maxDepth := fs.Int("maxdepth", 8, "largest depth a go command may request")
	noPST := fs.Bool("nopst", false, "evaluate material only")
	noAB := fs.Bool("noab", false, "disable alpha-beta pruning")
	debug := fs.Bool("debug", false, "log root moves to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.NewBuilder().
		WithDepth(*depth).
		WithMaxDepth(*maxDepth).
		WithPieceSquareTables(!*noPST).
		WithAlphaBeta(!*noAB).
		WithDebug(*debug).
		Build()
	if err != nil {
		return err
	}

	logger := log.New(errOut, "search: ", log.Lmicroseconds)
	return uci.NewSession(out, cfg, logger).Run(in)
}
