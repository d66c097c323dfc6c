package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/cli"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	perftRun      = flag.Bool("perft", false, "run perft mode")
	perftDepth    = flag.Int("perft.depth", 5, "perft depth")
	perftParallel = flag.Bool("perft.parallel", true, "fan out root moves in perft mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepCount = flag.Int("step.count", 5000, "maximum plies in step mode")
)

func main() {
	flag.Parse()

	if err := realMain(flag.Args()); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *perftRun {
		return perft(*perftDepth, fen, *perftParallel)
	}
	if *stepRun {
		return step(fen, *stepCount)
	}
	return cli.NewInterface().Run()
}
