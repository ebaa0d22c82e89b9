package main

/*

Ultimate Tic-Tac-Toe in the terminal, against the MCTS engine or another human.
If you don't know the rules, see: https://en.wikipedia.org/wiki/Ultimate_tic-tac-toe

*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/IlikeChooros/go-uttt/internal/logger"
	"github.com/IlikeChooros/go-uttt/pkg/uttt"
)

func main() {
	var (
		mode     = flag.String("mode", "ai", "game mode: 'ai' (human vs engine) or 'pvp' (two humans)")
		human    = flag.String("human", "x", "mark of the human player in 'ai' mode: 'x' or 'o', x moves first")
		color    = flag.Bool("color", true, "colour the board")
		logLevel = flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
		dotPath  = flag.String("dot", "", "write the engine's search tree in DOT format to this file")
	)
	flag.Parse()

	log, err := logger.New(os.Stderr, *logLevel, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *mode != "ai" && *mode != "pvp" {
		log.Fatal().Str("mode", *mode).Msg("unknown mode, use 'ai' or 'pvp'")
	}

	var humanMark uttt.PieceType
	if runes := []rune(*human); len(runes) == 1 {
		humanMark = uttt.PieceFromRune(runes[0])
	}
	if humanMark == uttt.PieceNone {
		log.Fatal().Str("human", *human).Msg("human mark must be 'x' or 'o'")
	}

	g := newGame(humanMark, *mode == "pvp", newRenderer(os.Stdout, *color), log, *dotPath)
	if err := g.run(os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
