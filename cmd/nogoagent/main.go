// Command nogoagent runs self-play games between two NoGo players and
// records per-move and per-game metrics to CSV. It is a minimal harness
// for exercising the agent and mcts packages, not the outer
// game-playing protocol those packages are built to sit underneath.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yuanhenglee/go-nogo-mcts/agent"
	"github.com/yuanhenglee/go-nogo-mcts/board"
	"github.com/yuanhenglee/go-nogo-mcts/metrics"
)

func main() {
	games := flag.Int("games", 1, "number of self-play games to run")
	blackMeta := flag.String("black", "role=black mcts T=2000", "black agent meta (name=value pairs)")
	whiteMeta := flag.String("white", "role=white mcts T=2000", "white agent meta (name=value pairs)")
	outDir := flag.String("out", "metrics-out", "directory to write moves.csv/games.csv under")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	black, err := newPlayer(*blackMeta)
	if err != nil {
		log.Fatal().Err(err).Str("meta", *blackMeta).Msg("nogoagent: invalid black agent config")
	}
	white, err := newPlayer(*whiteMeta)
	if err != nil {
		log.Fatal().Err(err).Str("meta", *whiteMeta).Msg("nogoagent: invalid white agent config")
	}
	if black.Role() != board.Black || white.Role() != board.White {
		log.Fatal().Msg("nogoagent: black agent must have role=black, white agent must have role=white")
	}

	writer, err := metrics.NewWriter(*outDir)
	if err != nil {
		log.Fatal().Err(err).Msg("nogoagent: create metrics writer")
	}
	collector := metrics.NewCollector()

	log.Info().Int("games", *games).Msg("nogoagent: starting self-play")

	for i := 0; i < *games; i++ {
		log.Info().Int("game", i+1).Msg("nogoagent: game started")
		winner := runGame(black, white, collector)
		log.Info().Int("game", i+1).Str("winner", winner).Msg("nogoagent: game over")
	}

	if err := writer.WriteMoves(collector.Moves()); err != nil {
		log.Fatal().Err(err).Msg("nogoagent: write moves.csv")
	}
	if err := writer.WriteGames(collector.Games()); err != nil {
		log.Fatal().Err(err).Msg("nogoagent: write games.csv")
	}
	log.Info().Msg("nogoagent: finished self-play")
}

func newPlayer(meta string) (agent.Player, error) {
	cfg, err := agent.ParseMeta(meta)
	if err != nil {
		return nil, err
	}
	if cfg.Method == agent.MethodMCTS {
		return agent.NewMCTSPlayer(cfg), nil
	}
	return agent.NewBaselineRandomPlayer(cfg), nil
}

// runGame plays one game to completion, alternating turns starting with
// black, and records one MoveMetric per ply plus a single GameMetric at
// the end. It returns the winner's name, or "draw" in the impossible
// case neither side ever wins (NoGo always terminates with a winner).
func runGame(black, white agent.Player, collector metrics.Collector) string {
	pos := board.NewPosition()
	players := map[board.Side]agent.Player{board.Black: black, board.White: white}

	start := time.Now()
	side := board.Black
	step := 0
	winner := "draw"

	for {
		p := players[side]
		opponent := players[board.Other(side)]
		if opponent.CheckForWin(pos) {
			winner = opponent.Name()
			break
		}

		step++
		moveStart := time.Now()
		action := p.TakeAction(pos)
		elapsed := time.Since(moveStart)

		if action.IsResign() {
			winner = players[board.Other(side)].Name()
			break
		}

		if err := pos.Place(side, action.Point); err != nil {
			panic(fmt.Sprintf("nogoagent: %s played illegal move %v: %v", p.Name(), action.Point, err))
		}

		collector.AddMove(metrics.MoveMetric{
			Step:       step,
			Player:     p.Name(),
			Side:       side,
			Iterations: p.LastIterations(),
			Duration:   elapsed,
			Move:       action.Point,
		})

		side = board.Other(side)
	}

	collector.AddGame(metrics.GameMetric{
		Black:      black.Name(),
		White:      white.Name(),
		Winner:     winner,
		TotalMoves: step,
		Duration:   time.Since(start),
	})

	return winner
}
