package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/boundsearch/config"
	"github.com/domino14/boundsearch/guess"
	"github.com/domino14/boundsearch/search"
	"github.com/domino14/boundsearch/stats"
)

func randomTarget(alphabet []guess.Letter, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(alphabet[frand.Intn(len(alphabet))])
	}
	return string(b)
}

func solve(ctx context.Context, cfg *config.Config, start, target, alphabet string, verbose bool) (search.Result[guess.Letter], error) {
	initial, err := guess.New(start, target, alphabet)
	if err != nil {
		return search.Result[guess.Letter]{}, err
	}
	solver := search.NewSolver[guess.Letter, guess.Guess](cfg.SearchOptions()...)
	if verbose {
		solver.OnImprovement(func(imp search.Improvement[guess.Letter]) {
			log.Info().
				Str("move", imp.Move.String()).
				Float64("lb", imp.LowerBound).
				Int("depth", imp.Depth).
				Uint64("nodes", imp.Node).
				Msg("improved")
		})
	}
	res, err := solver.Solve(ctx, initial)
	if errors.Is(err, search.ErrDepthLimit) {
		log.Warn().Str("target", target).Msg("no stopping condition met before the depth limit; reporting best so far")
		err = nil
	}
	return res, err
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading-config")
	}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if dump, err := cfg.Dump(); err == nil {
		log.Debug().Msgf("effective config:\n%s", dump)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	start := cfg.GetString(config.ConfigGuessStart)
	alphabet := cfg.GetString(config.ConfigGuessAlphabet)
	target := cfg.GetString(config.ConfigGuessTarget)
	letters, err := guess.ParseAlphabet(alphabet)
	if err != nil {
		log.Fatal().Err(err).Msg("parsing-alphabet")
	}
	length := cfg.GetInt(config.ConfigGuessRandomLength)
	trials := cfg.GetInt(config.ConfigGuessTrials)

	if trials <= 1 {
		if length > 0 {
			target = randomTarget(letters, length)
		}
		log.Info().Str("start", start).Str("target", target).Msg("solving")
		res, err := solve(ctx, cfg, start, target, alphabet, true)
		if err != nil {
			log.Fatal().Err(err).Msg("solving")
		}
		fmt.Printf("take %v\n", res.Best)
		fmt.Println(res)
		return
	}

	if length <= 0 {
		length = len(target)
	}
	var nodes, depths, bounds stats.Running
	for i := 0; i < trials; i++ {
		t := randomTarget(letters, length)
		res, err := solve(ctx, cfg, start, t, alphabet, false)
		if err != nil {
			log.Fatal().Err(err).Int("trial", i).Msg("solving")
		}
		log.Debug().Int("trial", i).Str("target", t).Str("result", res.String()).Msg("trial-done")
		nodes.Push(float64(res.Nodes))
		depths.Push(float64(res.Depth))
		bounds.Push(res.LowerBound)
	}
	fmt.Printf("nodes:       %v\n", &nodes)
	fmt.Printf("depth:       %v\n", &depths)
	fmt.Printf("lower bound: %.4f ± %.4f (95%%)\n", bounds.Mean(), bounds.Interval(95))
}
