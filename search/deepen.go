package search

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Result is the outcome of a Solve call.
type Result[M any] struct {
	Best       M
	LowerBound float64
	// Depth is the depth limit of the last iteration run.
	Depth int
	// Exhausted is set when the search stopped because a top-level call
	// covered its whole tree.
	Exhausted bool
	// GoodEnough is set when the search stopped on the threshold.
	GoodEnough bool
	Nodes      uint64
}

func (r Result[M]) String() string {
	return fmt.Sprintf("best %v (lb %.4f) depth %d nodes %d exhausted %v good-enough %v",
		r.Best, r.LowerBound, r.Depth, r.Nodes, r.Exhausted, r.GoodEnough)
}

// Solve picks a move from initial by iterative deepening. Each iteration
// searches once per legal move of initial, attributing whatever that search
// finds to the move; it stops as soon as the lower bound passes the good
// enough threshold or one of those searches is exhausted. With
// WithRootSuccessors every move of the iteration must be exhausted instead.
//
// The running bound starts at zero and is never reset, so a move only earns
// credit by strictly beating everything found before it.
//
// An initial state without transitions is rejected with ErrNoTransitions.
// With a depth cap, running past it returns the best answer so far and
// ErrDepthLimit.
func (s *Solver[M, S]) Solve(ctx context.Context, initial S) (Result[M], error) {
	var zero M
	acc := &bound[M]{lb: 0, best: zero.Sentinel()}
	s.nodes = 0
	s.currentDepth = 0

	choices := initial.Transitions()
	if len(choices) == 0 {
		return s.result(acc), ErrNoTransitions
	}
	log.Debug().
		Int("choices", len(choices)).
		Float64("good-enough", s.goodEnough).
		Int("max-depth", s.maxDepth).
		Bool("root-successors", s.rootSuccessors).
		Bool("explicit-stack", s.explicitStack).
		Msg("solve-config")

	for depth := 1; s.maxDepth == 0 || depth <= s.maxDepth; depth++ {
		s.currentDepth = depth
		log.Debug().Int("depth", depth).Float64("lb", acc.lb).Msg("deepening-iteratively")
		allExhausted := true
		for _, c := range choices {
			exhausted, err := s.searchRoot(ctx, c, initial, depth, acc)
			if err != nil {
				return s.result(acc), fmt.Errorf("searching %v at depth %d: %w", c, depth, err)
			}
			allExhausted = allExhausted && exhausted
			// From the initial state every call covers the same tree, so one
			// exhausted call is enough. From successors each call covers only
			// its own move.
			if acc.lb > s.goodEnough || (exhausted && !s.rootSuccessors) {
				return s.finish(acc, exhausted && !s.rootSuccessors), nil
			}
		}
		if s.rootSuccessors && allExhausted {
			return s.finish(acc, true), nil
		}
	}
	log.Warn().Int("max-depth", s.maxDepth).Float64("lb", acc.lb).Msg("depth-limit-reached")
	return s.result(acc), ErrDepthLimit
}

func (s *Solver[M, S]) searchRoot(ctx context.Context, c M, initial S, depth int, acc *bound[M]) (bool, error) {
	st, left := initial, depth
	if s.rootSuccessors {
		st, left = initial.Apply(c), depth-1
	}
	if s.explicitStack {
		return s.searchStack(ctx, c, st, left, acc)
	}
	return s.search(ctx, c, st, left, acc)
}

func (s *Solver[M, S]) finish(acc *bound[M], exhausted bool) Result[M] {
	res := s.result(acc)
	res.Exhausted = exhausted
	res.GoodEnough = acc.lb > s.goodEnough
	log.Debug().
		Str("best", fmt.Sprint(res.Best)).
		Float64("lb", res.LowerBound).
		Int("depth", res.Depth).
		Uint64("nodes", res.Nodes).
		Bool("exhausted", res.Exhausted).
		Msg("search-finished")
	return res
}

func (s *Solver[M, S]) result(acc *bound[M]) Result[M] {
	return Result[M]{
		Best:       acc.best,
		LowerBound: acc.lb,
		Depth:      s.currentDepth,
		Nodes:      s.nodes,
	}
}

// Solve runs a default Solver on initial and returns the chosen move. It
// returns the sentinel move if initial has no transitions.
func Solve[M Move[M], S State[M, S]](initial S) M {
	res, err := NewSolver[M, S]().Solve(context.Background(), initial)
	if err != nil {
		log.Err(err).Msg("solve-failed")
	}
	return res.Best
}
