// Package search implements an anytime combinatorial search: iterative
// deepening over a depth-limited branch-and-bound. Callers describe their
// problem through the Move and State constraints; the package only supplies
// the strategy.
package search

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// DefaultGoodEnough is the lower bound above which Solve stops searching.
const DefaultGoodEnough = 0.9

var (
	ErrNoTransitions = errors.New("initial state has no transitions")
	ErrInvalidBound  = errors.New("bound is not a number")
	ErrDepthLimit    = errors.New("depth limit reached without a stopping condition")
)

// Improvement describes a strict increase of the running lower bound.
type Improvement[M any] struct {
	Move       M
	LowerBound float64
	// Depth is the depth limit of the iteration that found it.
	Depth int
	// Node is the number of nodes visited so far, this one included.
	Node uint64
}

// Solver runs the search. A Solver is not safe for concurrent use; the
// running bound is owned by one Solve call at a time.
type Solver[M Move[M], S State[M, S]] struct {
	settings
	observer func(Improvement[M])

	nodes        uint64
	currentDepth int
}

// NewSolver creates a solver with the given options applied over the
// defaults.
func NewSolver[M Move[M], S State[M, S]](opts ...Option) *Solver[M, S] {
	s := &Solver[M, S]{settings: defaultSettings()}
	for _, o := range opts {
		o(&s.settings)
	}
	return s
}

// OnImprovement registers f to be called every time the lower bound rises.
func (s *Solver[M, S]) OnImprovement(f func(Improvement[M])) {
	s.observer = f
}

// bound is the running answer of a Solve call. It is threaded through
// every search call of that Solve, across top-level moves and iterations.
type bound[M any] struct {
	lb   float64
	best M
}

type child[S any] struct {
	state   S
	ceiling float64
}

// record credits t with the state's floor if it beats the running bound.
func (s *Solver[M, S]) record(t M, st S, acc *bound[M]) error {
	h := st.NoWorseThan()
	if math.IsNaN(h) {
		return fmt.Errorf("%w: no-worse-than of %v", ErrInvalidBound, st)
	}
	if h <= acc.lb {
		return nil
	}
	if e := log.Debug(); e.Enabled() {
		e.Str("state", fmt.Sprint(st)).
			Float64("prev-lb", acc.lb).
			Float64("lb", h).
			Str("best", fmt.Sprint(t)).
			Int("depth", s.currentDepth).
			Msg("new-lower-bound")
	}
	acc.lb = h
	acc.best = t
	if s.observer != nil {
		s.observer(Improvement[M]{Move: t, LowerBound: h, Depth: s.currentDepth, Node: s.nodes})
	}
	return nil
}

// expand materializes the children of st, drops every child whose ceiling
// does not beat lb, and orders the rest by ascending ceiling. The second
// return value reports whether anything was dropped.
func expand[M any, S State[M, S]](st S, choices []M, lb float64) ([]child[S], bool, error) {
	children := lo.Map(choices, func(m M, _ int) child[S] {
		n := st.Apply(m)
		return child[S]{state: n, ceiling: n.NoBetterThan()}
	})
	for _, c := range children {
		if math.IsNaN(c.ceiling) {
			return nil, false, fmt.Errorf("%w: no-better-than of %v", ErrInvalidBound, c.state)
		}
	}
	kept := lo.Filter(children, func(c child[S], _ int) bool {
		return c.ceiling > lb
	})
	// Worst ceiling first. This decides which branch raises lb first and so
	// what later siblings get pruned; keep it.
	slices.SortStableFunc(kept, func(a, b child[S]) int {
		return cmp.Compare(a.ceiling, b.ceiling)
	})
	return kept, len(kept) < len(children), nil
}

// search explores st to depthLeft more levels, crediting any improvement to
// t. It reports whether the subtree was exhausted, i.e. every explored
// branch ended on a terminal state.
func (s *Solver[M, S]) search(ctx context.Context, t M, st S, depthLeft int, acc *bound[M]) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.nodes++
	if err := s.record(t, st, acc); err != nil {
		return false, err
	}
	choices := st.Transitions()
	if depthLeft == 0 {
		return len(choices) == 0, nil
	}
	nexts, pruned, err := expand(st, choices, acc.lb)
	if err != nil {
		return false, err
	}
	exhausted := !(pruned && s.strictExhaustion)
	for _, n := range nexts {
		ok, err := s.search(ctx, t, n.state, depthLeft-1, acc)
		if err != nil {
			return false, err
		}
		if !ok {
			exhausted = false
		}
	}
	return exhausted, nil
}
