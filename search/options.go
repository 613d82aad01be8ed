package search

type settings struct {
	goodEnough       float64
	maxDepth         int
	rootSuccessors   bool
	strictExhaustion bool
	explicitStack    bool
}

func defaultSettings() settings {
	return settings{goodEnough: DefaultGoodEnough}
}

// Option configures a Solver.
type Option func(*settings)

// WithGoodEnough sets the lower bound that ends the search once exceeded.
func WithGoodEnough(v float64) Option {
	return func(s *settings) { s.goodEnough = v }
}

// WithMaxDepth caps iterative deepening. Zero, the default, never gives up.
func WithMaxDepth(d int) Option {
	return func(s *settings) { s.maxDepth = d }
}

// WithRootSuccessors searches each top-level move from the state it leads
// to, one level shallower, instead of from the initial state.
func WithRootSuccessors(on bool) Option {
	return func(s *settings) { s.rootSuccessors = on }
}

// WithStrictExhaustion makes a pruned child count as unexplored, so a
// subtree only reports exhaustion if nothing in it was pruned.
func WithStrictExhaustion(on bool) Option {
	return func(s *settings) { s.strictExhaustion = on }
}

// WithExplicitStack walks the tree with a heap-allocated work stack rather
// than the goroutine stack. Results are identical.
func WithExplicitStack(on bool) Option {
	return func(s *settings) { s.explicitStack = on }
}
