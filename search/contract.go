package search

// Move is the constraint a move type must satisfy. Sentinel returns the
// placeholder reported when no move has earned credit yet.
type Move[M any] interface {
	Sentinel() M
}

// State is a point in the search space. S is the concrete state type itself,
// so that Apply can hand back a new state of the same type.
//
// NoWorseThan must not exceed NoBetterThan. This is never checked; breaking
// it makes pruning unreliable.
type State[M any, S any] interface {
	// Apply returns the state reached by playing m. The receiver must be
	// left untouched.
	Apply(m M) S
	// Transitions lists the legal moves. An empty list marks a terminal state.
	Transitions() []M
	// NoWorseThan is a value guaranteed achievable from this state or below.
	NoWorseThan() float64
	// NoBetterThan is a ceiling on anything reachable from this state or below.
	NoBetterThan() float64
	// Value is the state's own terminal value.
	Value() float64
}
