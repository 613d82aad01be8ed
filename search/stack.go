package search

import "context"

type frame[S any] struct {
	state     S
	depthLeft int
}

// searchStack is search without native recursion. Frames are pushed in
// reverse order so they pop in the same order search would visit them, and
// children are filtered against lb at the moment their parent is visited,
// as search does. Both therefore produce the same bound, move and node count.
func (s *Solver[M, S]) searchStack(ctx context.Context, t M, root S, depthLeft int, acc *bound[M]) (bool, error) {
	exhausted := true
	stack := []frame[S]{{state: root, depthLeft: depthLeft}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := ctx.Err(); err != nil {
			return false, err
		}
		s.nodes++
		if err := s.record(t, f.state, acc); err != nil {
			return false, err
		}
		choices := f.state.Transitions()
		if f.depthLeft == 0 {
			if len(choices) > 0 {
				exhausted = false
			}
			continue
		}
		nexts, pruned, err := expand(f.state, choices, acc.lb)
		if err != nil {
			return false, err
		}
		if pruned && s.strictExhaustion {
			exhausted = false
		}
		for i := len(nexts) - 1; i >= 0; i-- {
			stack = append(stack, frame[S]{state: nexts[i].state, depthLeft: f.depthLeft - 1})
		}
	}
	return exhausted, nil
}
