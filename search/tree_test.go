package search

import (
	"fmt"

	"lukechampine.com/frand"
)

// A hand-built or random finite tree. Moves are node ids of the child they
// lead to, so the move that earned credit can be read off directly.

type treeMove int

func (treeMove) Sentinel() treeMove { return -1 }

type treeNode struct {
	floor, ceil float64
	kids        []treeMove
}

type tree struct {
	nodes  []treeNode
	visits []int
}

type treeState struct {
	t  *tree
	id int
}

func (s treeState) Apply(m treeMove) treeState { return treeState{t: s.t, id: int(m)} }

func (s treeState) Transitions() []treeMove {
	return append([]treeMove(nil), s.t.nodes[s.id].kids...)
}

// NoWorseThan is read exactly once per visited node, so it doubles as the
// visit log.
func (s treeState) NoWorseThan() float64 {
	s.t.visits = append(s.t.visits, s.id)
	return s.t.nodes[s.id].floor
}

func (s treeState) NoBetterThan() float64 { return s.t.nodes[s.id].ceil }

func (s treeState) Value() float64 { return s.t.nodes[s.id].floor }

func (s treeState) String() string { return fmt.Sprintf("n%d", s.id) }

func (t *tree) root() treeState { return treeState{t: t, id: 0} }

func (t *tree) add(floor, ceil float64, parent int) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, treeNode{floor: floor, ceil: ceil})
	if parent >= 0 {
		t.nodes[parent].kids = append(t.nodes[parent].kids, treeMove(id))
	}
	return id
}

func (t *tree) height(id int) int {
	h := 0
	for _, k := range t.nodes[id].kids {
		h = max(h, 1+t.height(int(k)))
	}
	return h
}

// maxFloor is the best floor anywhere in the subtree of id.
func (t *tree) maxFloor(id int) float64 {
	m := t.nodes[id].floor
	for _, k := range t.nodes[id].kids {
		m = max(m, t.maxFloor(int(k)))
	}
	return m
}

// without returns a copy of t in which only the kids kept by keep survive.
// Ids are unchanged.
func (t *tree) without(keep func(parent, kid int) bool) *tree {
	c := &tree{nodes: make([]treeNode, len(t.nodes))}
	for i, n := range t.nodes {
		c.nodes[i] = treeNode{floor: n.floor, ceil: n.ceil}
		for _, k := range n.kids {
			if keep(i, int(k)) {
				c.nodes[i].kids = append(c.nodes[i].kids, k)
			}
		}
	}
	return c
}

// randomTree builds a tree of at most depth levels below the root. When
// admissible is set every ceiling is at least the best floor below it, so
// pruning never hides the optimum.
func randomTree(seed byte, depth, fanout int, admissible bool) *tree {
	s := make([]byte, 32)
	s[0] = seed
	rng := frand.NewCustom(s, 1024, 12)

	t := &tree{}
	var grow func(parent, level int)
	grow = func(parent, level int) {
		if level == depth {
			return
		}
		n := rng.Intn(fanout + 1)
		if level == 0 && n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			floor := rng.Float64() * 0.85
			id := t.add(floor, floor+rng.Float64()*(1-floor), parent)
			grow(id, level+1)
		}
	}
	t.add(0, 1, -1)
	grow(0, 0)

	if admissible {
		for i := len(t.nodes) - 1; i >= 0; i-- {
			t.nodes[i].ceil = max(t.nodes[i].ceil, t.maxFloor(i))
		}
	}
	return t
}
