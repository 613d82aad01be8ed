// Package guess is a small string-alignment problem used to exercise the
// search engine: starting from a partial string, append letters until the
// string lines up with a hidden target.
package guess

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// DefaultTarget and DefaultAlphabet describe the stock puzzle.
const (
	DefaultTarget   = "AAABBBCCC"
	DefaultAlphabet = "ABCD"
)

var (
	ErrEmptyTarget   = errors.New("target must not be empty")
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")
)

// Letter is a move: the letter appended to the guess.
type Letter byte

// Sentinel is the move reported before anything better is known.
func (Letter) Sentinel() Letter { return 'A' }

func (l Letter) String() string { return string(rune(l)) }

// Guess is a partial string being lined up against a target.
type Guess struct {
	s        string
	target   string
	alphabet []Letter
}

// New creates a guess starting at start. Only the first len(target)
// letters of a guess are ever scored.
func New(start, target, alphabet string) (Guess, error) {
	if target == "" {
		return Guess{}, ErrEmptyTarget
	}
	letters, err := ParseAlphabet(alphabet)
	if err != nil {
		return Guess{}, err
	}
	return Guess{s: start, target: target, alphabet: letters}, nil
}

// ParseAlphabet turns a string into the distinct letters it contains, in
// order of first appearance. Whitespace and commas are ignored.
func ParseAlphabet(alphabet string) ([]Letter, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, alphabet)
	if cleaned == "" {
		return nil, ErrEmptyAlphabet
	}
	for _, r := range cleaned {
		if r > 0x7f {
			return nil, fmt.Errorf("letter %q is not ASCII", r)
		}
	}
	return lo.Uniq(lo.Map([]byte(cleaned), func(b byte, _ int) Letter {
		return Letter(b)
	})), nil
}

// Apply appends l.
func (g Guess) Apply(l Letter) Guess {
	g.s += string(rune(l))
	return g
}

// Transitions returns a copy of the alphabet; every letter can always be
// appended.
func (g Guess) Transitions() []Letter {
	return slices.Clone(g.alphabet)
}

func (g Guess) matches() (right, wrong int) {
	n := min(len(g.s), len(g.target))
	for i := 0; i < n; i++ {
		if g.s[i] == g.target[i] {
			right++
		} else {
			wrong++
		}
	}
	return right, wrong
}

// NoWorseThan is the fraction of target positions already matched.
func (g Guess) NoWorseThan() float64 {
	right, _ := g.matches()
	return float64(right) / float64(len(g.target))
}

// NoBetterThan is the fraction of target positions not yet mismatched.
func (g Guess) NoBetterThan() float64 {
	_, wrong := g.matches()
	n := len(g.target)
	return float64(n-wrong) / float64(n)
}

// Value is 1 for an exact match and 0 otherwise.
func (g Guess) Value() float64 {
	if g.s == g.target {
		return 1
	}
	return 0
}

func (g Guess) String() string {
	return g.s
}
