// SPDX-License-Identifier: MIT

package student

import "strings"

// Score bonuses of UniversityStrategy.
const (
	PreferenceBonus = 4
	InternshipBonus = 3
	MajorBonus      = 2
	AgeBonus        = 1
)

// ScoreStrategy computes the directional connection strength from a to b.
// Implementations must be pure and safe for concurrent use.
type ScoreStrategy interface {
	Score(a, b *Student) int
}

// ScoreFunc adapts a plain function to ScoreStrategy.
type ScoreFunc func(a, b *Student) int

// Score implements ScoreStrategy.
func (f ScoreFunc) Score(a, b *Student) int { return f(a, b) }

// UniversityStrategy scores university students. See the package doc for the rules.
type UniversityStrategy struct{}

// Score implements ScoreStrategy. It returns 0 when either record is nil or
// not a university student.
func (UniversityStrategy) Score(a, b *Student) int {
	if a == nil || b == nil || a.Kind != KindUniversity || b.Kind != KindUniversity {
		return 0
	}

	score := 0
	if a.Prefers(b.Name) {
		score += PreferenceBonus
	}
	score += InternshipBonus * sharedInternships(a.PreviousInternships, b.PreviousInternships)
	if a.Major != "" && b.Major != "" && strings.EqualFold(a.Major, b.Major) {
		score += MajorBonus
	}
	if a.Age > 0 && b.Age > 0 && a.Age == b.Age {
		score += AgeBonus
	}

	return score
}

// sharedInternships counts matching (x, y) pairs across both lists; repeated
// entries count once per pairing.
func sharedInternships(xs, ys []string) int {
	n := 0
	for _, x := range xs {
		if IsNoInternship(x) {
			continue
		}
		for _, y := range ys {
			if !IsNoInternship(y) && strings.EqualFold(x, y) {
				n++
			}
		}
	}

	return n
}

// Dispatcher routes scoring to the strategy registered for the first record's
// Kind. It is immutable after construction.
type Dispatcher struct {
	strategies map[Kind]ScoreStrategy
}

// DispatchOption registers strategies on a Dispatcher.
type DispatchOption func(*Dispatcher)

// WithStrategy registers s for kind, replacing any previous registration.
// A nil strategy removes the registration.
func WithStrategy(kind Kind, s ScoreStrategy) DispatchOption {
	return func(d *Dispatcher) {
		if s == nil {
			delete(d.strategies, kind)

			return
		}
		d.strategies[kind] = s
	}
}

// NewDispatcher returns a Dispatcher with UniversityStrategy registered for
// KindUniversity, then applies opts.
func NewDispatcher(opts ...DispatchOption) *Dispatcher {
	d := &Dispatcher{strategies: map[Kind]ScoreStrategy{KindUniversity: UniversityStrategy{}}}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Score implements ScoreStrategy.
func (d *Dispatcher) Score(a, b *Student) int {
	if a == nil || b == nil {
		return 0
	}
	s, ok := d.strategies[a.Kind]
	if !ok {
		return 0
	}

	return s.Score(a, b)
}

// DefaultScorer is the Dispatcher used when no strategy is configured.
var DefaultScorer ScoreStrategy = NewDispatcher()
