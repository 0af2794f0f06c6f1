// SPDX-License-Identifier: MIT

package socialgraph

import (
	"errors"

	"github.com/katalvlaran/campusnet/student"
)

// Sentinel errors for graph construction and augmentation.
var (
	// ErrNilStudent indicates a nil student in the input or in AddEdge.
	ErrNilStudent = errors.New("socialgraph: nil student")

	// ErrDuplicateStudent indicates two input students share a name.
	ErrDuplicateStudent = errors.New("socialgraph: duplicate student name")

	// ErrEmptyName indicates an input student without a name.
	ErrEmptyName = errors.New("socialgraph: student name is empty")
)

// Edge is a directed, weighted connection Source→Target. Weight is ≥ 0.
type Edge struct {
	Source *student.Student
	Target *student.Student
	Weight int
}

// Options configures graph construction.
type Options struct {
	// Strategy computes directional scores. Default: student.DefaultScorer.
	Strategy student.ScoreStrategy
}

// Option represents a functional option for Build.
type Option func(*Options)

// WithStrategy overrides the scoring strategy. A nil strategy is ignored.
func WithStrategy(s student.ScoreStrategy) Option {
	return func(o *Options) {
		if s != nil {
			o.Strategy = s
		}
	}
}

// DefaultOptions returns Options with student.DefaultScorer.
func DefaultOptions() Options {
	return Options{Strategy: student.DefaultScorer}
}
