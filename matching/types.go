// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnet/student"
)

// Sentinel errors for roommate assignment.
var (
	// ErrNilPopulation indicates a nil *student.Population.
	ErrNilPopulation = errors.New("matching: population is nil")

	// ErrProposalLimit indicates the configured proposal cap was reached.
	ErrProposalLimit = errors.New("matching: proposal limit reached")

	// ErrBadMaxProposals indicates a negative proposal cap.
	ErrBadMaxProposals = errors.New("matching: MaxProposals must be non-negative")
)

// Options configures AssignRoommates.
type Options struct {
	// Logger receives a debug trace of every proposal. Default: no-op.
	Logger *zap.Logger

	// MaxProposals caps the number of proposals; 0 means unlimited.
	MaxProposals int

	err error
}

// Option represents a functional option for AssignRoommates.
type Option func(*Options)

// WithLogger sets the trace logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxProposals caps the number of proposals. A negative n is reported as
// ErrBadMaxProposals.
func WithMaxProposals(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w (%d)", ErrBadMaxProposals, n)

			return
		}
		o.MaxProposals = n
	}
}

// DefaultOptions returns a no-op logger and no proposal cap.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// Pair is a mutual roommate assignment. First precedes Second in population order.
type Pair struct {
	First  *student.Student
	Second *student.Student
}

// Result summarizes a matching run. The authoritative assignment is stored in
// the population (Population.RoommateOf).
type Result struct {
	// Pairs in population order of their first member.
	Pairs []Pair

	// Unmatched students in population order.
	Unmatched []*student.Student

	// Proposals is the number of proposals made.
	Proposals int

	// Repaired is the number of non-reciprocal slots cleared by the final sweep.
	Repaired int
}

// BlockingPair is two students, not roommates, who each rank the other
// strictly above their current assignment.
type BlockingPair struct {
	A *student.Student
	B *student.Student
}
