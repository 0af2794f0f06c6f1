// SPDX-License-Identifier: MIT

package referral

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for invalid input.
var (
	// ErrNilGraph indicates a nil *socialgraph.Graph.
	ErrNilGraph = errors.New("referral: graph is nil")

	// ErrNilStart indicates a nil start student.
	ErrNilStart = errors.New("referral: start student is nil")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("referral: unknown strategy")

	// ErrBadMaxHops indicates a negative hop limit.
	ErrBadMaxHops = errors.New("referral: max hops must be non-negative")
)

// Strategy selects how paths are ranked.
type Strategy int

const (
	// StrategyStrongest prefers chains of strong connections.
	StrategyStrongest Strategy = iota

	// StrategyFewestHops prefers the shortest chain.
	StrategyFewestHops
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyStrongest:
		return "strongest"
	case StrategyFewestHops:
		return "fewest-hops"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name to a Strategy.
// An empty name selects StrategyStrongest.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "strongest":
		return StrategyStrongest, nil
	case "fewest-hops":
		return StrategyFewestHops, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Options configures a Finder.
type Options struct {
	Strategy Strategy
	Logger   *zap.Logger

	// MaxHops bounds the chain length in connections; 0 means unlimited.
	MaxHops int

	err error
}

// Option represents a functional option for NewFinder.
type Option func(*Options)

// WithStrategy selects the search strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxHops limits chains to at most n connections, so at most n+1
// students. n == 0 removes the limit; n < 0 fails NewFinder with ErrBadMaxHops.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxHops, n)

			return
		}
		o.MaxHops = n
	}
}

// WithLogger sets the logger used for search diagnostics. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns StrategyStrongest with a no-op logger and no hop limit.
func DefaultOptions() Options {
	return Options{Strategy: StrategyStrongest, Logger: zap.NewNop()}
}
