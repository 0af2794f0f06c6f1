// SPDX-License-Identifier: MIT

package referral

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnet/bfs"
	"github.com/katalvlaran/campusnet/dijkstra"
	"github.com/katalvlaran/campusnet/socialgraph"
	"github.com/katalvlaran/campusnet/student"
)

// Finder searches a social graph for referral chains. It only reads the
// graph and is safe for concurrent use.
type Finder struct {
	g    *socialgraph.Graph
	opts Options
	log  *zap.Logger
}

// NewFinder returns a Finder over g.
func NewFinder(g *socialgraph.Graph, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	switch cfg.Strategy {
	case StrategyStrongest, StrategyFewestHops:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, cfg.Strategy)
	}

	return &Finder{g: g, opts: cfg, log: cfg.Logger.Named("referral")}, nil
}

// Strategy reports the configured strategy.
func (f *Finder) Strategy() Strategy { return f.opts.Strategy }

// FindReferralPath is FindReferralPathContext with a Background context.
func (f *Finder) FindReferralPath(start *student.Student, company string) ([]*student.Student, error) {
	return f.FindReferralPathContext(context.Background(), start, company)
}

// FindReferralPathContext returns the chain of students from start to the
// first student who has interned at company, both ends inclusive. If start
// itself qualifies, the result is [start]. An empty slice means no referral
// exists within the hop limit.
//
// Students are identified by name: start is located in the graph by its
// Name, path[0] is start itself and the remaining entries are graph nodes.
// A done ctx aborts the search with the context error.
func (f *Finder) FindReferralPathContext(ctx context.Context, start *student.Student, company string) ([]*student.Student, error) {
	if start == nil {
		return nil, ErrNilStart
	}
	if student.IsNoInternship(company) {
		return []*student.Student{}, nil
	}
	if start.HasInternship(company) {
		return []*student.Student{start}, nil
	}
	if _, ok := f.g.Lookup(start.Name); !ok {
		f.log.Debug("start not in graph", zap.String("start", start.Name))

		return []*student.Student{}, nil
	}

	goal := func(id string) bool {
		s, ok := f.g.Lookup(id)

		return ok && s.HasInternship(company)
	}

	var (
		ids []string
		err error
	)
	switch f.opts.Strategy {
	case StrategyFewestHops:
		ids, err = f.fewestHops(ctx, start.Name, goal)
	default:
		ids, err = f.strongest(ctx, start.Name, goal)
	}
	if err != nil {
		return nil, err
	}

	path := f.resolve(start, ids)
	f.log.Debug("referral search finished",
		zap.String("start", start.Name),
		zap.String("company", company),
		zap.Stringer("strategy", f.opts.Strategy),
		zap.Int("max_hops", f.opts.MaxHops),
		zap.Int("length", len(path)),
	)

	return path, nil
}

// strongest runs the weighted search; nil ids means no goal was reachable.
func (f *Finder) strongest(ctx context.Context, source string, goal func(string) bool) ([]string, error) {
	p, err := dijkstra.Search(f.g.Core(),
		dijkstra.Source(source),
		dijkstra.WithCost(dijkstra.StrongestFirst(int64(f.g.MaxWeight()))),
		dijkstra.WithGoal(goal),
		dijkstra.WithMaxHops(f.opts.MaxHops),
		dijkstra.WithContext(ctx),
	)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("referral: %w", err)
	}

	return p.Vertices, nil
}

// fewestHops runs the unweighted search; nil ids means no goal was reachable.
func (f *Finder) fewestHops(ctx context.Context, source string, goal func(string) bool) ([]string, error) {
	res, err := bfs.BFS(f.g.Core(), source,
		bfs.WithGoal(goal),
		bfs.WithMaxDepth(f.opts.MaxHops),
		bfs.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("referral: %w", err)
	}
	if res.Found == "" {
		return nil, nil
	}

	return res.PathTo(res.Found)
}

// resolve maps vertex IDs back to students, keeping start as the first entry.
func (f *Finder) resolve(start *student.Student, ids []string) []*student.Student {
	out := make([]*student.Student, 0, len(ids))
	for i, id := range ids {
		if i == 0 {
			out = append(out, start)
			continue
		}
		if s, ok := f.g.Lookup(id); ok {
			out = append(out, s)
		}
	}

	return out
}
