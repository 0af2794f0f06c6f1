// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnet/internal/config"
	"github.com/katalvlaran/campusnet/matching"
	"github.com/katalvlaran/campusnet/referral"
	"github.com/katalvlaran/campusnet/social"
	"github.com/katalvlaran/campusnet/socialgraph"
	"github.com/katalvlaran/campusnet/student"
)

// Points per check.
const (
	GraphPoints       = 30
	MatchingPoints    = 20
	ConcurrencyPoints = 20
	ReferralPoints    = 10
	IntegrationPoints = 20
)

// Check failures.
var (
	ErrNotReciprocal      = errors.New("harness: edge is not reciprocal")
	ErrTooManyUnpaired    = errors.New("harness: too many unpaired students")
	ErrNotEnoughStudents  = errors.New("harness: need at least two students")
	ErrActivityIncomplete = errors.New("harness: social activity incomplete")
	ErrMissingReferral    = errors.New("harness: expected a referral path")
	ErrNotInGraph         = errors.New("harness: relation is not a graph edge")
	ErrSkipped            = errors.New("harness: prerequisite check failed")
)

// Check is the outcome of one graded check.
type Check struct {
	Name   string
	Points int
	Max    int
	Err    error
}

// Passed reports whether the check earned its points.
func (c Check) Passed() bool { return c.Err == nil }

// Report collects the checks of one case.
type Report struct {
	Case   Case
	Checks []Check
}

// Score sums the points earned.
func (r *Report) Score() int {
	total := 0
	for _, c := range r.Checks {
		total += c.Points
	}

	return total
}

// MaxScore sums the points available.
func (r *Report) MaxScore() int {
	total := 0
	for _, c := range r.Checks {
		total += c.Max
	}

	return total
}

func (r *Report) record(name string, maxPoints int, err error) {
	c := Check{Name: name, Max: maxPoints, Err: err}
	if err == nil {
		c.Points = maxPoints
	}
	r.Checks = append(r.Checks, c)
}

// Grader runs the checks and narrates them to an output stream.
type Grader struct {
	cfg *config.Config
	log *zap.Logger
	out io.Writer
}

// NewGrader returns a Grader. nil arguments fall back to config.Default,
// a no-op logger and io.Discard.
func NewGrader(cfg *config.Config, log *zap.Logger, out io.Writer) *Grader {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}

	return &Grader{cfg: cfg, log: log, out: out}
}

// Grade runs every check over c.
func (g *Grader) Grade(ctx context.Context, c Case) *Report {
	g.printf("\n--- Test Case %d: %s ---\n", c.Number, c.Name)
	for _, s := range c.Students {
		g.printf("%s\n", s)
	}
	log := g.log.With(zap.Int("case", c.Number))
	r := &Report{Case: c}

	graph, err := g.checkGraph(c.Students)
	r.record("graph", GraphPoints, err)

	pop, err := g.checkMatching(c.Students, log)
	r.record("matching", MatchingPoints, err)

	r.record("concurrency", ConcurrencyPoints, g.checkConcurrency(ctx, c.Students, log))

	path, err := g.checkReferral(ctx, graph, c, log)
	r.record("referral", ReferralPoints, err)

	r.record("integration", IntegrationPoints, checkIntegration(graph, pop, path))

	for _, chk := range r.Checks {
		if chk.Passed() {
			g.printf("Test: %s passed (+%d pts).\n", chk.Name, chk.Points)
			continue
		}
		g.printf("Test: %s failed: %v\n", chk.Name, chk.Err)
		log.Warn("check failed", zap.String("check", chk.Name), zap.Error(chk.Err))
	}
	g.printf("Total Score for Test Case %d: %d/%d\n", c.Number, r.Score(), r.MaxScore())

	return r
}

func (g *Grader) checkGraph(students []*student.Student) (*socialgraph.Graph, error) {
	sg, err := socialgraph.Build(students)
	if err != nil {
		return nil, err
	}
	for _, s := range sg.Nodes() {
		for _, e := range sg.Neighbors(s) {
			w, ok := sg.Weight(e.Target, s)
			if !ok || w != e.Weight {
				return nil, fmt.Errorf("%w: %s -> %s", ErrNotReciprocal, s.Name, e.Target.Name)
			}
		}
	}
	g.printf("Social graph:\n")
	if err = sg.Dump(g.out); err != nil {
		return nil, err
	}
	for i, circle := range sg.Circles(1) {
		g.printf("Circle %d: [%s]\n", i+1, joinNames(circle))
	}

	return sg, nil
}

func (g *Grader) checkMatching(students []*student.Student, log *zap.Logger) (*student.Population, error) {
	pop, err := student.NewPopulation(students)
	if err != nil {
		return nil, err
	}
	res, err := matching.AssignRoommates(pop,
		matching.WithLogger(log),
		matching.WithMaxProposals(g.cfg.MaxProposals),
	)
	if err != nil {
		return nil, err
	}
	for _, p := range res.Pairs {
		g.printf("Roommates: %s & %s\n", p.First.Name, p.Second.Name)
	}

	unpaired := 0
	for i := 0; i < pop.Len(); i++ {
		s := pop.At(i)
		if len(s.RoommatePreferences) == 0 {
			continue
		}
		r := pop.RoommateOf(i)
		if r == student.Unassigned {
			unpaired++
			continue
		}
		if pop.RoommateOf(r) != i {
			return nil, fmt.Errorf("matching: pairing for %s is not reciprocal", s.Name)
		}
	}
	if unpaired > 1 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyUnpaired, unpaired)
	}

	return pop, nil
}

func (g *Grader) checkConcurrency(ctx context.Context, students []*student.Student, log *zap.Logger) error {
	if len(students) < 2 {
		return ErrNotEnoughStudents
	}
	sim, err := social.NewSimulator(social.NewNetwork(),
		social.WithFriendLatency(g.cfg.Social.FriendLatency),
		social.WithChatLatency(g.cfg.Social.ChatLatency),
		social.WithLogger(log),
	)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Social.Timeout)
	defer cancel()

	a, b := students[0], students[1]
	err = sim.Run(ctx,
		sim.FriendRequestTask(a, b),
		sim.ChatTask(a, b, "Hello there!"),
		sim.FriendRequestTask(b, a),
		sim.ChatTask(b, a, "Hi back!"),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrActivityIncomplete, err)
	}

	net := sim.Network()
	if !net.AreFriends(a, b) || len(net.History(a)) != 2 || len(net.History(b)) != 2 {
		return ErrActivityIncomplete
	}
	for _, m := range net.History(a) {
		g.printf("Chat: %s\n", m)
	}

	return nil
}

func (g *Grader) checkReferral(ctx context.Context, sg *socialgraph.Graph, c Case, log *zap.Logger) ([]*student.Student, error) {
	if sg == nil {
		return nil, ErrSkipped
	}
	strategy, err := referral.ParseStrategy(g.cfg.Strategy)
	if err != nil {
		return nil, err
	}
	f, err := referral.NewFinder(sg,
		referral.WithStrategy(strategy),
		referral.WithMaxHops(g.cfg.MaxHops),
		referral.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	if len(c.Students) == 0 {
		return nil, ErrNotEnoughStudents
	}
	path, err := f.FindReferralPathContext(ctx, c.Students[0], g.cfg.Company)
	if err != nil {
		return nil, err
	}
	g.printf("Referral path to %s: [%s]\n", g.cfg.Company, joinNames(path))
	if c.ExpectReferral && len(path) == 0 {
		return nil, ErrMissingReferral
	}

	return path, nil
}

// checkIntegration verifies that roommates and consecutive referral hops are
// connected in the graph.
func checkIntegration(sg *socialgraph.Graph, pop *student.Population, path []*student.Student) error {
	if sg == nil || pop == nil {
		return ErrSkipped
	}
	for i := 0; i < pop.Len(); i++ {
		r := pop.At(pop.RoommateOf(i))
		if r == nil {
			continue
		}
		if _, ok := sg.Weight(pop.At(i), r); !ok {
			return fmt.Errorf("%w: roommates %s & %s", ErrNotInGraph, pop.At(i).Name, r.Name)
		}
	}
	for i := 1; i < len(path); i++ {
		if _, ok := sg.Weight(path[i-1], path[i]); !ok {
			return fmt.Errorf("%w: referral hop %s -> %s", ErrNotInGraph, path[i-1].Name, path[i].Name)
		}
	}

	return nil
}

func (g *Grader) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out, format, args...)
}

func joinNames(path []*student.Student) string {
	names := make([]string, len(path))
	for i, s := range path {
		names[i] = s.Name
	}

	return strings.Join(names, ", ")
}
