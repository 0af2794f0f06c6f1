// SPDX-License-Identifier: MIT

package matching

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/campusnet/student"
)

// Outcomes recorded in the proposal trace.
const (
	outcomeUnknown  = "unknown-candidate"
	outcomeSelf     = "self-reference"
	outcomeAccepted = "accepted"
	outcomeSwapped  = "accepted-replacing"
	outcomeRejected = "rejected"
)

// AssignRoommates runs deferred acceptance over p and stores the result in
// p's roommate slots. See the package documentation for the algorithm.
//
// Errors:
//   - ErrNilPopulation: p is nil.
//   - ErrBadMaxProposals: invalid option.
//   - ErrProposalLimit: the cap was hit; the assignment made so far is kept
//     and made reciprocal, and the partial Result is returned with the error.
func AssignRoommates(p *student.Population, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilPopulation
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	e := &engine{
		pop:  p,
		opts: cfg,
		log:  cfg.Logger.Named("matching"),
		next: make([]int, p.Len()),
	}
	runErr := e.run()

	repaired := p.RepairRoommates()
	res := summarize(p, e.proposals, repaired)
	e.log.Debug("roommate assignment finished",
		zap.Int("students", p.Len()),
		zap.Int("pairs", len(res.Pairs)),
		zap.Int("unmatched", len(res.Unmatched)),
		zap.Int("proposals", res.Proposals),
		zap.Int("repaired", res.Repaired),
	)

	return res, runErr
}

// engine holds the mutable state of one run.
type engine struct {
	pop       *student.Population
	opts      Options
	log       *zap.Logger
	next      []int // next preference index per student
	queue     []int // FIFO of proposer indices
	proposals int
}

func (e *engine) run() error {
	e.pop.ClearRoommates()
	for i := 0; i < e.pop.Len(); i++ {
		if len(e.pop.At(i).RoommatePreferences) > 0 {
			e.queue = append(e.queue, i)
		}
	}

	for len(e.queue) > 0 {
		proposer := e.queue[0]
		e.queue = e.queue[1:]

		if e.pop.RoommateOf(proposer) != student.Unassigned || !e.hasNext(proposer) {
			continue
		}
		if e.opts.MaxProposals > 0 && e.proposals >= e.opts.MaxProposals {
			return ErrProposalLimit
		}
		e.propose(proposer)
	}

	return nil
}

// propose makes proposer's next proposal and resolves it.
func (e *engine) propose(proposer int) {
	ps := e.pop.At(proposer)
	name := ps.RoommatePreferences[e.next[proposer]]
	e.next[proposer]++
	e.proposals++

	candidate, ok := e.pop.Lookup(name)
	switch {
	case !ok:
		e.trace(ps, name, outcomeUnknown)
		e.requeue(proposer)

		return
	case candidate == proposer:
		e.trace(ps, name, outcomeSelf)
		e.requeue(proposer)

		return
	}

	cs := e.pop.At(candidate)
	current := e.pop.RoommateOf(candidate)
	if current == student.Unassigned {
		_ = e.pop.Pair(proposer, candidate)
		e.trace(ps, cs.Name, outcomeAccepted)

		return
	}

	if cs.PreferenceRank(ps.Name) < cs.PreferenceRank(e.pop.At(current).Name) {
		_ = e.pop.Unpair(current)
		_ = e.pop.Pair(proposer, candidate)
		e.trace(ps, cs.Name, outcomeSwapped, zap.String("released", e.pop.At(current).Name))
		e.requeue(current)

		return
	}
	e.trace(ps, cs.Name, outcomeRejected)
	e.requeue(proposer)
}

// requeue puts i back in line if it still has someone to propose to.
func (e *engine) requeue(i int) {
	if e.hasNext(i) {
		e.queue = append(e.queue, i)
	}
}

func (e *engine) hasNext(i int) bool {
	return e.next[i] < len(e.pop.At(i).RoommatePreferences)
}

func (e *engine) trace(proposer *student.Student, candidate, outcome string, extra ...zap.Field) {
	if ce := e.log.Check(zap.DebugLevel, "proposal"); ce != nil {
		fields := append([]zap.Field{
			zap.String("proposer", proposer.Name),
			zap.String("candidate", candidate),
			zap.String("outcome", outcome),
			zap.Int("seq", e.proposals),
		}, extra...)
		ce.Write(fields...)
	}
}

// summarize reads the final assignment back from the population.
func summarize(p *student.Population, proposals, repaired int) *Result {
	res := &Result{Proposals: proposals, Repaired: repaired}
	for i := 0; i < p.Len(); i++ {
		r := p.RoommateOf(i)
		switch {
		case r == student.Unassigned:
			res.Unmatched = append(res.Unmatched, p.At(i))
		case i < r:
			res.Pairs = append(res.Pairs, Pair{First: p.At(i), Second: p.At(r)})
		}
	}

	return res
}

// BlockingPairs lists pairs of students who are not roommates but both rank
// each other strictly above their current assignment (being unassigned ranks
// below every listed name). An empty result means the assignment is stable
// with respect to the stated preferences.
//
// Complexity: O(n² · L) where L is the longest preference list.
func BlockingPairs(p *student.Population) []BlockingPair {
	if p == nil {
		return nil
	}
	var out []BlockingPair
	n := p.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p.RoommateOf(i) == j {
				continue
			}
			a, b := p.At(i), p.At(j)
			if prefersOver(p, a, i, b) && prefersOver(p, b, j, a) {
				out = append(out, BlockingPair{A: a, B: b})
			}
		}
	}

	return out
}

// prefersOver reports whether s (at index i) ranks other strictly above its
// current roommate.
func prefersOver(p *student.Population, s *student.Student, i int, other *student.Student) bool {
	rank := s.PreferenceRank(other.Name)
	if rank == student.NotRanked {
		return false
	}
	current := p.At(p.RoommateOf(i))
	if current == nil {
		return true
	}

	return rank < s.PreferenceRank(current.Name)
}
