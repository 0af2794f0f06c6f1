// SPDX-License-Identifier: MIT

// Package referral finds a chain of acquaintances leading from a student to
// someone who has interned at a target company.
//
// The search runs over a socialgraph.Graph. Two strategies are available:
//
//   - StrategyStrongest (default): best-first search where an edge of
//     weight w costs (maxWeight+1) − w. Every cost is at least 1, so strong
//     ties are preferred and zero-weight edges stay traversable.
//   - StrategyFewestHops: breadth-first search, shortest chain by edge count.
//
// Both stop at the first goal reached. Ties are broken by discovery order,
// which follows the graph's insertion order. WithMaxHops bounds the chain
// length under either strategy, and FindReferralPathContext stops a search
// when its context is done.
//
// "No referral" is not an error: an empty slice is returned when the start is
// not in the graph, the company is blank or the "None" sentinel, or no
// reachable student qualifies.
package referral
