// SPDX-License-Identifier: MIT

// Package matching assigns roommates with a deferred-acceptance
// (Gale–Shapley style) algorithm over ranked preference lists.
//
// Every student is both proposer and receiver. Only students with a
// non-empty preference list propose; anyone named by a proposer can receive.
//
// Algorithm:
//
//  1. Clear all roommate assignments.
//  2. Queue every student with preferences, in population order.
//  3. Pop a proposer. Skip it if it is already matched or has no
//     preferences left. Otherwise it proposes to its next candidate:
//     - unknown name or itself: try again later if preferences remain;
//     - free candidate: the two are matched;
//     - matched candidate: the candidate keeps whoever it ranks strictly
//     better (unlisted names rank last); the loser is re-queued if it
//     still has preferences.
//  4. Sweep: any non-reciprocal assignment is cleared.
//
// Termination: each proposal advances its proposer's index, so the number of
// proposals is bounded by the total length of all preference lists.
//
// The outcome is proposer-optimal and receiver-pessimal. Since the roommates
// problem may have no stable matching at all, BlockingPairs is provided to
// inspect the result.
package matching
