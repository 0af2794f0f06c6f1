// SPDX-License-Identifier: MIT

// Package harness runs every campusnet component over a population and
// scores the outcome.
//
// Checks and points:
//
//	graph        30  every edge has a reverse edge of equal weight
//	matching     20  assignments are mutual; at most one student with
//	                 preferences stays unpaired
//	concurrency  20  concurrent friend requests and chats complete in time
//	referral     10  a referral path is found when the case expects one
//	integration  20  roommates and referral hops are edges of the graph
package harness
