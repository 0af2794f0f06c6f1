// SPDX-License-Identifier: MIT

// Package student defines the student record, the connection-strength scoring
// model, and the Population arena that owns roommate assignments.
//
// Records are value-like: build them once (New or a struct literal) and do not
// mutate them afterwards. The only mutable relation the core needs, the
// roommate assignment, lives in Population as an index per student, so there
// are no pointer cycles and the reciprocity repair is a linear sweep.
//
// Scoring is dispatched through the ScoreStrategy capability interface:
//
//	score := student.DefaultScorer.Score(alice, bob) // asymmetric
//
// UniversityStrategy implements the campus rules, all additive:
//
//	+4  b's name appears in a's roommate preferences (case-insensitive)
//	+3  per pair of case-insensitively equal internships (multiset, "None" excluded)
//	+2  same non-empty major (case-insensitive)
//	+1  same known age (> 0)
//
// A Dispatcher routes each call on the first record's Kind; unknown kinds
// and nil records score 0.
package student
