// SPDX-License-Identifier: MIT

// Package campusnet models a university student network: who is connected to
// whom, who should room together, and who can refer whom to a company.
//
// Subpackages, bottom-up:
//
//	core/         thread-safe, insertion-ordered weighted directed graph
//	bfs/          breadth-first search with depth limit and goal stop
//	dfs/          depth-first search and forest traversal
//	dijkstra/     goal-directed shortest paths with pluggable edge costs and hop limits
//	student/      student records, connection scoring, populations
//	socialgraph/  the symmetric weighted student network and its circles
//	matching/     deferred-acceptance roommate assignment
//	referral/     referral chains toward a company
//	dataset/      comma-separated student roster parsing
//	social/       concurrent friend request and chat simulation
//
// The campusnet command (cmd/campusnet) runs every component over sample or
// file-based populations and grades the results.
//
// Quick example:
//
//	students := []*student.Student{
//		student.New("Greg", student.WithMajor("Economics"), student.WithPreferences("Ivy")),
//		student.New("Ivy", student.WithMajor("Economics"), student.WithInternships("DummyCompany")),
//	}
//	g, _ := socialgraph.Build(students)
//	f, _ := referral.NewFinder(g)
//	path, _ := f.FindReferralPath(students[0], "DummyCompany") // [Greg Ivy]
package campusnet
