// Package model defines the core data structures used throughout rstfy.
//
// This package contains the following main types:
//   - Project: A problem set together with its report configuration
//   - Problem: A unit of judging configuration (solutions, testset, validators)
//   - EvaluationResult: The judge's verdict for one solution of a problem
//   - MetricRow: One summarised table row produced from a problem's results
//
// Host-controlled entities (Project, Problem) are extended by composition:
// optional extension structs such as ProblemExtension and ReportConfig are
// attached at load time instead of being baked into the base types.
package model
