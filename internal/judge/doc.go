// Package judge is the boundary to the external build/judge engine.
//
// rstfy never compiles or runs solutions itself. It asks an Engine to clean
// stale artifacts and to evaluate a problem, and receives one
// EvaluationResult per solution. CommandEngine implements Engine by running
// the commands the project declares in its judge block, for example:
//
//	judge:
//	  clean: [rime, clean]
//	  test: [rime-results, "{problem}"]
//
// The test command must print a YAML or JSON list on stdout:
//
//	[{"solution": "main", "expected": true}, {"solution": "wrong", "expected": true}]
package judge
