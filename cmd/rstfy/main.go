// Package main provides the entry point for the rstfy CLI.
//
// rstfy generates a reStructuredText summary of a problem-set project:
// one table row per problem with its assignees, solution counts, test
// inputs and validator status.
//
// Usage:
//
//	rstfy report
//	rstfy report -C path/to/project -j 4
//
// See --help for all available options.
package main

// main is the entry point for rstfy.
func main() {
	Execute()
}
