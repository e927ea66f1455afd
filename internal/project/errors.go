package project

import "errors"

// Project loading errors.
var (
	// ErrNoTarget is returned when no PROJECT.yaml or PROBLEM.yaml is found
	// in the directory or any of its parents.
	ErrNoTarget = errors.New("no project or problem found in this directory or its parents")

	// ErrReportPathMissing is returned when the rstfy block has no path.
	ErrReportPathMissing = errors.New("rstfy: path is required")

	// ErrReportTitleMissing is returned when the rstfy block has no title.
	ErrReportTitleMissing = errors.New("rstfy: title is required")

	// ErrDuplicateProblem is returned when a problem is declared twice.
	ErrDuplicateProblem = errors.New("problem declared more than once")

	// ErrDuplicateSolution is returned when a problem declares two solutions
	// with the same name.
	ErrDuplicateSolution = errors.New("solution declared more than once")

	// ErrUnnamedSolution is returned when a solution has no name.
	ErrUnnamedSolution = errors.New("solution has no name")
)
