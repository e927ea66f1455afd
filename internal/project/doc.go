// Package project loads problem-set definitions from disk.
//
// A project is a directory holding PROJECT.yaml; each problem is a
// subdirectory holding PROBLEM.yaml. The loader decodes both files,
// normalizes all external text, attaches the optional rstfy extensions
// (report configuration on the project, assignees on problems) and returns
// a *model.Project with problems in declaration order.
//
// Target resolution mirrors how the build framework picks what a command
// applies to: starting from a directory and walking up, the nearest
// PROBLEM.yaml or PROJECT.yaml decides whether the target is a problem or
// the whole project.
package project
