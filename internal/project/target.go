package project

import (
	"os"
	"path/filepath"
)

// Definition file names.
const (
	// ProjectFile marks the root directory of a project.
	ProjectFile = "PROJECT.yaml"

	// ProblemFile marks a problem directory.
	ProblemFile = "PROBLEM.yaml"
)

// TargetKind is the kind of entity a command is invoked against.
type TargetKind int

const (
	// TargetProject is a whole project.
	TargetProject TargetKind = iota

	// TargetProblem is a single problem inside a project.
	TargetProblem
)

// String returns a human-readable name of the target kind.
func (k TargetKind) String() string {
	switch k {
	case TargetProject:
		return "project"
	case TargetProblem:
		return "problem"
	default:
		return "unknown"
	}
}

// Target is the resolved entity a command applies to.
type Target struct {
	// Kind is the kind of entity.
	Kind TargetKind

	// Dir is the absolute directory holding the entity's definition file.
	Dir string
}

// ResolveTarget walks up from dir and returns the nearest problem or project.
// A directory holding PROBLEM.yaml is a problem even when it lies inside a
// project. ErrNoTarget is returned when the filesystem root is reached.
func ResolveTarget(dir string) (Target, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Target{}, err
	}

	for {
		if fileExists(filepath.Join(abs, ProblemFile)) {
			return Target{Kind: TargetProblem, Dir: abs}, nil
		}
		if fileExists(filepath.Join(abs, ProjectFile)) {
			return Target{Kind: TargetProject, Dir: abs}, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return Target{}, ErrNoTarget
		}
		abs = parent
	}
}

// fileExists reports whether path names a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
