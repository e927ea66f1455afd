package project

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestResolveTarget(t *testing.T) {
	t.Parallel()

	root := newSampleProject(t)

	tests := []struct {
		name     string
		dir      string
		wantKind TargetKind
		wantDir  string
	}{
		{name: "project root", dir: root, wantKind: TargetProject, wantDir: root},
		{name: "project subdirectory", dir: filepath.Join(root, "docs"), wantKind: TargetProject, wantDir: root},
		{name: "problem directory", dir: filepath.Join(root, "aplusb"), wantKind: TargetProblem, wantDir: filepath.Join(root, "aplusb")},
		{name: "inside problem", dir: filepath.Join(root, "aplusb", "tests"), wantKind: TargetProblem, wantDir: filepath.Join(root, "aplusb")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target, err := ResolveTarget(tt.dir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if target.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, target.Kind)
			}
			if target.Dir != tt.wantDir {
				t.Errorf("expected dir %q, got %q", tt.wantDir, target.Dir)
			}
		})
	}

	t.Run("no target found", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveTarget(t.TempDir())
		if !errors.Is(err, ErrNoTarget) {
			t.Errorf("expected ErrNoTarget, got %v", err)
		}
	})
}

func TestTargetKindString(t *testing.T) {
	t.Parallel()

	tests := map[TargetKind]string{
		TargetProject:  "project",
		TargetProblem:  "problem",
		TargetKind(42): "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("TargetKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
