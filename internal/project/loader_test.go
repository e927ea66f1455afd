package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/rstfy/internal/model"
)

// writeFile creates path with content, making parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// newSampleProject lays out a two-problem project and returns its root.
func newSampleProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ProjectFile), `name: sample-contest
rstfy:
  path: docs/report.rst
  title: Sample Contest
judge:
  clean: [rime, clean]
  test: [rime-results, "{problem}"]
problems:
  - hello
  - aplusb
`)
	writeFile(t, filepath.Join(root, "aplusb", ProblemFile), `title: A + B
assignees: [alice, bob]
solutions:
  - name: main
    correct: true
  - name: wrong
testset:
  validators: [validator.cc]
`)
	writeFile(t, filepath.Join(root, "aplusb", "tests", "1.in"), "1 2\n")
	writeFile(t, filepath.Join(root, "hello", ProblemFile), `title: Hello
solutions:
  - name: main
    correct: true
testset:
  dir: cases
`)
	return root
}

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads project in declaration order", func(t *testing.T) {
		t.Parallel()

		root := newSampleProject(t)
		proj, err := NewLoader().Load(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if proj.Name != "sample-contest" {
			t.Errorf("expected name sample-contest, got %q", proj.Name)
		}
		var names []string
		for _, p := range proj.Problems {
			names = append(names, p.Name)
		}
		if diff := cmp.Diff([]string{"hello", "aplusb"}, names); diff != "" {
			t.Errorf("problem order mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"rime-results", "{problem}"}, proj.Judge.Test); diff != "" {
			t.Errorf("judge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("resolves report configuration", func(t *testing.T) {
		t.Parallel()

		root := newSampleProject(t)
		proj, err := NewLoader().Load(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := &model.ReportConfig{
			Path:  filepath.Join(root, "docs", "report.rst"),
			Title: "Sample Contest",
		}
		if diff := cmp.Diff(want, proj.Report); diff != "" {
			t.Errorf("report config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("attaches problem extension", func(t *testing.T) {
		t.Parallel()

		root := newSampleProject(t)
		proj, err := NewLoader().Load(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		hello, aplusb := proj.Problems[0], proj.Problems[1]
		if hello.Extension != nil {
			t.Errorf("expected no extension for hello, got %+v", hello.Extension)
		}
		if got := aplusb.AssigneesText(); got != "alice,bob" {
			t.Errorf("expected alice,bob, got %q", got)
		}
		if !aplusb.Testset.HasValidators() {
			t.Error("expected aplusb to have validators")
		}
		if aplusb.Testset.Dir != filepath.Join(root, "aplusb", DefaultTestsetDir) {
			t.Errorf("unexpected testset dir %q", aplusb.Testset.Dir)
		}
		if hello.Testset.Dir != filepath.Join(root, "hello", "cases") {
			t.Errorf("unexpected testset dir %q", hello.Testset.Dir)
		}
		if s := aplusb.Solution("main"); s == nil || !s.IsCorrect() {
			t.Error("expected main to be a correct solution")
		}
	})

	t.Run("missing rstfy block leaves report nil", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, ProjectFile), "name: bare\n")
		proj, err := NewLoader().Load(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if proj.HasReportConfig() {
			t.Error("expected no report config")
		}
	})

	t.Run("discovers problems when list omitted", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, ProjectFile), "")
		writeFile(t, filepath.Join(root, "b", ProblemFile), "title: B\n")
		writeFile(t, filepath.Join(root, "a", ProblemFile), "")
		writeFile(t, filepath.Join(root, "notes", "README"), "not a problem\n")

		proj, err := NewLoader().Load(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(proj.Problems) != 2 || proj.Problems[0].Name != "a" || proj.Problems[1].Name != "b" {
			t.Fatalf("unexpected problems %+v", proj.Problems)
		}
		if proj.Name != filepath.Base(root) {
			t.Errorf("expected directory name as project name, got %q", proj.Name)
		}
		if proj.Problems[0].DisplayTitle() != model.DefaultProblemTitle {
			t.Errorf("expected default title, got %q", proj.Problems[0].DisplayTitle())
		}
	})
}

func TestLoaderLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		project string
		problem string
		wantErr error
	}{
		{
			name:    "rstfy without path",
			project: "rstfy:\n  title: T\nproblems: [p]\n",
			problem: "title: P\n",
			wantErr: ErrReportPathMissing,
		},
		{
			name:    "rstfy without title",
			project: "rstfy:\n  path: r.rst\nproblems: [p]\n",
			problem: "title: P\n",
			wantErr: ErrReportTitleMissing,
		},
		{
			name:    "duplicate problem",
			project: "problems: [p, p]\n",
			problem: "title: P\n",
			wantErr: ErrDuplicateProblem,
		},
		{
			name:    "duplicate solution",
			project: "problems: [p]\n",
			problem: "solutions:\n  - name: main\n  - name: main\n",
			wantErr: ErrDuplicateSolution,
		},
		{
			name:    "unnamed solution",
			project: "problems: [p]\n",
			problem: "solutions:\n  - correct: true\n",
			wantErr: ErrUnnamedSolution,
		},
		{
			name:    "missing problem file",
			project: "problems: [absent]\n",
			problem: "title: P\n",
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			writeFile(t, filepath.Join(root, ProjectFile), tt.project)
			writeFile(t, filepath.Join(root, "p", ProblemFile), tt.problem)

			_, err := NewLoader().Load(root)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var cfgErr *model.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigurationError, got %T", err)
			}
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, ProjectFile), "problems: [unterminated\n")

		_, err := NewLoader().Load(root)
		var cfgErr *model.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("expected ConfigurationError, got %v", err)
		}
	})
}
