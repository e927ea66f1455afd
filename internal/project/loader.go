package project

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/nao1215/rstfy/internal/model"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// DefaultTestsetDir is the testset directory used when a problem declares none.
const DefaultTestsetDir = "tests"

// reportBlock is the rstfy block of PROJECT.yaml, the report configuration
// declaration. Its absence is detected at generation time.
type reportBlock struct {
	Path  string `yaml:"path"`
	Title string `yaml:"title"`
}

// projectFile is the on-disk layout of PROJECT.yaml.
type projectFile struct {
	Name     string            `yaml:"name,omitempty"`
	Report   *reportBlock      `yaml:"rstfy,omitempty"`
	Judge    model.JudgeConfig `yaml:"judge,omitempty"`
	Problems []string          `yaml:"problems,omitempty"`
}

// testsetBlock is the testset block of PROBLEM.yaml.
type testsetBlock struct {
	Dir        string   `yaml:"dir,omitempty"`
	Validators []string `yaml:"validators,omitempty"`
}

// problemFile is the on-disk layout of PROBLEM.yaml without extensions.
type problemFile struct {
	Title     string            `yaml:"title,omitempty"`
	Solutions []*model.Solution `yaml:"solutions,omitempty"`
	Testset   testsetBlock      `yaml:"testset,omitempty"`
}

// Loader reads projects from disk.
type Loader struct {
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets a custom logger for the loader.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Load reads the project rooted at dir.
// Problems are returned in the order of the problems list; when the list is
// omitted every subdirectory holding PROBLEM.yaml is loaded in name order.
// Decoding failures are returned as *model.ConfigurationError.
func (l *Loader) Load(dir string) (*model.Project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	var pf projectFile
	if err := decodeFile(filepath.Join(root, ProjectFile), projectSchema, &pf); err != nil {
		return nil, err
	}

	proj := &model.Project{
		Name:  model.NormalizeText(pf.Name),
		Dir:   root,
		Judge: pf.Judge,
	}
	if proj.Name == "" {
		proj.Name = filepath.Base(root)
	}

	if pf.Report != nil {
		report, err := newReportConfig(root, pf.Report)
		if err != nil {
			return nil, &model.ConfigurationError{Target: filepath.Join(root, ProjectFile), Err: err}
		}
		proj.Report = report
	}

	names := pf.Problems
	if len(names) == 0 {
		names, err = discoverProblems(root)
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, &model.ConfigurationError{
				Target: filepath.Join(root, ProjectFile),
				Err:    fmt.Errorf("%w: %s", ErrDuplicateProblem, name),
			}
		}
		seen[name] = true

		problem, err := l.LoadProblem(filepath.Join(root, name))
		if err != nil {
			return nil, err
		}
		proj.Problems = append(proj.Problems, problem)
	}

	l.logger.Debug("project loaded",
		"project", proj.Name,
		"dir", proj.Dir,
		"problems", len(proj.Problems),
		"report", proj.HasReportConfig(),
	)

	return proj, nil
}

// LoadProblem reads the problem in dir and attaches its extension.
func (l *Loader) LoadProblem(dir string) (*model.Problem, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(abs, ProblemFile)

	var node yaml.Node
	if err := decodeFile(path, problemSchema, &node); err != nil {
		return nil, err
	}

	var pf problemFile
	var ext model.ProblemExtension
	if !node.IsZero() {
		if err := node.Decode(&pf); err != nil {
			return nil, &model.ConfigurationError{Target: path, Err: err}
		}
		if err := node.Decode(&ext); err != nil {
			return nil, &model.ConfigurationError{Target: path, Err: err}
		}
	}

	seen := make(map[string]bool, len(pf.Solutions))
	for _, s := range pf.Solutions {
		if s == nil || s.Name == "" {
			return nil, &model.ConfigurationError{Target: path, Err: ErrUnnamedSolution}
		}
		if seen[s.Name] {
			return nil, &model.ConfigurationError{
				Target: path,
				Err:    fmt.Errorf("%w: %s", ErrDuplicateSolution, s.Name),
			}
		}
		seen[s.Name] = true
	}

	testsetDir := pf.Testset.Dir
	if testsetDir == "" {
		testsetDir = DefaultTestsetDir
	}
	if !filepath.IsAbs(testsetDir) {
		testsetDir = filepath.Join(abs, testsetDir)
	}

	problem := &model.Problem{
		Name:      filepath.Base(abs),
		Dir:       abs,
		Title:     model.NormalizeText(pf.Title),
		Solutions: pf.Solutions,
		Testset: &model.Testset{
			Dir:        testsetDir,
			Validators: pf.Testset.Validators,
		},
	}
	if len(ext.Assignees) > 0 {
		problem.Extension = &ext
	}

	return problem, nil
}

// newReportConfig validates the rstfy block and resolves its path.
func newReportConfig(root string, b *reportBlock) (*model.ReportConfig, error) {
	if b.Path == "" {
		return nil, ErrReportPathMissing
	}
	title := model.NormalizeText(b.Title)
	if title == "" {
		return nil, ErrReportTitleMissing
	}

	path := b.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return &model.ReportConfig{Path: path, Title: title}, nil
}

// discoverProblems returns the names of subdirectories holding PROBLEM.yaml.
func discoverProblems(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && fileExists(filepath.Join(root, e.Name(), ProblemFile)) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// decodeFile reads a YAML definition file, validates it against schema and
// decodes it into out.
func decodeFile(path string, schema *jsonschema.Schema, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // Definition paths come from the project layout
	if err != nil {
		return &model.ConfigurationError{Target: path, Err: err}
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &model.ConfigurationError{Target: path, Err: err}
	}
	if err := validateDocument(schema, doc); err != nil {
		return &model.ConfigurationError{Target: path, Err: err}
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return &model.ConfigurationError{Target: path, Err: err}
	}
	return nil
}
