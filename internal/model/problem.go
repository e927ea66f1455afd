package model

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultProblemTitle is displayed for problems that declare no title.
const DefaultProblemTitle = "No Title"

// TestCaseInputExt is the file extension that marks a test case input.
const TestCaseInputExt = ".in"

// Solution is a single submitted program of a problem.
type Solution struct {
	// Name identifies the solution inside its problem.
	Name string `yaml:"name"`

	// Correct marks a reference solution that is intended to pass every
	// test case. Solutions without the flag are expected to be rejected.
	Correct bool `yaml:"correct,omitempty"`
}

// IsCorrect reports whether the solution is a reference (correct) solution.
func (s *Solution) IsCorrect() bool {
	return s.Correct
}

// TestCase is one input file of a testset.
type TestCase struct {
	// Name is the file name without the input extension.
	Name string

	// InputPath is the absolute path of the input file.
	InputPath string
}

// Testset is the collection of test cases and validators of a problem.
type Testset struct {
	// Dir is the directory that holds the test case inputs.
	Dir string `yaml:"-"`

	// Validators lists the validator programs that check input well-formedness.
	Validators []string `yaml:"validators,omitempty"`
}

// ListTestCases returns the test cases found in the testset directory,
// sorted by file name. A missing directory yields no test cases.
func (t *Testset) ListTestCases() ([]TestCase, error) {
	if t == nil || t.Dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(t.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	cases := make([]TestCase, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != TestCaseInputExt {
			continue
		}
		cases = append(cases, TestCase{
			Name:      strings.TrimSuffix(e.Name(), TestCaseInputExt),
			InputPath: filepath.Join(t.Dir, e.Name()),
		})
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})
	return cases, nil
}

// HasValidators reports whether at least one validator is declared.
func (t *Testset) HasValidators() bool {
	return t != nil && len(t.Validators) > 0
}

// Assignees is the list of people responsible for a problem.
// In YAML it may be written either as a single string or as a sequence.
type Assignees []string

// UnmarshalYAML accepts both `assignees: alice` and `assignees: [alice, bob]`.
func (a *Assignees) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		if s == "" {
			*a = nil
			return nil
		}
		*a = Assignees{NormalizeText(s)}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		out := make(Assignees, 0, len(list))
		for _, s := range list {
			out = append(out, NormalizeText(s))
		}
		*a = out
		return nil
	default:
		return &yaml.TypeError{Errors: []string{"assignees must be a string or a list of strings"}}
	}
}

// String joins the assignees with commas.
func (a Assignees) String() string {
	return strings.Join(a, ",")
}

// ProblemExtension holds the fields rstfy adds to a problem declaration.
// It is attached to a Problem at load time; a nil extension means the
// problem declared none of them.
type ProblemExtension struct {
	Assignees Assignees `yaml:"assignees,omitempty"`
}

// Problem is a unit of judging configuration.
type Problem struct {
	// Name is the problem's directory name and its identifier in the project.
	Name string

	// Dir is the absolute path of the problem directory.
	Dir string

	// Title is the human-readable title, already normalized.
	Title string

	// Solutions lists the problem's solutions in declaration order.
	Solutions []*Solution

	// Testset holds the test cases and validators.
	Testset *Testset

	// Extension carries the optional rstfy-specific fields.
	Extension *ProblemExtension
}

// DisplayTitle returns the title, or DefaultProblemTitle when it is empty.
func (p *Problem) DisplayTitle() string {
	if p.Title == "" {
		return DefaultProblemTitle
	}
	return p.Title
}

// HasAssignees reports whether assignees were declared for the problem.
func (p *Problem) HasAssignees() bool {
	return p.Extension != nil && len(p.Extension.Assignees) > 0
}

// AssigneesText returns the comma-joined assignees or an empty string.
func (p *Problem) AssigneesText() string {
	if !p.HasAssignees() {
		return ""
	}
	return p.Extension.Assignees.String()
}

// Solution returns the solution with the given name, or nil.
func (p *Problem) Solution(name string) *Solution {
	for _, s := range p.Solutions {
		if s.Name == name {
			return s
		}
	}
	return nil
}
