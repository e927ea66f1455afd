package model

// ReportConfig is the report configuration declared by a project.
type ReportConfig struct {
	// Path is the output file path, resolved against the project directory.
	Path string

	// Title is the report title shown in the banner, already normalized.
	Title string
}

// JudgeConfig describes how the external judge engine is invoked.
// Each command is an argv list; the placeholders {project}, {problem}
// and {dir} are substituted before execution.
type JudgeConfig struct {
	// Clean is the command that removes stale build artifacts.
	// An empty command means there is nothing to clean.
	Clean []string `yaml:"clean,omitempty"`

	// Test is the command that evaluates one problem and prints its results.
	Test []string `yaml:"test,omitempty"`
}

// IsZero reports whether no judge command is configured.
func (c JudgeConfig) IsZero() bool {
	return len(c.Clean) == 0 && len(c.Test) == 0
}

// Project is a problem set.
type Project struct {
	// Name is the project name.
	Name string

	// Dir is the absolute path of the project root.
	Dir string

	// Problems lists the problems in declaration order.
	Problems []*Problem

	// Report is the report configuration; nil when the project declares none.
	Report *ReportConfig

	// Judge configures the external judge engine.
	Judge JudgeConfig
}

// HasReportConfig reports whether the project declared a report configuration.
func (p *Project) HasReportConfig() bool {
	return p.Report != nil
}
