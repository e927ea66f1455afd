package project

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrSchemaViolation is returned when a definition file has the wrong shape,
// e.g. a judge command written as a string instead of a list.
var ErrSchemaViolation = errors.New("definition does not match its schema")

//go:embed schemas/project.schema.json
var projectSchemaJSON string

//go:embed schemas/problem.schema.json
var problemSchemaJSON string

// schemaPrinter formats validation error kinds.
var schemaPrinter = message.NewPrinter(language.English)

var (
	projectSchema = mustCompileSchema(projectSchemaJSON, "project.schema.json")
	problemSchema = mustCompileSchema(problemSchemaJSON, "problem.schema.json")
)

func mustCompileSchema(raw, name string) *jsonschema.Schema {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// validateDocument checks a YAML-decoded document against schema.
// A nil document (empty file) is accepted. Violations are joined into one
// error wrapping ErrSchemaViolation.
func validateDocument(schema *jsonschema.Schema, doc any) error {
	if doc == nil {
		return nil
	}

	err := schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	var msgs []string
	collectViolations(ve, &msgs)
	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(msgs, "; "))
}

// collectViolations flattens the leaf causes of ve into "/location: reason".
func collectViolations(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		*msgs = append(*msgs, fmt.Sprintf("/%s: %s",
			strings.Join(ve.InstanceLocation, "/"),
			ve.ErrorKind.LocalizedString(schemaPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectViolations(c, msgs)
	}
}
