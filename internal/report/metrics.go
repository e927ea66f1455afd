package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nao1215/rstfy/internal/model"
)

// Validator presence flags.
const (
	ValidatorsPresent = "OK"
	ValidatorsAbsent  = "NO"
)

// Tester evaluates a problem. judge.Engine satisfies it.
type Tester interface {
	Test(ctx context.Context, problem *model.Problem) ([]model.EvaluationResult, error)
}

// Warner receives non-fatal warnings. log.Console satisfies it.
type Warner interface {
	PrintWarning(msg string)
}

// Summary holds the counts derived from one problem's evaluation results.
type Summary struct {
	// Solutions is the number of evaluated solutions.
	Solutions int

	// Corrects is the number of results whose solution is a reference solution.
	Corrects int

	// Incorrects is the number of results whose solution is expected to fail.
	Incorrects int

	// Accepted is the number of correct-solution results the judge accepted.
	Accepted int
}

// Summarize partitions results into correct-solution results and the rest.
//
// Every result must reference a solution; a result without one has no
// correct/incorrect classification and ErrUnclassifiedResult is returned,
// so Corrects+Incorrects always equals Solutions.
func Summarize(results []model.EvaluationResult) (Summary, error) {
	s := Summary{Solutions: len(results)}
	for i, r := range results {
		if r.Solution == nil {
			return Summary{}, fmt.Errorf("%w: result %d", model.ErrUnclassifiedResult, i)
		}
		if !r.Solution.IsCorrect() {
			s.Incorrects++
			continue
		}
		s.Corrects++
		if r.Expected {
			s.Accepted++
		}
	}
	return s, nil
}

// Aggregator converts a problem's evaluation results into a MetricRow.
type Aggregator struct {
	tester Tester
	warner Warner
}

// NewAggregator creates an Aggregator that evaluates problems with tester
// and reports missing fields to warner.
func NewAggregator(tester Tester, warner Warner) *Aggregator {
	return &Aggregator{tester: tester, warner: warner}
}

// Aggregate evaluates the problem and returns its table row.
//
// A problem without assignees produces one warning and an empty field.
// A judge failure is returned unmodified.
func (a *Aggregator) Aggregate(ctx context.Context, problem *model.Problem) (model.MetricRow, error) {
	title := problem.DisplayTitle()
	if !problem.HasAssignees() && a.warner != nil {
		a.warner.PrintWarning(fmt.Sprintf("assignees was not set in %s PROBLEM", title))
	}

	results, err := a.tester.Test(ctx, problem)
	if err != nil {
		return model.MetricRow{}, err
	}

	summary, err := Summarize(results)
	if err != nil {
		return model.MetricRow{}, fmt.Errorf("problem %s: %w", problem.Name, err)
	}

	cases, err := problem.Testset.ListTestCases()
	if err != nil {
		return model.MetricRow{}, fmt.Errorf("problem %s: listing test cases: %w", problem.Name, err)
	}

	validators := ValidatorsAbsent
	if problem.Testset.HasValidators() {
		validators = ValidatorsPresent
	}

	return model.MetricRow{
		Title:      title,
		Assignees:  problem.AssigneesText(),
		Corrects:   strconv.Itoa(summary.Corrects),
		Incorrects: strconv.Itoa(summary.Incorrects),
		Inputs:     strconv.Itoa(len(cases)),
		Outputs:    fmt.Sprintf("%d/%d", summary.Accepted, summary.Corrects),
		Validators: validators,
	}, nil
}
