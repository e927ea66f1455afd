package model

// EvaluationResult is the judge's verdict for one solution.
type EvaluationResult struct {
	// Solution is the evaluated solution.
	Solution *Solution

	// Expected is true when the judge accepted the solution's behaviour,
	// i.e. it passed every test case.
	Expected bool
}

// MetricRow is one row of the report table.
// Every field is already rendered as text.
type MetricRow struct {
	Title      string
	Assignees  string
	Corrects   string
	Incorrects string
	Inputs     string
	Outputs    string
	Validators string
}

// MetricColumns is the number of columns of a MetricRow.
const MetricColumns = 7

// Fields returns the row's fields in column order.
func (r MetricRow) Fields() [MetricColumns]string {
	return [MetricColumns]string{
		r.Title,
		r.Assignees,
		r.Corrects,
		r.Incorrects,
		r.Inputs,
		r.Outputs,
		r.Validators,
	}
}
