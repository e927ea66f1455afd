// Package report assembles the rstfy coverage report.
//
// The package has three parts:
//   - Aggregator turns one problem's evaluation results into a MetricRow.
//   - RenderTable lays MetricRows out as a reStructuredText grid table,
//     measuring text with DisplayWidth so double-width glyphs line up.
//   - Generator cleans the project, fans out one aggregation per problem,
//     joins the rows in declaration order and composes the final document
//     (title banner, generator metadata and table).
//
// WriteFile persists a finished document as UTF-8 without ever leaving a
// partially written file behind.
package report
