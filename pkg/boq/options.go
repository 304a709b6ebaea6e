// Package boq summarises bill-of-quantities survey sheets into per-station
// defect reports.
package boq

import "github.com/ukaji3/boq-go/pkg/boq/parser"

// Options configures reading and aggregation.
type Options struct {
	// Aggregate holds the column layout and label set of the survey sheet.
	Aggregate parser.AggregateParams
	// Password opens encrypted workbooks. Empty for plain ones.
	Password string
}

// DefaultOptions returns default options for the standard survey layout.
func DefaultOptions() Options {
	return Options{
		Aggregate: parser.DefaultAggregateParams(),
	}
}
