// Package analysis runs the complete CTMC pipeline on a model document:
//
//	model.Validate → validate (Q, p(0)) → graph.Build → stationary.Solve ∥ transient.Solve
//
// The two solvers run concurrently under errgroup.WithContext; the first
// failure cancels the other and no partial report is returned. Each run gets a
// request ID that appears in every log line and in the report.
package analysis
