// Package errors provides structured diagnostics for the document serializer.
//
// A diagnostic is categorized by Task (the phase that was running) and
// Outcome (how it ended), both taken from package result. The Error type
// carries the document path the problem was found at, the Go type involved
// and an optional cause chain.
//
// Use the Builder for structured construction:
//
//	err := errors.New(result.TaskRetrieveInfo, result.Unknown).
//		Path(".items[2].shape").
//		TypeName("geo.Circle").
//		Detail("no class data registered").
//		Build()
//
// A Collector records one Error per reported status and can be installed as
// the reporting callback of a serialization pass:
//
//	var c errors.Collector
//	settings.Reporting = c.Report
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
