// Package result models the outcome of one serialization step.
//
// A Status pairs the Task that ran (what was attempted) with an Outcome (how
// it ended). Statuses from sibling steps are merged with Combine, which is
// monotone in severity:
//
//	success < defaults_used < partial_defaults < unsupported < unknown < catastrophic, halted
//
// Failures never unwind the call stack. Each failure point reports once
// through a ReportFunc and then flows upward as a combined Status.
package result
