package result

// ReportFunc receives one diagnostic: a message, the status of the failing
// step and the fully-qualified document path. The returned status replaces
// the reported one, so a callback may escalate (for example to Halted) or
// soften an outcome.
type ReportFunc func(message string, status Status, path string) Status

// Passthrough is a ReportFunc that returns the status unchanged.
func Passthrough(_ string, status Status, _ string) Status {
	return status
}

// Chain calls each non-nil fn in order, feeding the status returned by one
// into the next.
func Chain(fns ...ReportFunc) ReportFunc {
	return func(message string, status Status, path string) Status {
		for _, fn := range fns {
			if fn != nil {
				status = fn(message, status, path)
			}
		}
		return status
	}
}

// HaltOn returns a ReportFunc that turns every reported status with an
// outcome at or above threshold into Halted.
func HaltOn(threshold Outcome) ReportFunc {
	return func(_ string, status Status, _ string) Status {
		if status.Outcome >= threshold {
			status.Outcome = Halted
		}
		return status
	}
}
