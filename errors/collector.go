package errors

import (
	stderrors "errors"
	"sync"

	"github.com/wippyai/docwriter/result"
)

// Collector records one Error per reported status. Its Report method
// satisfies result.ReportFunc and returns the status unchanged. Successful
// and defaulted statuses are not recorded.
type Collector struct {
	mu   sync.Mutex
	errs []*Error
}

// Report records a diagnostic.
func (c *Collector) Report(message string, status result.Status, path string) result.Status {
	if !status.Failed() {
		return status
	}
	c.mu.Lock()
	c.errs = append(c.errs, FromReport(message, status, path))
	c.mu.Unlock()
	return status
}

// Errors returns a copy of the recorded diagnostics in report order.
func (c *Collector) Errors() []*Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Error, len(c.errs))
	copy(out, c.errs)
	return out
}

// At returns the diagnostics reported at path.
func (c *Collector) At(path string) []*Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*Error
	for _, e := range c.errs {
		if e.Path == path {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of recorded diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errs)
}

// Err joins all recorded diagnostics, or returns nil when there are none.
func (c *Collector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.errs) == 0 {
		return nil
	}
	errs := make([]error, len(c.errs))
	for i, e := range c.errs {
		errs[i] = e
	}
	return stderrors.Join(errs...)
}

// Reset drops all recorded diagnostics.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.errs = nil
	c.mu.Unlock()
}
