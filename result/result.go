package result

import (
	"strconv"
	"strings"
)

// Task identifies the phase a status was produced in.
type Task uint8

const (
	TaskRetrieveInfo  Task = iota // class metadata lookup
	TaskCreateDefault             // default instance construction
	TaskWriteTypeID               // type tag emission
	TaskWriteValue                // value emission
)

var taskNames = [...]string{
	TaskRetrieveInfo:  "retrieve_info",
	TaskCreateDefault: "create_default",
	TaskWriteTypeID:   "write_type_id",
	TaskWriteValue:    "write_value",
}

func (t Task) String() string {
	if int(t) < len(taskNames) {
		return taskNames[t]
	}
	return "task(" + strconv.Itoa(int(t)) + ")"
}

// Outcome describes how a task ended. Values are ordered by severity.
type Outcome uint8

const (
	Success         Outcome = iota
	DefaultsUsed            // value equals its default and was not written
	PartialDefaults         // some members were written, some were defaulted
	Unsupported
	Unknown
	Catastrophic
	Halted
)

var outcomeNames = [...]string{
	Success:         "success",
	DefaultsUsed:    "defaults_used",
	PartialDefaults: "partial_defaults",
	Unsupported:     "unsupported",
	Unknown:         "unknown",
	Catastrophic:    "catastrophic",
	Halted:          "halted",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "outcome(" + strconv.Itoa(int(o)) + ")"
}

// Status is the (task, outcome) pair returned by every serialization step.
type Status struct {
	Task    Task
	Outcome Outcome
}

// New returns a status for the given task and outcome.
func New(task Task, outcome Outcome) Status {
	return Status{Task: task, Outcome: outcome}
}

// IsFatal reports whether the status stops any further use of the value.
func (s Status) IsFatal() bool {
	return s.Outcome >= Catastrophic
}

// Failed reports whether the status describes an error, fatal or not.
func (s Status) Failed() bool {
	return s.Outcome >= Unsupported
}

// IsDefault reports whether the value equals its default and may be elided.
func (s Status) IsDefault() bool {
	return s.Outcome == DefaultsUsed
}

// Combine merges other into s. See Combine.
func (s Status) Combine(other Status) Status {
	return Combine(s, other)
}

func (s Status) String() string {
	var b strings.Builder
	b.WriteString(s.Task.String())
	b.WriteString(": ")
	b.WriteString(s.Outcome.String())
	return b.String()
}

// Combine merges two statuses into one describing both.
//
// A fatal status dominates and the first fatal one wins. A success combined
// with a defaulted status yields PartialDefaults. Otherwise the more severe
// outcome wins and, on equal severity, a keeps its task.
func Combine(a, b Status) Status {
	switch {
	case a.IsFatal():
		return a
	case b.IsFatal():
		return b
	}

	if (a.Outcome == Success && b.Outcome == DefaultsUsed) || (a.Outcome == DefaultsUsed && b.Outcome == Success) {
		return Status{Task: a.Task, Outcome: PartialDefaults}
	}

	if b.Outcome > a.Outcome {
		return b
	}
	return a
}

// Accumulator folds a sequence of statuses with Combine.
// The zero value is empty; folding starts from the first added status.
type Accumulator struct {
	status Status
	set    bool
}

// Add folds s into the accumulator and returns the running result.
func (a *Accumulator) Add(s Status) Status {
	if !a.set {
		a.status = s
		a.set = true
		return s
	}
	a.status = Combine(a.status, s)
	return a.status
}

// Empty reports whether nothing was added yet.
func (a *Accumulator) Empty() bool {
	return !a.set
}

// Result returns the folded status, or empty when nothing was added.
func (a *Accumulator) Result(empty Status) Status {
	if !a.set {
		return empty
	}
	return a.status
}
