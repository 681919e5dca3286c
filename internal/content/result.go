package content

import "fmt"

// Outcome classifies a single source attempt.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeEmpty
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result is what a source returns for one fetch. Exactly one of the
// following holds: Err is set (failed), Records is empty (empty), or
// Records has at least one entry (found).
type Result struct {
	Records []Record
	Err     error
}

// Found wraps one or more records.
func Found(recs ...Record) Result { return Result{Records: recs} }

// Empty reports that the source answered but had no data.
func Empty() Result { return Result{} }

// Failed reports a source failure.
func Failed(err error) Result { return Result{Err: err} }

// Outcome classifies the result.
func (r Result) Outcome() Outcome {
	switch {
	case r.Err != nil:
		return OutcomeFailed
	case len(r.Records) == 0:
		return OutcomeEmpty
	default:
		return OutcomeFound
	}
}

// First returns the first record, or nil.
func (r Result) First() *Record {
	if len(r.Records) == 0 {
		return nil
	}
	return &r.Records[0]
}
