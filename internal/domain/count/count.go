// Package count models the outcome of a single document count lookup.
package count

import "errors"

// Outcome classifies a lookup.
type Outcome string

const (
	// OutcomeFound means the source produced a count.
	OutcomeFound Outcome = "found"
	// OutcomeNotFound means the source has no value; not an error.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeFailed means the source errored.
	OutcomeFailed Outcome = "error"
)

// Result is the outcome of one lookup: Found(n), NotFound or Failed(err).
type Result struct {
	outcome Outcome
	value   int64
	err     error
}

// Found creates a successful result. Negative values are rejected as failures.
func Found(n int64) Result {
	if n < 0 {
		return Failed(errors.New("negative document count"))
	}
	return Result{outcome: OutcomeFound, value: n}
}

// NotFound creates an empty result. reason may be nil; when set it explains
// why the source had nothing (missing file, unset path).
func NotFound(reason error) Result {
	return Result{outcome: OutcomeNotFound, err: reason}
}

// Failed creates an error result.
func Failed(err error) Result {
	if err == nil {
		err = errors.New("unknown lookup failure")
	}
	return Result{outcome: OutcomeFailed, err: err}
}

// Outcome returns the lookup classification.
func (r Result) Outcome() Outcome { return r.outcome }

// Value returns the count and whether it was found.
func (r Result) Value() (int64, bool) {
	return r.value, r.outcome == OutcomeFound
}

// Err returns the failure, or the not-found reason if one was given.
func (r Result) Err() error { return r.err }
