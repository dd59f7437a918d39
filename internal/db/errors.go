package db

import "errors"

// Sentinel errors for database operations.
var (
	ErrKeyNotFound = errors.New("db: key not found")
	ErrNoValue     = errors.New("db: query returned no value")
)

// Op constants name the failing command for error context.
const (
	OpPing  = "PING"
	OpGet   = "GET"
	OpSet   = "SET"
	OpQuery = "QUERY"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
