package domain

import "errors"

var (
	// ErrNotFound signals a missing value (no count, no file, no key).
	ErrNotFound = errors.New("not found")
	// ErrInternal signals a failure that must surface as a generic server error.
	ErrInternal = errors.New("internal error")
	// ErrTaxonomyUnavailable signals that no taxonomy catalog is loaded.
	ErrTaxonomyUnavailable = errors.New("taxonomy unavailable")
	// ErrInvalidTaxonomy signals a catalog that breaks its reference rules.
	ErrInvalidTaxonomy = errors.New("invalid taxonomy")
)
