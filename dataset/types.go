// Package dataset - sentinel errors for ingestion and generation.
package dataset

import "errors"

var (
	// ErrBadHeader indicates a CSV whose header row does not match the
	// expected schema.
	ErrBadHeader = errors.New("dataset: unexpected csv header")

	// ErrBadRecord indicates a CSV row with a wrong field count or an
	// unparsable field.
	ErrBadRecord = errors.New("dataset: malformed csv record")

	// ErrBadCount indicates a non-positive scenario count.
	ErrBadCount = errors.New("dataset: scenario count must be at least 1")
)
