package country

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("country not found")

// NotFoundError reports a lookup miss in one key space.
type NotFoundError struct {
	Input string
	Space Space
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("country: %q not found in %s index", e.Input, e.Space)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(input string, space Space) error {
	return &NotFoundError{Input: input, Space: space}
}

// DuplicateKeyError is returned by NewRegistry when two records share a key
// in an index that requires uniqueness.
type DuplicateKeyError struct {
	Space  Space
	Key    string
	First  string
	Second string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("country: duplicate %s key %q (%s, %s)", e.Space, e.Key, e.First, e.Second)
}

// InvalidRecordError is returned by NewRegistry for a malformed record.
type InvalidRecordError struct {
	Index  int
	Field  string
	Value  string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("country: record %d: invalid %s %q: %s", e.Index, e.Field, e.Value, e.Reason)
}

// DecodeError is returned when a wire value does not resolve to a country.
type DecodeError struct {
	Input string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("country: cannot decode %q: %v", e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
