package xferstat

import (
	"fmt"
)

type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("log %s is not accessible: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// FormatError reports the first line of a log that could not be parsed. Line is 1-based.
type FormatError struct {
	Path   string
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
	}

	return fmt.Sprintf("%s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Text)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
