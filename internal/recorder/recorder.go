package recorder

import "fmt"

// WriteError reports a report block that could not be persisted.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Recorder persists formatted reports.
type Recorder interface {
	Append(text string) error
	Close() error
}
