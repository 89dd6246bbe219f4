package flights

import "fmt"

// UpstreamError wraps a failed call to the flight search upstream.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("flight upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// SelectionError reports a display index outside the retained batch.
type SelectionError struct {
	Index int
	Valid int // size of the retained batch
}

func (e *SelectionError) Error() string {
	if e.Valid == 0 {
		return "no flight options available, search for flights first"
	}
	return fmt.Sprintf("invalid option %d: select a number between 1 and %d", e.Index, e.Valid)
}
