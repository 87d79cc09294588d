package source

import "fmt"

// FetchError reports a failed HTTP exchange. Transport failures carry a
// wrapped cause, rejected responses carry the status code.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a payload that fetched fine but could not be decoded.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.URL, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// RenderTimeoutError reports a dynamic page that never settled within
// its navigation timeout.
type RenderTimeoutError struct {
	URL string
	Err error
}

func (e *RenderTimeoutError) Error() string {
	return fmt.Sprintf("render %s: timed out: %v", e.URL, e.Err)
}

func (e *RenderTimeoutError) Unwrap() error { return e.Err }
