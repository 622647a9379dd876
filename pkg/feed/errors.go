package feed

import "fmt"

// NetworkError covers connection, DNS and timeout failures, including a
// canceled context. The request never produced a usable response.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("fetch %s: %v", e.URL, e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a response with a status outside 2xx and 304
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// ParseError is a malformed feed payload
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse feed: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }
