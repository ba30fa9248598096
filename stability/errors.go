package stability

import "fmt"

// UpstreamError is a non-success HTTP status from the provider, kept
// separate from decode failures so callers can tell them apart.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("stability api error %d: %s", e.Status, e.Body)
}

// DecodeError marks a malformed base64 payload in one artifact entry.
type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode base64 image at artifact %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
