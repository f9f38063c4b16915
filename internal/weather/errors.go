package weather

import "fmt"

// NotFoundError means a place name resolved to no location. StatusCode is
// set when geocoding was rejected rather than answered with zero matches.
type NotFoundError struct {
	Query      string
	StatusCode int
}

func (e *NotFoundError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("place %q not found: geocoding returned status %d", e.Query, e.StatusCode)
	}
	return fmt.Sprintf("place %q not found", e.Query)
}

// Rejected reports whether geocoding failed with a non-success status
func (e *NotFoundError) Rejected() bool {
	return e.StatusCode != 0
}

// UpstreamError means a weather endpoint failed. StatusCode is zero when the
// request never produced a response.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s endpoint returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s endpoint failed: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Geolocation failure reasons reported by the browser
const (
	ReasonDenied      = "denied"
	ReasonUnsupported = "unsupported"
)

// PermissionError means the client could not provide its position
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("geolocation unavailable: %s", e.Reason)
}

// Unsupported reports whether the runtime has no geolocation at all,
// as opposed to the user denying it
func (e *PermissionError) Unsupported() bool {
	return e.Reason == ReasonUnsupported
}
