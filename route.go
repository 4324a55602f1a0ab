package ddog

// Conventional request headers for the monitoring API. The builder passes
// caller-supplied headers through verbatim and never requires any of these.
const (
	HeaderAccept         = "Accept"
	HeaderContentType    = "Content-Type"
	HeaderAPIKey         = "DD-API-KEY"
	HeaderApplicationKey = "DD-APPLICATION-KEY"
	HeaderRequestID      = "X-Request-ID"
)

// Header is a single request header pair.
type Header struct {
	Name  string
	Value string
}

// Route describes one HTTP endpoint call against the monitoring API.
//
// Endpoint materializes the HTTP method, the request path relative to the
// API base URL (including any query string) and the serialized request body.
// The body is nil for requests that carry none. Route values are short-lived:
// they are handed to a Client for a single execution and discarded.
type Route interface {
	Endpoint() (method, path string, body []byte, err error)
}
