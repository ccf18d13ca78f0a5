package constants

// Context keys set by middleware
const (
	ContextKeyRequestID = "requestID"
)

// Headers read or written by middleware
const (
	HeaderRequestID = "X-Request-ID"
	HeaderOrigin    = "Origin"
)
