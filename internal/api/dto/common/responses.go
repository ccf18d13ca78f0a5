package common

// Status strings returned in the "status" field
const (
	StatusOK              = "OK"
	StatusMessageSent     = "Message sent successfully"
	StatusMessageTestMode = "Message received (test mode - email not configured)"
	StatusMissingFields   = "Missing required fields: email and message"
	StatusSendFailed      = "Failed to send message"
	StatusInvalidBody     = "Invalid request body"
	StatusBodyTooLarge    = "Request body too large"
	StatusNotFound        = "Not found"
	StatusTooManyRequests = "Too many requests"
	StatusCORSDenied      = "Not allowed by CORS"
	StatusInternalError   = "Internal server error"
)

// StatusResponse is the envelope shared by every non-health response
type StatusResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse answers the health probe
type HealthResponse struct {
	Status          string `json:"status"`
	Timestamp       string `json:"timestamp"`
	EmailConfigured bool   `json:"emailConfigured"`
}

// NewStatusResponse creates a response carrying only code and status
func NewStatusResponse(code int, status string) StatusResponse {
	return StatusResponse{
		Code:   code,
		Status: status,
	}
}

// NewErrorResponse creates a response that surfaces err to the caller
func NewErrorResponse(code int, status string, err error) StatusResponse {
	resp := NewStatusResponse(code, status)
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
