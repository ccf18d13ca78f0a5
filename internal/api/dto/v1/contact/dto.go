package contact

// ContactRequest represents a contact form submission.
// Every field is optional at the wire level; email and message are
// enforced after trimming.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// SubmissionData echoes an accepted submission in test mode
type SubmissionData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Code      int             `json:"code"`
	Status    string          `json:"status"`
	MessageID string          `json:"messageId,omitempty"`
	Data      *SubmissionData `json:"data,omitempty"`
}
