package contact

import (
	"fmt"

	"portfolio/internal/api/sanitization"
	"portfolio/internal/mail"
)

// FormSenderName is the display name on every relayed message
const FormSenderName = "Portfolio Contact Form"

const emailTemplate = `
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><small>Sent from your portfolio website</small></p>
`

// ComposeEmail builds the message relayed to account for a normalized
// submission. Replies go to the visitor.
func ComposeEmail(account string, s Submission) *mail.Message {
	return &mail.Message{
		From:    mail.Address{Name: FormSenderName, Email: account},
		To:      mail.Address{Email: account},
		ReplyTo: mail.Address{Name: s.Name, Email: s.Email},
		Subject: "Contact Form: " + s.Name,
		HTML: fmt.Sprintf(emailTemplate,
			sanitization.EscapeHTML(s.Name),
			sanitization.EscapeHTML(s.Email),
			sanitization.MultilineHTML(s.Message),
		),
	}
}
