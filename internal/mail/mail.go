package mail

import (
	"context"
	netmail "net/mail"
)

// Mode is the relay operating mode, selected once at startup
type Mode int

const (
	// ModeDisabled accepts submissions without sending anything
	ModeDisabled Mode = iota
	// ModeSMTP relays every accepted submission through SMTP
	ModeSMTP
)

func (m Mode) String() string {
	switch m {
	case ModeDisabled:
		return "disabled"
	case ModeSMTP:
		return "smtp"
	default:
		return "unknown"
	}
}

// Address is a display name plus mailbox
type Address struct {
	Name  string
	Email string
}

// String renders the address in RFC 5322 form
func (a Address) String() string {
	return (&netmail.Address{Name: a.Name, Address: a.Email}).String()
}

// Message is an outgoing email
type Message struct {
	From    Address
	To      Address
	ReplyTo Address
	Subject string
	HTML    string
}

// Relay delivers one message and returns the identifier assigned to it.
// Implementations must be safe for concurrent use.
type Relay interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// Transport pairs the selected mode with its relay. It is immutable.
type Transport struct {
	mode    Mode
	relay   Relay
	account string
}

// Disabled returns a transport in no-mail mode
func Disabled() *Transport {
	return &Transport{mode: ModeDisabled}
}

// NewTransport returns a transport that relays through relay on behalf of
// account. A nil relay or an empty account yields no-mail mode.
func NewTransport(relay Relay, account string) *Transport {
	if relay == nil || account == "" {
		return Disabled()
	}
	return &Transport{mode: ModeSMTP, relay: relay, account: account}
}

func (t *Transport) Mode() Mode { return t.mode }

// Relay returns the relay, nil in no-mail mode
func (t *Transport) Relay() Relay { return t.relay }

// Account is the sender mailbox; messages are also delivered to it
func (t *Transport) Account() string { return t.account }

// Configured reports whether submissions are actually mailed
func (t *Transport) Configured() bool { return t.mode == ModeSMTP }
