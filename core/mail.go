package core

import "net/mail"

type (
	EmailMessage struct {
		To          []mail.Address
		Cc          []mail.Address
		Subject     string
		TextContent string
		HTMLContent string
	}

	// EmailService sends messages in the background; failures are logged, not
	// returned.
	EmailService interface {
		SendMessages(messages ...*EmailMessage)
	}
)

func (m *EmailMessage) HasRecipients() bool {
	return len(m.To) > 0 || len(m.Cc) > 0
}

func (m *EmailMessage) HasContent() bool {
	return m.TextContent != "" || m.HTMLContent != ""
}
