package core

import "net/mail"

type EmailMessage struct {
	To      []mail.Address
	Subject string
	Body    string // text/plain
}

// EmailService is any service that can send emails.
type EmailService interface {
	// SendMessages sends messages concurrently; failures are logged, not returned.
	SendMessages(messages ...*EmailMessage)
}
