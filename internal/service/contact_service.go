package service

import (
	"context"
	"fmt"
	"log"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
)

// Mailer delivers contact-form messages. Delivery is an external
// collaborator concern; the default implementation only logs.
type Mailer interface {
	Send(ctx context.Context, to, replyTo, subject, body string) error
}

// LogMailer writes messages to the application log instead of sending
// them anywhere.
type LogMailer struct{}

// Send implements Mailer.
func (LogMailer) Send(ctx context.Context, to, replyTo, subject, body string) error {
	log.Printf("contact message to=%s reply_to=%s subject=%q (%d bytes)", to, replyTo, subject, len(body))
	return nil
}

// contactRecipients routes a submission by its subject line. Unlisted
// subjects fall through to the default address.
var contactRecipients = map[string]string{
	"Editorial":     "editor@thebridgeworld.com",
	"Subscriptions": "subscriptions@thebridgeworld.com",
	"Advertising":   "advertising@thebridgeworld.com",
	"Technical":     "support@thebridgeworld.com",
}

const defaultContactRecipient = "contact@thebridgeworld.com"

// ContactInput carries a public contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService routes contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) error
}

type contactService struct {
	mailer Mailer
}

// NewContactService creates a new contact service.
func NewContactService(mailer Mailer) ContactService {
	return &contactService{mailer: mailer}
}

func (s *contactService) Submit(ctx context.Context, in ContactInput) error {
	if in.Email == "" || in.Message == "" {
		return apperr.Validationf("email and message are required")
	}

	to := RecipientFor(in.Subject)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", in.Name, in.Email, in.Message)
	if err := s.mailer.Send(ctx, to, in.Email, in.Subject, body); err != nil {
		return apperr.Upstreamf("deliver contact message: %v", err)
	}
	return nil
}

// RecipientFor maps a subject line onto a recipient address.
func RecipientFor(subject string) string {
	if to, ok := contactRecipients[subject]; ok {
		return to
	}
	return defaultContactRecipient
}
