package mailingservices

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

type Mailgun struct {
	Client *mailgun.MailgunImpl
	From   string
}

func (m *Mailgun) Init() {
	domain := os.Getenv("WASTENEXUS_MG_DOMAIN")
	apiKey := os.Getenv("WASTENEXUS_MG_PRIVATE_API_KEY")
	if domain == "" || apiKey == "" {
		log.Println("mailgun credentials not set, outbound mail disabled")
		return
	}
	m.Client = mailgun.NewMailgun(domain, apiKey)
	m.From = fmt.Sprintf("WasteNexus <no-reply@%s>", domain)
}

// SendWelcomeMessage greets a new signup. Failures are logged by callers and
// never interrupt the signup flow.
func (m *Mailgun) SendWelcomeMessage(recipient, subject string) (string, error) {
	if m.Client == nil {
		return "", nil
	}
	body := "Welcome to WasteNexus! Report waste, complete collection jobs and earn reward points."
	message := m.Client.NewMessage(m.From, subject, body, recipient)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, id, err := m.Client.Send(ctx, message)
	return id, err
}

// SendResetPassword mails a password-reset link.
func (m *Mailgun) SendResetPassword(recipient, resetURL string) (string, error) {
	if m.Client == nil {
		return "", fmt.Errorf("mail service not configured")
	}
	subject := "Reset your WasteNexus password"
	body := fmt.Sprintf("Use the link below to reset your password. The link expires in 30 minutes.\n\n%s", resetURL)
	message := m.Client.NewMessage(m.From, subject, body, recipient)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, id, err := m.Client.Send(ctx, message)
	return id, err
}
