package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"billscan/internal/bill"
)

// Mailer dispatches one notification email per processed bill. Send
// failures are best-effort by contract: the dispatcher logs them and never
// fails the record over them.
type Mailer interface {
	Notify(ctx context.Context, rec *bill.Record) error
}

// GmailMailer sends bill notifications through the Gmail API using the
// authenticated user's mailbox.
type GmailMailer struct {
	svc       *gmail.Service
	sender    string
	recipient string
}

// NewGmailMailer creates a mailer with a shared Gmail service. Sender and
// recipient are fixed configured addresses.
func NewGmailMailer(ctx context.Context, sender, recipient string) (*GmailMailer, error) {
	svc, err := gmail.NewService(ctx, option.WithScopes(gmail.GmailSendScope))
	if err != nil {
		return nil, fmt.Errorf("NewGmailMailer: create gmail service: %w", err)
	}
	return &GmailMailer{
		svc:       svc,
		sender:    sender,
		recipient: recipient,
	}, nil
}

// Notify renders the record and sends it as an HTML email.
func (m *GmailMailer) Notify(ctx context.Context, rec *bill.Record) error {
	msg := buildMessage(m.sender, m.recipient, Subject(rec), RenderHTML(rec))
	if _, err := m.svc.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("Notify: sending email for bill %s: %w", rec.BillID, err)
	}
	return nil
}

// buildMessage assembles a base64url-encoded RFC 2822 message, the raw
// format the Gmail API expects. The subject is Q-encoded since totals may
// carry non-ASCII currency symbols.
func buildMessage(from, to, subject, htmlBody string) *gmail.Message {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("UTF-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	return &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(b.String())),
	}
}

var _ Mailer = (*GmailMailer)(nil)
