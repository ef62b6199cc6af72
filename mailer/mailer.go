// Package mailer wraps the SMTP transport used for approval and
// password-reset mail.
package mailer

import (
	"bytes"
	"fmt"

	"github.com/nwfth/forms-go/config"
	mail "github.com/wneessen/go-mail"
)

type Attachment struct {
	Filename string
	Content  []byte
}

type Sender interface {
	Send(to, subject, htmlBody string, attachments ...Attachment) error
}

type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
	logoPath string
}

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{
		host:     config.SmtpHost,
		port:     config.SmtpPort,
		username: config.SmtpUser,
		password: config.SmtpPassword,
		from:     config.MailFrom,
		fromName: config.MailFromName,
		logoPath: config.MailLogoPath,
	}
}

// Send dispatches one HTML message synchronously. The configured logo file,
// when present, is embedded inline so bodies can reference cid:logo.png.
func (s *SMTPSender) Send(to, subject, htmlBody string, attachments ...Attachment) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	for _, a := range attachments {
		msg.AttachReader(a.Filename, bytes.NewReader(a.Content))
	}
	if s.logoPath != "" {
		msg.EmbedFile(s.logoPath, mail.WithFileName("logo.png"))
	}

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.username),
			mail.WithPassword(s.password),
		)
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}
	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
