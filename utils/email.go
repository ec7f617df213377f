// utils/email.go
package utils

import (
	"fmt"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"go-storefront/config"
)

// Mailer sends transactional email. Implementations wrap a concrete
// provider; resolvers never see provider types.
type Mailer interface {
	SendMail(to, subject, htmlContent string) error
}

// NewMailer returns the Mailer selected by MAIL_PROVIDER.
func NewMailer(cfg *config.Config) (Mailer, error) {
	switch cfg.MailProvider {
	case "postmark":
		if cfg.PostmarkToken == "" {
			return nil, fmt.Errorf("POSTMARK_API_TOKEN is not set")
		}
		return &PostmarkMailer{
			client: postmark.NewClient(cfg.PostmarkToken, ""),
			sender: cfg.MailSender,
		}, nil
	case "sendgrid":
		if cfg.SendGridKey == "" {
			return nil, fmt.Errorf("SENDGRID_API_KEY is not set")
		}
		return &SendGridMailer{
			client: sendgrid.NewSendClient(cfg.SendGridKey),
			sender: cfg.MailSender,
		}, nil
	}
	return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
}

// PostmarkMailer sends email through Postmark.
type PostmarkMailer struct {
	client *postmark.Client
	sender string
}

// SendMail sends a basic email to the specified recipient.
func (m *PostmarkMailer) SendMail(to, subject, htmlContent string) error {
	_, err := m.client.SendEmail(postmark.Email{
		From:     m.sender,
		To:       to,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendGridMailer sends email through SendGrid.
type SendGridMailer struct {
	client *sendgrid.Client
	sender string
}

// SendMail sends a basic email to the specified recipient.
func (m *SendGridMailer) SendMail(to, subject, htmlContent string) error {
	message := sgmail.NewSingleEmail(
		sgmail.NewEmail("", m.sender),
		subject,
		sgmail.NewEmail("", to),
		htmlContent,
		htmlContent,
	)
	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}
	return nil
}

// PasswordResetBody renders the reset mail containing the reset link.
func PasswordResetBody(appURL, resetToken string) (subject, html string) {
	link := fmt.Sprintf("%s/reset?resetToken=%s", appURL, resetToken)
	html = fmt.Sprintf(
		"<strong>Your password reset token is here!</strong> <a href=\"%s\">Click here to reset your password</a>",
		link,
	)
	return "Your Password Reset Token", html
}
