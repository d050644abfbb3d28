package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/google/uuid"
)

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// MailSender is what the notification handlers depend on; tests swap in a
// fake so no SMTP connection is made.
type MailSender interface {
	Configured() bool
	SendHTMLEmail(to, subject, htmlBody string) (string, error)
}

type Mailer struct {
	config MailConfig
}

func NewMailer(cfg MailConfig) *Mailer {
	return &Mailer{
		config: cfg,
	}
}

func (m *Mailer) Configured() bool {
	return m.config.Host != "" && m.config.Port != "" && m.config.Username != "" && m.config.Password != ""
}

// SendHTMLEmail relays one message and returns the Message-ID it was sent
// with, so endpoints can hand a delivery reference back to the caller.
func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) (string, error) {

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), m.config.Host)

	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      subject,
		"Message-ID":   messageID,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msg string
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + htmlBody

	auth := smtp.PlainAuth(m.config.From, m.config.Username, m.config.Password, m.config.Host)

	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
	if err != nil {
		log.Printf("Failed to send HTML email to %s: %v", to, err)
		return "", fmt.Errorf("failed to send HTML email: %w", err)
	}

	return messageID, nil
}

func BuildContactEmailBody(name, email, phone, subject, message string) string {
	phoneRow := ""
	if phone != "" {
		phoneRow = fmt.Sprintf(`<p><strong>Phone:</strong> %s</p>`, phone)
	}
	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>New contact form submission</title>
        </head>
        <body>
            <div style="max-width: 600px; margin: 20px auto; font-family: Arial, sans-serif;">
                <h2>New contact form submission</h2>
                <p><strong>Name:</strong> %s</p>
                <p><strong>Email:</strong> %s</p>
                %s
                <p><strong>Subject:</strong> %s</p>
                <p><strong>Message:</strong></p>
                <p>%s</p>
            </div>
        </body>
        </html>
    `, name, email, phoneRow, subject, message)
}

func BuildReviewEmailBody(name, email string, rating int, comments string) string {
	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>New review feedback</title>
        </head>
        <body>
            <div style="max-width: 600px; margin: 20px auto; font-family: Arial, sans-serif;">
                <h2>New review feedback</h2>
                <p><strong>Name:</strong> %s</p>
                <p><strong>Email:</strong> %s</p>
                <p><strong>Rating:</strong> %d / 5</p>
                <p><strong>Comments:</strong></p>
                <p>%s</p>
            </div>
        </body>
        </html>
    `, name, email, rating, comments)
}
