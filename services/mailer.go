package services

import (
	"fmt"
	"os"
	"strconv"

	mail "gopkg.in/mail.v2"

	"github.com/charityIO/charityIOBack/utils"
)

// Mailer sends the account verification email. When SMTP is not configured
// it degrades to logging the verification URL, which keeps local
// development working without a mail account.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailerFromEnv() *Mailer {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

func (m *Mailer) SendVerification(to, verificationURL string) error {
	if m.host == "" {
		utils.InfoLogger.Printf("SMTP not configured, verification URL for %s: %s", to, verificationURL)
		return nil
	}

	from := m.from
	if from == "" {
		from = m.username
	}

	message := mail.NewMessage()
	message.SetHeader("From", from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", "Charity.io Signup")
	message.SetBody("text/html", fmt.Sprintf(
		`Click on this link to verify your account <a href="%s">%s</a>`,
		verificationURL, verificationURL))

	dialer := mail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(message)
}
