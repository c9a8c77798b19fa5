package services

import (
	"io"
	"strconv"

	"github.com/Jahid-Hassan-Noor/food-now/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends mail. attachment may be nil for plain messages.
type Mailer interface {
	Send(to, subject, body string, attachment []byte, filename, mimeType string) error
}

// Mail is the process-wide mailer, set by InitMailer at startup. Tests
// swap it for a fake.
var Mail Mailer

// SMTPMailer delivers through SMTP via gomail.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	port, err := strconv.Atoi(config.GetEnvDefault("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	return &SMTPMailer{
		host:     config.GetEnvDefault("SMTP_HOST", "smtp.gmail.com"),
		port:     port,
		username: config.GetEnv("SMTP_USER"),
		password: config.GetEnv("SMTP_PASSWORD"),
		from:     config.GetEnvDefault("SMTP_FROM", config.GetEnv("SMTP_USER")),
	}
}

func InitMailer() {
	Mail = NewSMTPMailerFromEnv()
}

func (m *SMTPMailer) Send(to, subject, body string, attachment []byte, filename, mimeType string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if len(attachment) > 0 {
		msg.Attach(filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(attachment)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {mimeType}}),
		)
	}

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return d.DialAndSend(msg)
}
