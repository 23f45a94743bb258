// Package mail delivers transactional email: verification codes and
// password-reset links.  Delivery is best-effort; callers never fail a
// request because SMTP is down.
package mail

import (
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"

	"github.com/vietstay/hotel-booking/internal/config"
)

// Mailer sends transactional messages over SMTP.  With no host configured
// it runs in log-only mode, which is what local development uses.
type Mailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

// NewMailer builds a Mailer from SMTP settings.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	m := &Mailer{cfg: cfg}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	}
	return m
}

// SendVerifyCode emails the 6-digit verification code to a new account.
func (m *Mailer) SendVerifyCode(to, fullName, code string) error {
	name := fullName
	if name == "" {
		name = to
	}
	subject := "Verify your email"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour verification code is: %s\r\n\r\nThe code expires in 10 minutes.\r\n",
		name, code)
	return m.send(to, subject, body)
}

// SendPasswordReset emails a reset link built from the raw reset token.
func (m *Mailer) SendPasswordReset(to, fullName, resetURL string, minutes int) error {
	name := fullName
	if name == "" {
		name = to
	}
	subject := "Reset your password"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nReset your password here: %s\r\n\r\nThe link expires in %d minutes. If you did not request this, ignore this email.\r\n",
		name, resetURL, minutes)
	return m.send(to, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	if m.dialer == nil {
		log.Printf("mail: SMTP disabled, would send to=%s subject=%q", to, subject)
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("mail: send to=%s failed: %v", to, err)
		return err
	}
	return nil
}
