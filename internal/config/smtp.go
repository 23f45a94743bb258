package config

// SMTPConfig holds settings for the outbound mailer used for email
// verification codes and password-reset links.  When Host is empty the
// mailer is disabled and messages are logged instead of sent, which keeps
// local development working without a mail server.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string // From address shown to recipients
}

// LoadSMTPConfig reads SMTP settings from the environment.
func LoadSMTPConfig() SMTPConfig {
	return SMTPConfig{
		Host: getenv("SMTP_HOST", ""),
		Port: atoi(getenv("SMTP_PORT", "587")),
		User: getenv("SMTP_USER", ""),
		Pass: getenv("SMTP_PASS", ""),
		From: getenv("SMTP_FROM", "no-reply@vietstay.local"),
	}
}
