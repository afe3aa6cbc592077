package services

import (
	"fmt"
	"net/smtp"
	"strings"
)

type IMailService interface {
	SendResetCode(to, code string) error
}

// SMTPConfig holds SMTP and branding settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	AppName  string
}

type smtpMailService struct {
	cfg SMTPConfig
}

func NewMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{cfg: cfg}
}

func (m *smtpMailService) SendResetCode(to, code string) error {
	subject := fmt.Sprintf("%s - kod resetowania hasła", m.cfg.AppName)
	body := fmt.Sprintf(
		"Twój kod resetowania hasła: %s\r\n\r\nKod jest ważny przez 15 minut. Jeśli nie prosiłeś o reset hasła, zignoruj tę wiadomość.\r\n",
		code,
	)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", m.cfg.FromName, m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String()))
}
