package mailer

import (
	"github.com/ndixit/domain-clicks-report/internal/config"
	"github.com/ndixit/domain-clicks-report/internal/domain"
	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// SMTPMailer entrega os relatórios por SMTP com SSL implícito (porta 465)
type SMTPMailer struct {
	dialer *gomail.Dialer
	user   string
	from   string
}

func New(cfg *config.Config) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password)
	dialer.SSL = cfg.SMTP.Port == 465

	return &SMTPMailer{
		dialer: dialer,
		user:   cfg.SMTP.User,
		from:   cfg.SMTP.From,
	}
}

func (m *SMTPMailer) Send(to domain.Recipient, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.user, m.from)
	msg.SetHeader("To", to.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "erro ao enviar e-mail para %s", to.Email)
	}

	return nil
}
