package services

import (
	"fmt"

	"rice-app/config"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer returns nil when SMTP is not configured, callers treat a nil
// mailer as notifications disabled.
func NewMailer() *Mailer {
	if config.SMTPHost == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword),
		from:   config.MailFrom,
	}
}

func (m *Mailer) SendPaymentAdviceCreated(to, adviceNo string, netPayable float64) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Payment Advice "+adviceNo)
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Dear Sir/Madam,</p><p>Payment advice <b>%s</b> has been raised for a net payable of <b>Rs. %.2f</b>.</p><p>Regards,<br>Accounts Team</p>",
		adviceNo, netPayable))
	return m.dialer.DialAndSend(msg)
}
