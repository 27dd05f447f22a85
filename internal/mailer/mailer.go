// Package mailer sends transactional mail via SMTP.
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/monet-app/backend/internal/config"
	"github.com/rs/zerolog/log"
)

// Sender handles sending emails via SMTP.
//
// When SMTP is not configured, mails are logged instead of sent so that
// local setups work without a mail server.
type Sender struct {
	cfg config.Config
}

func NewSender(cfg config.Config) *Sender {
	return &Sender{cfg: cfg}
}

// SendPasswordReset mails a password reset token to the user.
func (s *Sender) SendPasswordReset(to, name, token string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"someone requested a password reset for your account. Use the following\n"+
			"token in the app to set a new password:\n\n"+
			"    %s\n\n"+
			"If you did not request this, you can ignore this mail.\n",
		name, token,
	)

	if s.cfg.SMTPHost == "" {
		log.Info().Str("to", to).Msg("SMTP is not configured, logging password reset mail instead")
		log.Debug().Str("token", token).Msg("password reset token")
		return nil
	}

	e := email.NewEmail()
	e.From = s.cfg.MailFrom
	e.To = []string{to}
	e.Subject = "Password reset"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send password reset mail")
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", to).Msg("password reset mail sent")
	return nil
}
