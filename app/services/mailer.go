package services

import (
	"database/sql"
	"errors"
	"fmt"

	"pelita-schools/app/database"
	"pelita-schools/app/models"

	"gopkg.in/gomail.v2"
)

// ErrNoActiveSMTP means mail has never been configured (or the active
// configuration was deactivated). Sending never falls back to a
// default transport.
var ErrNoActiveSMTP = errors.New("no active SMTP configuration")

// Mailer sends HTML mail using the active smtp_settings row. The
// transport is built per send from the configuration current at that
// moment, so an admin config change takes effect without a restart.
// Failed sends are not retried here; retry policy belongs to callers.
type Mailer struct {
	db   *sql.DB
	send func(cfg *models.SMTPSetting, msg *gomail.Message) error
}

func NewMailer(db *sql.DB) *Mailer {
	return &Mailer{db: db, send: dialAndSend}
}

func dialAndSend(cfg *models.SMTPSetting, msg *gomail.Message) error {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.Secure
	return d.DialAndSend(msg)
}

// SendEmail resolves the active configuration and sends one HTML
// message to the given recipients.
func (m *Mailer) SendEmail(to []string, subject, html string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients given")
	}

	cfg, err := database.GetActiveSMTPSetting(m.db)
	if err == sql.ErrNoRows {
		return ErrNoActiveSMTP
	}
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", cfg.FromEmail, cfg.FromName)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	return m.send(cfg, msg)
}
