package models

import "time"

// SMTPSetting is a mail server configuration stored in the database.
// Exactly one row is active at a time; the active row is the one used
// for all outgoing mail.
type SMTPSetting struct {
	ID        string    `json:"id"`
	Host      string    `json:"host"`
	Port      int       `json:"port"`
	Secure    bool      `json:"secure"`
	Username  string    `json:"username"`
	Password  string    `json:"password,omitempty"`
	FromName  string    `json:"from_name"`
	FromEmail string    `json:"from_email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
