package models

import (
	"time"
)

// ContactSubmission is one message sent through the public contact form.
type ContactSubmission struct {
	ID      uint64 `gorm:"primaryKey"`
	Name    string `gorm:"size:100;not null"`
	Email   string `gorm:"size:120;not null"`
	Subject string `gorm:"size:150"`
	Message string `gorm:"type:text;not null"`
	// SubmittedAt is set server side when the form is received.
	SubmittedAt time.Time `gorm:"not null"`
}
