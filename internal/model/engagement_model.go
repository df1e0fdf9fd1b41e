package model

import "time"

// Newsletter is a subscription row; email is unique and re-subscribing
// returns the existing row.
type Newsletter struct {
	NewsletterID int64      `json:"id"`
	Email        string     `json:"email"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

// Contact is a contact-form submission. Write-only, no downstream
// processing.
type Contact struct {
	ContactID int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}
