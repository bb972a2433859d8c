package models

import (
	"fmt"
)

// Message represents a text sent to a contact
type Message struct {
	Text      string `json:"text"`
	Recipient string `json:"recipient"` // Name of the contact at send time
	ID        int    `json:"id"`        // Per-contact sequence number, starts at 0
}

// Details renders the two-line description used by the message list
func (m Message) Details() string {
	return fmt.Sprintf("Contact Name: %s\n   Message: '%s'", m.Recipient, m.Text)
}

// Contact represents an entry of the contact book
type Contact struct {
	Name     string    `json:"name"` // Identity key
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Messages []Message `json:"messages"`
}

func NewContact(name, email, phone string) *Contact {
	return &Contact{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Messages: []Message{},
	}
}

// Info renders the one-line summary shown in contact listings
func (c *Contact) Info() string {
	return fmt.Sprintf("%s (%s, email: %s)", c.Name, c.Phone, c.Email)
}

// Matches reports whether query is exactly the contact's name or phone
func (c *Contact) Matches(query string) bool {
	return c.Name == query || c.Phone == query
}
