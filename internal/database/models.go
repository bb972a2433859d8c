package database

import (
	"cli-contacts/internal/models"
)

// contactRow is the contacts table. Position keeps the display order.
type contactRow struct {
	Name     string       `gorm:"primaryKey;type:varchar(255)"`
	Email    string       `gorm:"type:varchar(255)"`
	Phone    string       `gorm:"type:varchar(100);index"`
	Position int          `gorm:"not null;default:0"`
	Messages []messageRow `gorm:"foreignKey:ContactName;references:Name;constraint:OnDelete:CASCADE;"`
}

func (contactRow) TableName() string {
	return "contacts"
}

type messageRow struct {
	RowID       uint   `gorm:"primaryKey;autoIncrement"`
	ContactName string `gorm:"index;type:varchar(255);not null"`
	Seq         int    `gorm:"not null"` // Message.ID
	Text        string `gorm:"type:text"`
	Recipient   string `gorm:"type:varchar(255)"`
}

func (messageRow) TableName() string {
	return "messages"
}

func toRow(c *models.Contact, position int) contactRow {
	row := contactRow{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Position: position,
		Messages: make([]messageRow, 0, len(c.Messages)),
	}
	for _, m := range c.Messages {
		row.Messages = append(row.Messages, messageRow{
			ContactName: c.Name,
			Seq:         m.ID,
			Text:        m.Text,
			Recipient:   m.Recipient,
		})
	}
	return row
}

func (r contactRow) toModel() *models.Contact {
	c := models.NewContact(r.Name, r.Email, r.Phone)
	for _, m := range r.Messages {
		c.Messages = append(c.Messages, models.Message{
			Text:      m.Text,
			Recipient: m.Recipient,
			ID:        m.Seq,
		})
	}
	return c
}
