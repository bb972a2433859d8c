package contacts

import (
	"cli-contacts/internal/models"
)

// Messages concatenates the messages of every contact in display order.
// Identical messages on different contacts are all kept.
func (b *Book) Messages() []models.Message {
	var all []models.Message
	for _, c := range b.order {
		all = append(all, c.Messages...)
	}
	return all
}

// Send appends a message to the contact. The id is the contact's message count
// before the append.
func (b *Book) Send(c *models.Contact, text string) models.Message {
	msg := models.Message{
		Text:      text,
		Recipient: c.Name,
		ID:        len(c.Messages),
	}
	c.Messages = append(c.Messages, msg)
	return msg
}

// Unsend drops the contact's latest message. Used to undo a Send that could
// not be persisted.
func (b *Book) Unsend(c *models.Contact) {
	if len(c.Messages) > 0 {
		c.Messages = c.Messages[:len(c.Messages)-1]
	}
}
