package cli

import (
	"context"

	"github.com/sirupsen/logrus"
)

func (a *App) ShowMessages() {
	messages := a.Book.Messages()
	if len(messages) == 0 {
		a.Console.Println("No messages found!")
		return
	}

	a.Console.Printf("Found %d messages: \n", len(messages))
	for i, m := range messages {
		a.Console.Printf("%d. %s\n\n", i+1, m.Details())
	}
}

func (a *App) SendMessage(ctx context.Context) error {
	input, err := a.Console.Prompt("Enter recipient name or phone number")
	if err != nil {
		return err
	}

	recipient := a.Book.FindOne(input)
	if recipient == nil {
		a.Console.Println("No contacts found.")
		return nil
	}

	text, err := a.Console.Prompt("Enter message to send")
	if err != nil {
		return err
	}

	msg := a.Book.Send(recipient, text)
	if !a.persist(ctx) {
		a.Book.Unsend(recipient)
		return nil
	}

	a.log.WithFields(logrus.Fields{
		"recipient": msg.Recipient,
		"id":        msg.ID,
	}).Debug("message sent")
	a.Console.Println("Message sent successfully!")
	return nil
}
