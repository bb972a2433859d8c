package cli

import (
	"context"
	"errors"

	"cli-contacts/internal/contacts"
	"cli-contacts/internal/models"
)

func (a *App) ShowContacts() {
	if a.Book.Len() == 0 {
		a.Console.Println("No contacts exist!")
		return
	}

	a.Console.Println("All contacts:")
	a.listContacts(a.Book.Contacts())
}

func (a *App) AddContact(ctx context.Context) error {
	input, err := a.Console.Prompt("Enter information (name, email, phone number)")
	if err != nil {
		return err
	}

	contact, err := contacts.ParseContact(input)
	switch {
	case errors.Is(err, contacts.ErrEmptyName):
		a.Console.Println("Name can't be empty!")
		return nil
	case err != nil:
		a.Console.Println("ERR: Invalid information")
		return nil
	}

	// FindOne matches phones as well, so a name equal to some contact's phone
	// is refused too.
	if a.Book.FindOne(contact.Name) != nil {
		a.Console.Println("Contact with that name already exists!")
		return nil
	}

	if err := a.Book.Add(contact); err != nil {
		a.Console.Println("Contact with that name already exists!")
		return nil
	}

	if !a.persist(ctx) {
		a.Book.Remove(contact)
		return nil
	}

	a.log.WithField("name", contact.Name).Debug("contact added")
	a.Console.Println("Contact successfully created and saved!")
	return nil
}

func (a *App) SearchContacts() error {
	input, err := a.Console.Prompt("Enter contact name or phone number to search")
	if err != nil {
		return err
	}

	found := a.Book.FindAll(input)
	if len(found) == 0 {
		a.Console.Printf("No contacts with name '%s' found!\n", input)
		return nil
	}

	a.Console.Printf("Found %d contacts with name '%s': \n", len(found), input)
	a.listContacts(found)
	return nil
}

func (a *App) DeleteContact(ctx context.Context) error {
	input, err := a.Console.Prompt("Enter contact name or phone number to delete")
	if err != nil {
		return err
	}

	contact := a.Book.FindOne(input)
	if contact == nil {
		a.Console.Println("No contacts found")
		return nil
	}

	input, err = a.Console.Prompt("Are you sure you want to delete '" + contact.Info() + "' ? [y/N]")
	if err != nil {
		return err
	}
	if input != "y" && input != "Y" {
		a.Console.Println("Aborting deletion...")
		return nil
	}

	index, _ := a.Book.Remove(contact)
	if !a.persist(ctx) {
		a.Console.Println("ERR occurred, reverting changes...")
		a.Book.Insert(index, contact)
		return nil
	}

	a.log.WithField("name", contact.Name).Debug("contact deleted")
	a.Console.Println("Contact deleted successfully")
	return nil
}

func (a *App) listContacts(list []*models.Contact) {
	for i, c := range list {
		a.Console.Printf("%d. %s\n", i+1, c.Info())
	}
}
