package cli

import (
	"context"
	"errors"
	"io"

	"cli-contacts/internal/config"
	"cli-contacts/internal/contacts"
	"cli-contacts/internal/store"

	"github.com/sirupsen/logrus"
)

type MenuState int

const (
	MenuMain MenuState = iota
	MenuContacts
	MenuMessages
	MenuExit
)

func (s MenuState) String() string {
	switch s {
	case MenuMain:
		return "main"
	case MenuContacts:
		return "contacts"
	case MenuMessages:
		return "messages"
	case MenuExit:
		return "exit"
	default:
		return "unknown"
	}
}

// App owns the in-memory contact book and runs the menus against it
type App struct {
	Config  *config.Config
	Store   store.Store
	Book    *contacts.Book
	Console *Console

	log *logrus.Entry
}

func NewApp(cfg *config.Config, st store.Store, book *contacts.Book, console *Console, log *logrus.Entry) *App {
	return &App{
		Config:  cfg,
		Store:   st,
		Book:    book,
		Console: console,
		log:     log.WithField("type", "cli/app"),
	}
}

// LoadBook loads the collection from the store. Malformed persisted data is
// reported on the console and replaced by an empty book; any other error is
// returned.
func LoadBook(ctx context.Context, cfg *config.Config, st store.Store, console *Console) (*contacts.Book, error) {
	book, err := st.Load(ctx)
	if errors.Is(err, store.ErrMalformed) {
		console.Println("ERR: loading contacts failed!")
		if cfg.Verbose {
			console.Printf("More info: %v\n", err)
		}
		return contacts.NewBook(), nil
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// Run drives the menus until the user quits or input ends
func (a *App) Run(ctx context.Context) error {
	state := MenuMain
	for state != MenuExit {
		var err error
		switch state {
		case MenuMain:
			state, err = a.mainMenu(ctx)
		case MenuContacts:
			state, err = a.contactsMenu(ctx)
		case MenuMessages:
			state, err = a.messagesMenu(ctx)
		}

		if errors.Is(err, io.EOF) {
			a.log.Debug("input closed, exiting")
			return nil
		}
		if err != nil {
			return err
		}
	}

	a.log.Debug("quit selected")
	return nil
}

func (a *App) mainMenu(ctx context.Context) (MenuState, error) {
	a.Console.Println("Select an option: ")
	input, err := a.Console.Choose("Manage Contacts", "Messages", "Quit")
	if err != nil {
		return MenuExit, err
	}

	switch input {
	case "1":
		return MenuContacts, nil
	case "2":
		return MenuMessages, nil
	case "3":
		return MenuExit, nil
	default:
		a.Console.Println("Invalid input.")
		return MenuMain, nil
	}
}

func (a *App) contactsMenu(ctx context.Context) (MenuState, error) {
	input, err := a.Console.Choose(
		"Show all contacts",
		"Add a new contact",
		"Search contacts",
		"Delete a contact",
		"Go to main menu",
	)
	if err != nil {
		return MenuExit, err
	}

	switch input {
	case "1":
		a.ShowContacts()
		return MenuContacts, nil
	case "2":
		return MenuContacts, a.AddContact(ctx)
	case "3":
		return MenuContacts, a.SearchContacts()
	case "4":
		return MenuContacts, a.DeleteContact(ctx)
	case "5":
		return MenuMain, nil
	default:
		a.Console.Println("Invalid input.")
		return MenuContacts, nil
	}
}

func (a *App) messagesMenu(ctx context.Context) (MenuState, error) {
	input, err := a.Console.Choose("Show all messages", "Send new message", "Go to main menu")
	if err != nil {
		return MenuExit, err
	}

	switch input {
	case "1":
		a.ShowMessages()
		return MenuMessages, nil
	case "2":
		return MenuMessages, a.SendMessage(ctx)
	case "3":
		return MenuMain, nil
	default:
		a.Console.Println("Invalid input.")
		return MenuMessages, nil
	}
}

// persist saves the whole book and reports a failure on the console. The
// caller is responsible for undoing its change when it returns false.
func (a *App) persist(ctx context.Context) bool {
	err := a.Store.Save(ctx, a.Book)
	if err == nil {
		return true
	}

	a.log.WithError(err).WithField("method", "persist").Debug("failed to save contacts")
	a.Console.Println("ERR couldn't save contacts, \nthis could be because of permission issues.")
	if a.Config.Verbose {
		a.Console.Printf("MORE INFO: %v\n", err)
	} else {
		a.Console.Println("Use -v or --verbose option to see more info about the error.")
	}
	return false
}
