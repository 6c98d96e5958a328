// Package shell implements the interactive contact book menu.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/ops"
)

const menu = `
Contact Book - Choose an option:
1. Add new contact
2. View all contacts
3. Search by name
4. Delete contact
5. Exit
`

// deleteModes are the answers accepted by the delete prompt.
var deleteModes = []string{"index", "name"}

// Shell reads menu choices from in and writes results to out.
// It owns no contact data; the book is passed in and mutated through ops.
type Shell struct {
	in    *bufio.Scanner
	out   io.Writer
	store ops.Store
	book  *model.Book
}

// New returns a shell over the given book.
func New(in io.Reader, out io.Writer, store ops.Store, book *model.Book) *Shell {
	return &Shell{
		in:    bufio.NewScanner(in),
		out:   out,
		store: store,
		book:  book,
	}
}

// Run shows the menu until the user exits or input ends.
func (sh *Shell) Run() {
	for {
		fmt.Fprint(sh.out, menu)
		choice, ok := sh.prompt("Enter choice (1-5): ")
		if !ok {
			break
		}

		switch strings.TrimSpace(choice) {
		case "1":
			ok = sh.add()
		case "2":
			sh.view()
		case "3":
			ok = sh.search()
		case "4":
			ok = sh.delete()
		case "5":
			ok = false
		default:
			fmt.Fprintln(sh.out, "Invalid choice. Please enter a number between 1 and 5.")
		}
		if !ok {
			break
		}
	}
	fmt.Fprintln(sh.out, "Goodbye!")
}

// prompt writes label and reads one line. ok is false once input is exhausted.
func (sh *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(sh.out, label)
	if !sh.in.Scan() {
		fmt.Fprintln(sh.out)
		return "", false
	}
	return sh.in.Text(), true
}

func (sh *Shell) add() bool {
	name, ok := sh.prompt("Enter full name: ")
	if !ok {
		return false
	}
	if strings.TrimSpace(name) == "" {
		sh.printError(&ops.ValidationError{Message: "name cannot be empty"})
		return true
	}

	c := model.Contact{Name: name}
	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"Enter phone number (optional): ", &c.Phone},
		{"Enter email (optional): ", &c.Email},
		{"Enter address (optional): ", &c.Address},
	} {
		if *f.dst, ok = sh.prompt(f.label); !ok {
			return false
		}
	}

	added, err := ops.AddContact(sh.store, sh.book, c)
	if err != nil {
		sh.printError(err)
		if !ops.SaveFailed(err) {
			return true
		}
	}
	fmt.Fprintf(sh.out, "Contact '%s' added.\n", added.Name)
	return true
}

func (sh *Shell) view() {
	seq, err := ops.ListContacts(sh.book)
	if errors.Is(err, ops.ErrNoContacts) {
		fmt.Fprintln(sh.out, "No contacts found.")
		return
	}

	fmt.Fprintln(sh.out, "\nAll contacts:")
	for i, c := range seq {
		fmt.Fprintln(sh.out, FormatContact(i, c))
	}
	fmt.Fprintln(sh.out)
}

func (sh *Shell) search() bool {
	query, ok := sh.prompt("Search by name (partial, case-insensitive): ")
	if !ok {
		return false
	}

	matches, err := ops.SearchContacts(sh.book, query)
	if err != nil {
		sh.printError(err)
		return true
	}
	if len(matches) == 0 {
		fmt.Fprintln(sh.out, "No matching contacts found.")
		return true
	}

	fmt.Fprintf(sh.out, "\nFound %d matching contact(s):\n", len(matches))
	for _, m := range matches {
		fmt.Fprintln(sh.out, FormatContact(m.Index, m.Contact))
	}
	fmt.Fprintln(sh.out)
	return true
}

func (sh *Shell) delete() bool {
	if sh.book.Len() == 0 {
		fmt.Fprintln(sh.out, "No contacts to delete.")
		return true
	}

	sh.view()
	answer, ok := sh.prompt("Delete by (i)ndex or (n)ame? (i/n): ")
	if !ok {
		return false
	}
	mode, err := cli.MatchOption(answer, deleteModes)
	if err != nil {
		fmt.Fprintln(sh.out, "Unknown option. Cancelled.")
		return true
	}

	var removed model.Contact
	switch mode {
	case "index":
		raw, ok := sh.prompt("Enter index to delete: ")
		if !ok {
			return false
		}
		removed, err = ops.DeleteByIndex(sh.store, sh.book, raw)
	case "name":
		name, ok := sh.prompt("Enter exact name to delete: ")
		if !ok {
			return false
		}
		removed, err = ops.DeleteByName(sh.store, sh.book, name)
	}

	if err != nil {
		sh.printError(err)
		if !ops.SaveFailed(err) {
			return true
		}
	}
	fmt.Fprintf(sh.out, "Removed contact: %s\n", model.DisplayField(removed.Name))
	return true
}

func (sh *Shell) printError(err error) {
	fmt.Fprintln(sh.out, cli.FormatError(err))
}

// FormatContact renders one contact line as shown by view and search.
func FormatContact(index int, c model.Contact) string {
	return fmt.Sprintf("[%d] %s | Phone: %s | Email: %s | Address: %s",
		index,
		model.DisplayField(c.Name),
		model.DisplayField(c.Phone),
		model.DisplayField(c.Email),
		model.DisplayField(c.Address),
	)
}
