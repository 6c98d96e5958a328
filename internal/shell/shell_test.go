package shell

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	saves int
	err   error
}

func (f *fakeStore) Save(*model.Book) error {
	f.saves++
	return f.err
}

// run feeds lines to a fresh shell and returns everything it printed.
func run(t *testing.T, store *fakeStore, book *model.Book, lines ...string) string {
	t.Helper()
	cli.SetColorEnabled(false)
	t.Cleanup(func() { cli.SetColorEnabled(true) })

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	New(in, &out, store, book).Run()
	return out.String()
}

func TestFormatContact(t *testing.T) {
	tests := []struct {
		name    string
		contact model.Contact
		want    string
	}{
		{
			name:    "all fields",
			contact: model.Contact{Name: "Bob", Phone: "555", Email: "bob@x.com", Address: "1 Main St"},
			want:    "[2] Bob | Phone: 555 | Email: bob@x.com | Address: 1 Main St",
		},
		{
			name:    "empty fields show dash",
			contact: model.Contact{Name: "Alice"},
			want:    "[2] Alice | Phone: - | Email: - | Address: -",
		},
		{
			name:    "missing name shows dash",
			contact: model.Contact{Phone: "555"},
			want:    "[2] - | Phone: 555 | Email: - | Address: -",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatContact(2, tt.contact))
		})
	}
}

func TestMenu(t *testing.T) {
	t.Run("exit prints goodbye", func(t *testing.T) {
		out := run(t, &fakeStore{}, model.NewBook(), "5")
		assert.Contains(t, out, "Contact Book - Choose an option:")
		assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
	})

	t.Run("invalid choice redisplays menu", func(t *testing.T) {
		out := run(t, &fakeStore{}, model.NewBook(), "9", "abc", "5")
		assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please enter a number between 1 and 5."))
		assert.Equal(t, 3, strings.Count(out, "Contact Book - Choose an option:"))
	})

	t.Run("end of input exits", func(t *testing.T) {
		var out bytes.Buffer
		New(strings.NewReader(""), &out, &fakeStore{}, model.NewBook()).Run()
		assert.Contains(t, out.String(), "Goodbye!")
	})

	t.Run("end of input in the middle of add exits without adding", func(t *testing.T) {
		b := model.NewBook()
		var out bytes.Buffer
		New(strings.NewReader("1\nAlice\n555"), &out, &fakeStore{}, b).Run()
		assert.Contains(t, out.String(), "Goodbye!")
		assert.Equal(t, 0, b.Len())
	})
}

func TestAdd(t *testing.T) {
	t.Run("adds and saves", func(t *testing.T) {
		store := &fakeStore{}
		b := model.NewBook()

		out := run(t, store, b,
			"1", "Alice", "", "", "",
			"1", "  Bob ", "555", "bob@x.com", "",
			"5")

		assert.Contains(t, out, "Contact 'Alice' added.")
		assert.Contains(t, out, "Contact 'Bob' added.")
		require.Equal(t, 2, b.Len())
		assert.Equal(t, model.Contact{Name: "Bob", Phone: "555", Email: "bob@x.com"}, b.Contacts[1])
		assert.Equal(t, 2, store.saves)
	})

	t.Run("blank name skips remaining prompts", func(t *testing.T) {
		store := &fakeStore{}
		b := model.NewBook()

		out := run(t, store, b, "1", "   ", "5")

		assert.Contains(t, out, "error: name cannot be empty")
		assert.NotContains(t, out, "Enter phone number")
		assert.Equal(t, 0, b.Len())
		assert.Equal(t, 0, store.saves)
	})

	t.Run("save failure is reported but contact is kept", func(t *testing.T) {
		store := &fakeStore{err: &storage.StorageError{Op: "save", Path: "contacts.json", Err: errors.New("disk full")}}
		b := model.NewBook()

		out := run(t, store, b, "1", "Alice", "", "", "", "2", "5")

		assert.Contains(t, out, "error: could not save contacts to contacts.json: disk full")
		assert.Contains(t, out, "Contact 'Alice' added.")
		assert.Contains(t, out, "[1] Alice | Phone: - | Email: - | Address: -")
	})
}

func TestView(t *testing.T) {
	t.Run("empty book", func(t *testing.T) {
		out := run(t, &fakeStore{}, model.NewBook(), "2", "5")
		assert.Contains(t, out, "No contacts found.")
	})

	t.Run("lists every contact", func(t *testing.T) {
		b := model.NewBook(
			model.Contact{Name: "Alice"},
			model.Contact{Name: "Bob", Phone: "555", Email: "bob@x.com"},
		)
		out := run(t, &fakeStore{}, b, "2", "2", "5")

		assert.Contains(t, out, "All contacts:")
		assert.Equal(t, 2, strings.Count(out, "[1] Alice | Phone: - | Email: - | Address: -\n"))
		assert.Equal(t, 2, strings.Count(out, "[2] Bob | Phone: 555 | Email: bob@x.com | Address: -\n"))
	})
}

func TestSearch(t *testing.T) {
	b := model.NewBook(
		model.Contact{Name: "Alice"},
		model.Contact{Name: "Bob", Phone: "555", Email: "bob@x.com"},
	)

	t.Run("matches are counted and listed", func(t *testing.T) {
		out := run(t, &fakeStore{}, b, "3", "ALI", "5")
		assert.Contains(t, out, "Found 1 matching contact(s):")
		assert.Contains(t, out, "[1] Alice")
		assert.NotContains(t, out, "[2] Bob")
	})

	t.Run("no matches", func(t *testing.T) {
		out := run(t, &fakeStore{}, b, "3", "zzz", "5")
		assert.Contains(t, out, "No matching contacts found.")
	})

	t.Run("empty query", func(t *testing.T) {
		out := run(t, &fakeStore{}, b, "3", "  ", "5")
		assert.Contains(t, out, "error: empty search query")
	})
}

func TestDelete(t *testing.T) {
	newBook := func() *model.Book {
		return model.NewBook(
			model.Contact{Name: "Alice"},
			model.Contact{Name: "Bob"},
			model.Contact{Name: "bob"},
		)
	}

	t.Run("empty book", func(t *testing.T) {
		out := run(t, &fakeStore{}, model.NewBook(), "4", "5")
		assert.Contains(t, out, "No contacts to delete.")
	})

	t.Run("by index shows list first", func(t *testing.T) {
		store := &fakeStore{}
		b := newBook()

		out := run(t, store, b, "4", "i", "1", "5")

		listAt := strings.Index(out, "[1] Alice")
		promptAt := strings.Index(out, "Delete by (i)ndex or (n)ame?")
		require.GreaterOrEqual(t, listAt, 0)
		assert.Less(t, listAt, promptAt)
		assert.Contains(t, out, "Removed contact: Alice")
		assert.Equal(t, 2, b.Len())
		assert.Equal(t, 1, store.saves)
	})

	t.Run("index spelled out", func(t *testing.T) {
		b := newBook()
		out := run(t, &fakeStore{}, b, "4", "INDEX", "3", "5")
		assert.Contains(t, out, "Removed contact: bob")
	})

	t.Run("invalid index", func(t *testing.T) {
		b := newBook()
		out := run(t, &fakeStore{}, b, "4", "i", "two", "5")
		assert.Contains(t, out, "error: invalid index")
		assert.Equal(t, 3, b.Len())
	})

	t.Run("index out of range", func(t *testing.T) {
		b := newBook()
		out := run(t, &fakeStore{}, b, "4", "i", "7", "5")
		assert.Contains(t, out, "error: index out of range")
		assert.Equal(t, 3, b.Len())
	})

	t.Run("by unique name", func(t *testing.T) {
		b := newBook()
		out := run(t, &fakeStore{}, b, "4", "n", "alice", "5")
		assert.Contains(t, out, "Removed contact: Alice")
		assert.Equal(t, 2, b.Len())
	})

	t.Run("ambiguous name", func(t *testing.T) {
		store := &fakeStore{}
		b := newBook()
		out := run(t, store, b, "4", "n", "BOB", "5")
		assert.Contains(t, out, "found 2 contacts named")
		assert.Contains(t, out, "delete by index instead")
		assert.Equal(t, 3, b.Len())
		assert.Equal(t, 0, store.saves)
	})

	t.Run("unknown name", func(t *testing.T) {
		b := newBook()
		out := run(t, &fakeStore{}, b, "4", "name", "Carol", "5")
		assert.Contains(t, out, `error: no contact with the exact name "Carol" found`)
	})

	t.Run("unknown mode cancels", func(t *testing.T) {
		b := newBook()
		out := run(t, &fakeStore{}, b, "4", "x", "5")
		assert.Contains(t, out, "Unknown option. Cancelled.")
		assert.Equal(t, 3, b.Len())
	})
}

func TestSessionPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	s := storage.Open(path)

	b, err := s.Load()
	require.NoError(t, err)

	cli.SetColorEnabled(false)
	defer cli.SetColorEnabled(true)

	var out bytes.Buffer
	input := strings.Join([]string{
		"1", "Zoë", "+33 1 23", "", "Rue de l'Église",
		"1", "Bob", "", "", "",
		"4", "i", "2",
		"5",
	}, "\n") + "\n"
	New(strings.NewReader(input), &out, s, b).Run()

	reloaded, err := storage.Open(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []model.Contact{{Name: "Zoë", Phone: "+33 1 23", Address: "Rue de l'Église"}}, reloaded.Contacts)
}
